package ports

import (
	"context"
	"time"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// NewsInput carries the client-supplied fields of an article. Author and
// admin flag are never part of it; the service derives them from the
// caller's identity.
type NewsInput struct {
	Header string
	Detail string
}

// NewsItem is the article view returned by the service. PostedDate is in
// the configured display timezone for reads, UTC for freshly created rows.
type NewsItem struct {
	ID             int
	Header         string
	Detail         string
	PostedDate     time.Time
	AuthorID       int
	AuthorUsername string
	IsAdminNews    bool
}

// NewsService defines the use-case operations on articles.
type NewsService interface {
	List(ctx context.Context) ([]NewsItem, error)
	GetByID(ctx context.Context, id int) (*NewsItem, error)
	Create(ctx context.Context, ident domain.Identity, input NewsInput) (*NewsItem, error)
	Update(ctx context.Context, ident domain.Identity, id int, input NewsInput) error
	Delete(ctx context.Context, ident domain.Identity, id int) error
}
