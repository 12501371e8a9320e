package ports

import (
	"context"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	// List returns all articles with the author username resolved,
	// ordered by posted date descending.
	List(ctx context.Context) ([]*domain.News, error)
	GetByID(ctx context.Context, id int) (*domain.News, error)
	Create(ctx context.Context, news *domain.News) (*domain.News, error)
	Update(ctx context.Context, news *domain.News) error
	Delete(ctx context.Context, id int) error
}
