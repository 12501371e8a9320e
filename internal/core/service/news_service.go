package service

import (
	"context"
	"html"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-backend/internal/api/metrics"
	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/core/ports"
)

// NewsService implements article CRUD with the ownership gate on
// admin-flagged rows. Free-text fields are HTML-escaped before they reach
// the store so nothing downstream can render them as markup.
type NewsService struct {
	repo    ports.NewsRepository
	display *time.Location
	logger  zerolog.Logger
}

// NewNewsService builds a NewsService. display is the timezone applied to
// posted dates on reads; nil means UTC.
func NewNewsService(repo ports.NewsRepository, display *time.Location, logger zerolog.Logger) *NewsService {
	if display == nil {
		display = time.UTC
	}
	return &NewsService{repo: repo, display: display, logger: logger}
}

// List returns all articles, newest first.
func (s *NewsService) List(ctx context.Context) ([]ports.NewsItem, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ports.NewsItem, len(rows))
	for i, n := range rows {
		items[i] = s.toItem(n)
	}
	return items, nil
}

// GetByID returns a single article.
func (s *NewsService) GetByID(ctx context.Context, id int) (*ports.NewsItem, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item := s.toItem(n)
	return &item, nil
}

// Create stores a new article. Posted date, author and admin flag come from
// the server clock and the caller's identity, never from the payload.
func (s *NewsService) Create(ctx context.Context, ident domain.Identity, input ports.NewsInput) (*ports.NewsItem, error) {
	news := &domain.News{
		Header:      html.EscapeString(input.Header),
		Detail:      html.EscapeString(input.Detail),
		PostedDate:  time.Now().UTC(),
		AuthorID:    ident.UserID,
		IsAdminNews: ident.IsAdmin(),
	}

	created, err := s.repo.Create(ctx, news)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create news")
		return nil, err
	}
	created.AuthorUsername = ident.Username

	metrics.NewsMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Int("news_id", created.ID).Int("author_id", ident.UserID).Msg("news created")

	item := ports.NewsItem{
		ID:             created.ID,
		Header:         created.Header,
		Detail:         created.Detail,
		PostedDate:     created.PostedDate,
		AuthorID:       created.AuthorID,
		AuthorUsername: created.AuthorUsername,
		IsAdminNews:    created.IsAdminNews,
	}
	return &item, nil
}

// Update overwrites header and detail of an existing article and resets
// author and admin flag from the caller. Admin-flagged rows may only be
// touched by admins; the gate is re-evaluated on every call.
func (s *NewsService) Update(ctx context.Context, ident domain.Identity, id int, input ports.NewsInput) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsAdminNews && !ident.IsAdmin() {
		return domain.ErrForbidden
	}

	existing.Header = html.EscapeString(input.Header)
	existing.Detail = html.EscapeString(input.Detail)
	existing.AuthorID = ident.UserID
	existing.IsAdminNews = ident.IsAdmin()

	if err := s.repo.Update(ctx, existing); err != nil {
		return err
	}

	metrics.NewsMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int("news_id", id).Int("author_id", ident.UserID).Msg("news updated")
	return nil
}

// Delete removes an article, subject to the same gate as Update.
func (s *NewsService) Delete(ctx context.Context, ident domain.Identity, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsAdminNews && !ident.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.NewsMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int("news_id", id).Int("caller_id", ident.UserID).Msg("news deleted")
	return nil
}

func (s *NewsService) toItem(n *domain.News) ports.NewsItem {
	return ports.NewsItem{
		ID:             n.ID,
		Header:         n.Header,
		Detail:         n.Detail,
		PostedDate:     n.PostedDate.In(s.display),
		AuthorID:       n.AuthorID,
		AuthorUsername: n.AuthorUsername,
		IsAdminNews:    n.IsAdminNews,
	}
}
