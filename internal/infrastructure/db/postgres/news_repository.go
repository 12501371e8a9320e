package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/newsdesk/news-backend/internal/core/domain"
)

// NewsRepository is the Postgres adapter for the news store.
type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context) ([]*domain.News, error) {
	const query = `
		SELECT n.id, n.header, n.detail, n.posted_date, n.author_id, n.is_admin_news, u.username
		FROM news n
		JOIN users u ON u.id = n.author_id
		ORDER BY n.posted_date DESC, n.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var out []*domain.News
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Header, &n.Detail, &n.PostedDate, &n.AuthorID, &n.IsAdminNews, &n.AuthorUsername); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		n.PostedDate = n.PostedDate.UTC()
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id int) (*domain.News, error) {
	const query = `
		SELECT n.id, n.header, n.detail, n.posted_date, n.author_id, n.is_admin_news, u.username
		FROM news n
		JOIN users u ON u.id = n.author_id
		WHERE n.id = $1`
	var n domain.News
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Header, &n.Detail, &n.PostedDate, &n.AuthorID, &n.IsAdminNews, &n.AuthorUsername,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNewsNotFound
		}
		return nil, fmt.Errorf("find news: %w", err)
	}
	n.PostedDate = n.PostedDate.UTC()
	return &n, nil
}

func (r *NewsRepository) Create(ctx context.Context, news *domain.News) (*domain.News, error) {
	const query = `
		INSERT INTO news (header, detail, posted_date, author_id, is_admin_news)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	created := *news
	err := r.db.QueryRowContext(ctx, query,
		news.Header, news.Detail, news.PostedDate, news.AuthorID, news.IsAdminNews,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}
	return &created, nil
}

func (r *NewsRepository) Update(ctx context.Context, news *domain.News) error {
	const query = `
		UPDATE news
		SET header = $1,
			detail = $2,
			author_id = $3,
			is_admin_news = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		news.Header, news.Detail, news.AuthorID, news.IsAdminNews, news.ID,
	)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM news WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}
