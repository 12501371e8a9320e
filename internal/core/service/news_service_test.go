package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-backend/internal/core/domain"
	"github.com/newsdesk/news-backend/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubNewsRepo struct {
	rows   map[int]*domain.News
	nextID int
}

func newStubNewsRepo() *stubNewsRepo {
	return &stubNewsRepo{rows: make(map[int]*domain.News), nextID: 1}
}

func (r *stubNewsRepo) List(_ context.Context) ([]*domain.News, error) {
	out := make([]*domain.News, 0, len(r.rows))
	for _, n := range r.rows {
		clone := *n
		out = append(out, &clone)
	}
	// Mirrors the ORDER BY posted_date DESC, id DESC of the real query.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PostedDate.Equal(out[j].PostedDate) {
			return out[i].PostedDate.After(out[j].PostedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *stubNewsRepo) GetByID(_ context.Context, id int) (*domain.News, error) {
	n, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNewsNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNewsRepo) Create(_ context.Context, news *domain.News) (*domain.News, error) {
	clone := *news
	clone.ID = r.nextID
	r.nextID++
	r.rows[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubNewsRepo) Update(_ context.Context, news *domain.News) error {
	if _, ok := r.rows[news.ID]; !ok {
		return domain.ErrNewsNotFound
	}
	clone := *news
	r.rows[news.ID] = &clone
	return nil
}

func (r *stubNewsRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNewsNotFound
	}
	delete(r.rows, id)
	return nil
}

var (
	adminIdent = domain.Identity{UserID: 1, Username: "admin", Role: domain.RoleAdmin}
	userIdent  = domain.Identity{UserID: 2, Username: "bob", Role: domain.RoleUser}
)

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestNewsService_Create_SetsServerControlledFields(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	before := time.Now().UTC()
	item, err := svc.Create(context.Background(), adminIdent, ports.NewsInput{Header: "breaking", Detail: "detail"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if item.AuthorID != adminIdent.UserID {
		t.Fatalf("expected author %d, got %d", adminIdent.UserID, item.AuthorID)
	}
	if item.AuthorUsername != "admin" {
		t.Fatalf("expected author username admin, got %q", item.AuthorUsername)
	}
	if !item.IsAdminNews {
		t.Fatalf("expected admin-flagged news for admin caller")
	}
	if item.PostedDate.Before(before) || item.PostedDate.After(time.Now().UTC()) {
		t.Fatalf("posted date not set from server clock: %v", item.PostedDate)
	}
	if item.PostedDate.Location() != time.UTC {
		t.Fatalf("expected UTC posted date, got %v", item.PostedDate.Location())
	}
}

func TestNewsService_Create_EscapesHTML(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, err := svc.Create(context.Background(), userIdent, ports.NewsInput{
		Header: "<script>alert(1)</script>",
		Detail: `<img src="x">`,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if item.Header != "&lt;script&gt;alert(1)&lt;/script&gt;" {
		t.Fatalf("header not escaped: %q", item.Header)
	}
	if item.Detail != "&lt;img src=&#34;x&#34;&gt;" {
		t.Fatalf("detail not escaped: %q", item.Detail)
	}

	// The escaped form is what round-trips out of the store.
	got, err := svc.GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Header != item.Header || got.Detail != item.Detail {
		t.Fatalf("round-trip mismatch: %q / %q", got.Header, got.Detail)
	}
}

func TestNewsService_Create_PlainTextUnchanged(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, err := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "plain header", Detail: "plain detail"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Header != "plain header" || item.Detail != "plain detail" {
		t.Fatalf("plain text altered: %q / %q", item.Header, item.Detail)
	}
}

func TestNewsService_GetByID_NotFound(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), nil, testLogger())

	if _, err := svc.GetByID(context.Background(), 42); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_List_NewestFirst(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	first, _ := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "first", Detail: "d"})
	second, _ := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "second", Detail: "d"})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got ids %d, %d", items[0].ID, items[1].ID)
	}

	third, _ := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "third", Detail: "d"})
	items, _ = svc.List(context.Background())
	if items[0].ID != third.ID {
		t.Fatalf("expected fresh insert at the front, got id %d", items[0].ID)
	}
}

func TestNewsService_List_ConvertsDisplayTimezone(t *testing.T) {
	repo := newStubNewsRepo()
	display := time.FixedZone("CET", 3600)
	svc := NewNewsService(repo, display, testLogger())

	created, err := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "h", Detail: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	got := items[0].PostedDate
	if got.Location() != display {
		t.Fatalf("expected display timezone, got %v", got.Location())
	}
	// Conversion changes the representation, never the instant.
	if !got.Equal(created.PostedDate) {
		t.Fatalf("instant changed during conversion: %v vs %v", got, created.PostedDate)
	}
}

func TestNewsService_Update_OwnershipGate(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, _ := svc.Create(context.Background(), adminIdent, ports.NewsInput{Header: "admin news", Detail: "d"})

	err := svc.Update(context.Background(), userIdent, item.ID, ports.NewsInput{Header: "defaced", Detail: "d"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// The record must be untouched.
	got, _ := svc.GetByID(context.Background(), item.ID)
	if got.Header != "admin news" {
		t.Fatalf("record mutated despite 403: %q", got.Header)
	}

	// Admins pass the gate.
	if err := svc.Update(context.Background(), adminIdent, item.ID, ports.NewsInput{Header: "edited", Detail: "d"}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestNewsService_Update_ResetsAuthorAndFlag(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, _ := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "user news", Detail: "d"})

	if err := svc.Update(context.Background(), adminIdent, item.ID, ports.NewsInput{Header: "taken over", Detail: "d"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), item.ID)
	if got.AuthorID != adminIdent.UserID {
		t.Fatalf("expected author reset to %d, got %d", adminIdent.UserID, got.AuthorID)
	}
	if !got.IsAdminNews {
		t.Fatalf("expected admin flag reset from caller identity")
	}
}

func TestNewsService_Update_NotFound(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), nil, testLogger())

	if err := svc.Update(context.Background(), adminIdent, 99, ports.NewsInput{Header: "h", Detail: "d"}); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_Update_EscapesHTML(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, _ := svc.Create(context.Background(), userIdent, ports.NewsInput{Header: "h", Detail: "d"})
	if err := svc.Update(context.Background(), userIdent, item.ID, ports.NewsInput{Header: "<b>bold</b>", Detail: "d"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), item.ID)
	if got.Header != "&lt;b&gt;bold&lt;/b&gt;" {
		t.Fatalf("header not escaped on update: %q", got.Header)
	}
}

func TestNewsService_Delete_OwnershipGate(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	item, _ := svc.Create(context.Background(), adminIdent, ports.NewsInput{Header: "admin news", Detail: "d"})

	if err := svc.Delete(context.Background(), userIdent, item.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), item.ID); err != nil {
		t.Fatalf("record should still exist after 403: %v", err)
	}

	if err := svc.Delete(context.Background(), adminIdent, item.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), item.ID); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound after delete, got %v", err)
	}
}

func TestNewsService_Delete_NotFound(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), nil, testLogger())

	if err := svc.Delete(context.Background(), adminIdent, 7); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_User_CannotMutateAdminNews_Flow(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, nil, testLogger())

	// Admin posts; a different non-admin user tries to delete.
	item, err := svc.Create(context.Background(), adminIdent, ports.NewsInput{Header: "protected", Detail: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !item.IsAdminNews {
		t.Fatalf("expected admin news")
	}

	if err := svc.Delete(context.Background(), userIdent, item.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("record gone after forbidden delete: %v", err)
	}
	if got.Header != "protected" {
		t.Fatalf("record changed: %q", got.Header)
	}
}
