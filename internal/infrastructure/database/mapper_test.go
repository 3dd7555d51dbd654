package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"sportsnews/pkg/translation"
)

func TestArticleToDomain(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := articleToDomain(articleRow{
		ID:           7,
		Slug:         "derby",
		Category:     pgtype.Text{String: "football", Valid: true},
		Title:        "Derby day",
		Translations: []byte(`{"fr":{"title":"Jour de derby"}}`),
		PublishedAt:  pgtype.Timestamptz{Time: published, Valid: true},
	})
	if a.ID != 7 || a.Category != "football" || a.Excerpt != "" {
		t.Fatalf("unexpected article: %+v", a)
	}
	if !a.PublishedAt.Equal(published) {
		t.Fatalf("published at = %v", a.PublishedAt)
	}
	if got := translation.Resolve(a.Translations, "title", "fr", ""); got != "Jour de derby" {
		t.Fatalf("title fr = %q", got)
	}
}

func TestArticleToDomain_NullColumns(t *testing.T) {
	a := articleToDomain(articleRow{ID: 1, Slug: "draft", Title: "Draft"})
	if !a.PublishedAt.IsZero() || a.Translations != nil || a.Category != "" {
		t.Fatalf("unexpected article: %+v", a)
	}
}
