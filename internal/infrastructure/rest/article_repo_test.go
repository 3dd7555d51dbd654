package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sportsnews/internal/domain"
	"sportsnews/pkg/translation"
)

const rowsJSON = `[
  {"id":1,"slug":"cup-final","category":"football","title":"Cup final","excerpt":null,
   "translations":{"fr":{"title":"Finale"}},"published_at":"2026-05-30T19:00:00+00:00"},
  {"id":2,"slug":"grand-prix","category":null,"title":"Grand Prix","excerpt":"Pole lap",
   "translations":{"title":{"de":"Großer Preis"}},"published_at":null},
  {"id":3,"slug":"legacy","category":"tennis","title":"Legacy","excerpt":"",
   "translations":"oops","published_at":"2026-05-29T10:00:00Z"}
]`

func TestLatest_SendsQueryAndDecodesRows(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(rowsJSON))
	}))
	defer srv.Close()

	repo, err := NewArticleRepository(srv.URL+"/", "anon-key", srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	articles, err := repo.Latest(context.Background(), 3)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}

	if gotPath != "/rest/v1/articles" {
		t.Fatalf("path = %q", gotPath)
	}
	for _, want := range []string{"limit=3", "order=published_at.desc", "published_at=not.is.null"} {
		if !strings.Contains(gotQuery, want) {
			t.Fatalf("query %q lacks %q", gotQuery, want)
		}
	}
	if gotKey != "anon-key" || gotAuth != "Bearer anon-key" {
		t.Fatalf("headers apikey=%q authorization=%q", gotKey, gotAuth)
	}

	if len(articles) != 3 {
		t.Fatalf("len = %d", len(articles))
	}
	if got := translation.Resolve(articles[0].Translations, "title", "fr", ""); got != "Finale" {
		t.Fatalf("article 1 fr title = %q", got)
	}
	if articles[0].PublishedAt.IsZero() || articles[0].Excerpt != "" {
		t.Fatalf("article 1 = %+v", articles[0])
	}
	if got := translation.Resolve(articles[1].Translations, "title", "de", ""); got != "Großer Preis" {
		t.Fatalf("article 2 de title = %q", got)
	}
	if !articles[1].PublishedAt.IsZero() || articles[1].Category != "" {
		t.Fatalf("article 2 = %+v", articles[1])
	}
	if got := translation.Resolve(articles[2].Translations, "title", "en", "Legacy"); got != "Legacy" {
		t.Fatalf("article 3 title = %q", got)
	}
}

func TestFindBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("slug") == "eq.cup-final" {
			_, _ = w.Write([]byte(`[{"id":1,"slug":"cup-final","title":"Cup final","translations":null}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	repo, err := NewArticleRepository(srv.URL, "", srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	a, err := repo.FindBySlug(context.Background(), "cup-final")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if a.ID != 1 || a.Translations != nil {
		t.Fatalf("article = %+v", a)
	}
	if _, err := repo.FindBySlug(context.Background(), "nope"); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"JWT expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	repo, err := NewArticleRepository(srv.URL, "k", srv.Client())
	if err != nil {
		t.Fatal(err)
	}
	_, err = repo.Latest(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "JWT expired") {
		t.Fatalf("unexpected error: %v", err)
	}
}
