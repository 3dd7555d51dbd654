// Package rest reads content rows from the hosted database's REST endpoint
// (PostgREST conventions: /rest/v1/<table> with filter query parameters).
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
	"sportsnews/pkg/translation"
)

var _ output.ArticleRepository = (*ArticleRepository)(nil)

const (
	selectColumns = "id,slug,category,title,excerpt,translations,published_at"
	maxErrorBody  = 512
)

type ArticleRepository struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
}

// NewArticleRepository targets baseURL (the project URL, without
// /rest/v1). A nil client uses a client with a 15s timeout.
func NewArticleRepository(baseURL, apiKey string, client *http.Client) (*ArticleRepository, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("rest: parse base url: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &ArticleRepository{baseURL: u, apiKey: apiKey, client: client}, nil
}

type articleRow struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"slug"`
	Category     *string         `json:"category"`
	Title        string          `json:"title"`
	Excerpt      *string         `json:"excerpt"`
	Translations json.RawMessage `json:"translations"`
	PublishedAt  *time.Time      `json:"published_at"`
}

func (r articleRow) toDomain() entities.Article {
	a := entities.Article{
		ID:           r.ID,
		Slug:         r.Slug,
		Title:        r.Title,
		Translations: translation.ParseBundle(r.Translations),
	}
	if r.Category != nil {
		a.Category = *r.Category
	}
	if r.Excerpt != nil {
		a.Excerpt = *r.Excerpt
	}
	if r.PublishedAt != nil {
		a.PublishedAt = *r.PublishedAt
	}
	return a
}

func (r *ArticleRepository) Latest(ctx context.Context, limit int) ([]entities.Article, error) {
	q := url.Values{}
	q.Set("select", selectColumns)
	q.Set("published_at", "not.is.null")
	q.Set("order", "published_at.desc")
	q.Set("limit", strconv.Itoa(limit))

	rows, err := r.fetch(ctx, "articles", q)
	if err != nil {
		return nil, fmt.Errorf("fetch latest articles: %w", err)
	}
	out := make([]entities.Article, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*entities.Article, error) {
	q := url.Values{}
	q.Set("select", selectColumns)
	q.Set("slug", "eq."+slug)
	q.Set("limit", "1")

	rows, err := r.fetch(ctx, "articles", q)
	if err != nil {
		return nil, fmt.Errorf("fetch article by slug: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrArticleNotFound, slug)
	}
	a := rows[0].toDomain()
	return &a, nil
}

func (r *ArticleRepository) fetch(ctx context.Context, table string, q url.Values) ([]articleRow, error) {
	u := r.baseURL.JoinPath("rest", "v1", table)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("apikey", r.apiKey)
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rows []articleRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}
