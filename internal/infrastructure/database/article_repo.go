package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
)

var _ output.ArticleRepository = (*ArticleRepository)(nil)

// Querier is the subset of pgxpool.Pool the repositories need.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const articleColumns = `id, slug, category, title, excerpt, translations, published_at`

// ArticleRepository implements output.ArticleRepository using pgx.
type ArticleRepository struct {
	db Querier
}

func NewArticleRepository(db Querier) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Latest(ctx context.Context, limit int) ([]entities.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles
		WHERE published_at IS NOT NULL AND published_at <= now()
		ORDER BY published_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query latest articles: %w", err)
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByName[articleRow])
	if err != nil {
		return nil, fmt.Errorf("scan latest articles: %w", err)
	}
	out := make([]entities.Article, len(recs))
	for i := range recs {
		out[i] = articleToDomain(recs[i])
	}
	return out, nil
}

func (r *ArticleRepository) FindBySlug(ctx context.Context, slug string) (*entities.Article, error) {
	rows, err := r.db.Query(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	if err != nil {
		return nil, fmt.Errorf("query article by slug: %w", err)
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[articleRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArticleNotFound, slug)
		}
		return nil, fmt.Errorf("scan article by slug: %w", err)
	}
	a := articleToDomain(rec)
	return &a, nil
}
