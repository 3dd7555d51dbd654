package output

import (
	"context"

	"sportsnews/internal/domain/entities"
)

// ArticleRepository reads published articles from the upstream source.
type ArticleRepository interface {
	// Latest returns at most limit published articles, newest first.
	Latest(ctx context.Context, limit int) ([]entities.Article, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Article, error)
}
