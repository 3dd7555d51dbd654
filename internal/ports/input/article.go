package input

import (
	"context"

	"sportsnews/internal/domain/entities"
)

type ArticleUseCase interface {
	Headlines(ctx context.Context, language string, limit int) ([]entities.LocalizedArticle, error)
	Article(ctx context.Context, slug, language string) (*entities.LocalizedArticle, error)
}
