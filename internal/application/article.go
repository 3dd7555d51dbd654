package application

import (
	"context"
	"strings"
	"time"

	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/input"
	"sportsnews/internal/ports/output"
	"sportsnews/pkg/translation"
)

var _ input.ArticleUseCase = (*ArticleService)(nil)

const (
	DefaultHeadlineLimit = 10
	MaxHeadlineLimit     = 100
)

type ArticleService struct {
	repo output.ArticleRepository
	loc  *time.Location
}

// NewArticleService renders articles with dates in loc (UTC when nil).
func NewArticleService(repo output.ArticleRepository, loc *time.Location) *ArticleService {
	if loc == nil {
		loc = time.UTC
	}
	return &ArticleService{repo: repo, loc: loc}
}

func (s *ArticleService) Headlines(ctx context.Context, language string, limit int) ([]entities.LocalizedArticle, error) {
	if limit <= 0 {
		limit = DefaultHeadlineLimit
	}
	if limit > MaxHeadlineLimit {
		limit = MaxHeadlineLimit
	}
	articles, err := s.repo.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entities.LocalizedArticle, len(articles))
	for i := range articles {
		out[i] = s.localize(&articles[i], language)
	}
	return out, nil
}

func (s *ArticleService) Article(ctx context.Context, slug, language string) (*entities.LocalizedArticle, error) {
	a, err := s.repo.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	l := s.localize(a, language)
	return &l, nil
}

func (s *ArticleService) localize(a *entities.Article, language string) entities.LocalizedArticle {
	_, shape, _ := translation.Lookup(a.Translations, "title", language)
	if shape == translation.ShapeNone {
		_, shape, _ = translation.Lookup(a.Translations, "title", translation.English)
	}
	l := entities.LocalizedArticle{
		ID:          a.ID,
		Slug:        a.Slug,
		Category:    a.Category,
		Language:    language,
		Title:       translation.ResolveWithEnglishFallback(a.Translations, "title", language, a.Title),
		Excerpt:     translation.ResolveWithEnglishFallback(a.Translations, "excerpt", language, a.Excerpt),
		TitleSource: shape.String(),
	}
	if !a.PublishedAt.IsZero() {
		l.PublishedAt = a.PublishedAt.In(s.loc)
	}
	return l
}
