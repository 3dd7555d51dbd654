package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"sportsnews/internal/domain/entities"
	"sportsnews/pkg/translation"
)

// articleRow mirrors the articles table.
type articleRow struct {
	ID           int64              `db:"id"`
	Slug         string             `db:"slug"`
	Category     pgtype.Text        `db:"category"`
	Title        string             `db:"title"`
	Excerpt      pgtype.Text        `db:"excerpt"`
	Translations []byte             `db:"translations"`
	PublishedAt  pgtype.Timestamptz `db:"published_at"`
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func articleToDomain(r articleRow) entities.Article {
	return entities.Article{
		ID:           r.ID,
		Slug:         r.Slug,
		Category:     r.Category.String,
		Title:        r.Title,
		Excerpt:      r.Excerpt.String,
		Translations: translation.ParseBundle(r.Translations),
		PublishedAt:  pgtypeTimestamptzToTime(r.PublishedAt),
	}
}
