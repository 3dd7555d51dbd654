package entities

import "time"

// Article is a content row as stored upstream. Translations holds the
// decoded translations column, in whichever nesting its producer used.
type Article struct {
	ID           int64
	Slug         string
	Category     string
	Title        string // base column, last-resort fallback
	Excerpt      string
	Translations any
	PublishedAt  time.Time // zero = draft
}

// LocalizedArticle is an article rendered for one language.
type LocalizedArticle struct {
	ID          int64
	Slug        string
	Category    string
	Language    string
	Title       string
	Excerpt     string
	PublishedAt time.Time
	// TitleSource names the translations nesting the title came from
	// ("language-first", "field-first" or "none").
	TitleSource string
}
