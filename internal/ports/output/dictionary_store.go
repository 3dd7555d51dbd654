package output

import "sportsnews/internal/domain/entities"

// DictionaryStore loads and persists per-language UI dictionaries.
type DictionaryStore interface {
	// LoadAll returns every dictionary, sorted by language.
	LoadAll() ([]entities.Dictionary, error)
	Save(dict *entities.Dictionary) error
}
