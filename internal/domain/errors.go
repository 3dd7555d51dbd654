package domain

import "errors"

// Domain errors.
var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrReferenceNotFound   = errors.New("reference dictionary not found")
	ErrDictionaryNotFound  = errors.New("dictionary not found")
	ErrInvalidDictionary   = errors.New("dictionary is not a flat string mapping")
	ErrNoDictionaries      = errors.New("no dictionary files found")
	ErrMissingTranslations = errors.New("dictionaries are missing reference keys")
	ErrDatabaseRequired    = errors.New("a database connection is required")
)

var codes = map[error]string{
	ErrArticleNotFound:     "article_not_found",
	ErrReferenceNotFound:   "reference_not_found",
	ErrDictionaryNotFound:  "dictionary_not_found",
	ErrInvalidDictionary:   "invalid_dictionary",
	ErrNoDictionaries:      "no_dictionaries",
	ErrMissingTranslations: "missing_translations",
	ErrDatabaseRequired:    "database_required",
}

// Code returns the stable code of the first domain error wrapped by err,
// or "" when err carries none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
