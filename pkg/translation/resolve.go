// Package translation resolves localized strings out of the free-form
// translations column attached to content rows.
//
// Two producers write that column with different nestings:
//
//	{"en": {"title": "..."}}   language first (shape A)
//	{"title": {"en": "..."}}   field first (shape B)
//
// The resolver tries shape A, then shape B. It never fails: malformed or
// missing data degrades to the caller's fallback.
package translation

import "encoding/json"

// English is the language every lookup falls back to.
const English = "en"

// Shape identifies which nesting a value was found under.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeLanguageFirst
	ShapeFieldFirst
)

func (s Shape) String() string {
	switch s {
	case ShapeLanguageFirst:
		return "language-first"
	case ShapeFieldFirst:
		return "field-first"
	default:
		return "none"
	}
}

// ParseBundle decodes a raw translations column. Empty or invalid JSON
// yields nil, which every resolver function treats as "no translations".
func ParseBundle(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var bundle any
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil
	}
	return bundle
}

// Lookup returns the raw value stored for field in language, and the shape
// it was found under. Nil values count as absent.
func Lookup(bundle any, field, language string) (any, Shape, bool) {
	root, ok := bundle.(map[string]any)
	if !ok {
		return nil, ShapeNone, false
	}
	if v, ok := nested(root, language, field); ok {
		return v, ShapeLanguageFirst, true
	}
	if v, ok := nested(root, field, language); ok {
		return v, ShapeFieldFirst, true
	}
	return nil, ShapeNone, false
}

// Resolve returns the string stored for field in language, or fallback.
// A present empty string is returned as-is.
func Resolve(bundle any, field, language, fallback string) string {
	root, ok := bundle.(map[string]any)
	if !ok {
		return fallback
	}
	if s, ok := nestedString(root, language, field); ok {
		return s
	}
	if s, ok := nestedString(root, field, language); ok {
		return s
	}
	return fallback
}

// ResolveWithEnglishFallback tries language, then English, then fallback.
// Unlike Resolve, an empty string is treated as missing.
func ResolveWithEnglishFallback(bundle any, field, language, fallback string) string {
	if s := Resolve(bundle, field, language, ""); s != "" {
		return s
	}
	if s := Resolve(bundle, field, English, ""); s != "" {
		return s
	}
	return fallback
}

func nested(root map[string]any, outer, inner string) (any, bool) {
	m, ok := root[outer].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[inner]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// nestedString only accepts string leaves; anything else is not renderable.
func nestedString(root map[string]any, outer, inner string) (string, bool) {
	v, ok := nested(root, outer, inner)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
