package entities

// Dictionary is one per-language UI dictionary file.
// Keys keeps the order the keys appear in the file.
type Dictionary struct {
	Language string
	Path     string
	Keys     []string
	Values   map[string]string
}

// Has reports whether key is present.
func (d *Dictionary) Has(key string) bool {
	_, ok := d.Values[key]
	return ok
}

// Set inserts or replaces key. New keys are appended after existing ones.
func (d *Dictionary) Set(key, value string) {
	if d.Values == nil {
		d.Values = make(map[string]string)
	}
	if _, ok := d.Values[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Values[key] = value
}

// Entry is a key with its default display string.
type Entry struct {
	Key   string
	Value string
}

// LanguageGap lists the keys a language lacks compared to the reference.
type LanguageGap struct {
	Language string   `json:"language"`
	Missing  []string `json:"missing"`
	Extra    []string `json:"extra,omitempty"`
}

// AuditReport is the outcome of comparing sibling dictionaries against a
// reference language.
type AuditReport struct {
	Reference     string        `json:"reference"`
	ReferenceKeys int           `json:"reference_keys"`
	Languages     []LanguageGap `json:"languages"`
}

// MissingCount is the total number of absent keys across languages.
func (r *AuditReport) MissingCount() int {
	n := 0
	for _, l := range r.Languages {
		n += len(l.Missing)
	}
	return n
}

// MissingByLanguage returns the report as language -> missing keys,
// leaving out languages without gaps.
func (r *AuditReport) MissingByLanguage() map[string][]string {
	out := make(map[string][]string)
	for _, l := range r.Languages {
		if len(l.Missing) > 0 {
			out[l.Language] = l.Missing
		}
	}
	return out
}

// BackfillResult records the keys inserted into one dictionary.
type BackfillResult struct {
	Language string   `json:"language"`
	Path     string   `json:"path"`
	Inserted []string `json:"inserted"`
	Written  bool     `json:"written"`
}

// ColumnInfo describes one column of a database table.
type ColumnInfo struct {
	Table    string
	Column   string
	DataType string
	Nullable bool
	Default  string
}
