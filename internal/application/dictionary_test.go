package application

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/infrastructure/dictionary"
)

type memoryStore struct {
	dicts []entities.Dictionary
	saved []string
}

func (m *memoryStore) LoadAll() ([]entities.Dictionary, error) {
	out := make([]entities.Dictionary, len(m.dicts))
	for i, d := range m.dicts {
		c := entities.Dictionary{Language: d.Language, Path: d.Path, Values: map[string]string{}}
		for _, k := range d.Keys {
			c.Set(k, d.Values[k])
		}
		out[i] = c
	}
	return out, nil
}

func (m *memoryStore) Save(d *entities.Dictionary) error {
	m.saved = append(m.saved, d.Language)
	for i := range m.dicts {
		if m.dicts[i].Language == d.Language {
			m.dicts[i] = *d
		}
	}
	return nil
}

func dict(lang string, keys ...string) entities.Dictionary {
	d := entities.Dictionary{Language: lang, Path: lang + ".json"}
	for _, k := range keys {
		d.Set(k, k)
	}
	return d
}

func TestAudit_ReportsMissingKeysInReferenceOrder(t *testing.T) {
	store := &memoryStore{dicts: []entities.Dictionary{
		dict("en", "c", "a", "b"),
		dict("fr", "a", "c"),
		dict("es", "b", "x"),
	}}

	report, err := NewDictionaryService(store).Audit("en")
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if report.ReferenceKeys != 3 {
		t.Fatalf("reference keys = %d", report.ReferenceKeys)
	}
	want := map[string][]string{
		"fr": {"b"},
		"es": {"c", "a"},
	}
	if got := report.MissingByLanguage(); !reflect.DeepEqual(got, want) {
		t.Fatalf("missing = %v, want %v", got, want)
	}
	for _, l := range report.Languages {
		if l.Language == "es" && !reflect.DeepEqual(l.Extra, []string{"x"}) {
			t.Fatalf("es extra = %v", l.Extra)
		}
	}
	if report.MissingCount() != 3 {
		t.Fatalf("missing count = %d", report.MissingCount())
	}
}

func TestAudit_NoGaps(t *testing.T) {
	store := &memoryStore{dicts: []entities.Dictionary{dict("en", "a"), dict("fr", "a")}}
	report, err := NewDictionaryService(store).Audit("en")
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if len(report.MissingByLanguage()) != 0 {
		t.Fatalf("expected no gaps, got %v", report.MissingByLanguage())
	}
}

func TestAudit_Errors(t *testing.T) {
	if _, err := NewDictionaryService(&memoryStore{}).Audit("en"); !errors.Is(err, domain.ErrNoDictionaries) {
		t.Fatalf("expected ErrNoDictionaries, got %v", err)
	}
	store := &memoryStore{dicts: []entities.Dictionary{dict("fr", "a")}}
	if _, err := NewDictionaryService(store).Audit("en"); !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestBackfill_InsertsOnlyAbsentKeys(t *testing.T) {
	store := &memoryStore{dicts: []entities.Dictionary{
		dict("en", "nav.home", "nav.live_scores"),
		dict("fr", "nav.home", "nav.live_scores", "nav.fixtures"),
	}}
	store.dicts[0].Set("nav.live_scores", "Live")
	defaults := []entities.Entry{
		{Key: "nav.live_scores", Value: "Live scores"},
		{Key: "nav.fixtures", Value: "Fixtures"},
	}

	results, err := NewDictionaryService(store).Backfill(defaults, false)
	if err != nil {
		t.Fatalf("Backfill: %v", err)
	}
	if !reflect.DeepEqual(results[0].Inserted, []string{"nav.fixtures"}) || !results[0].Written {
		t.Fatalf("en result = %+v", results[0])
	}
	if len(results[1].Inserted) != 0 || results[1].Written {
		t.Fatalf("fr result = %+v", results[1])
	}
	if !reflect.DeepEqual(store.saved, []string{"en"}) {
		t.Fatalf("saved = %v, want only en", store.saved)
	}
	if got := store.dicts[0].Values["nav.live_scores"]; got != "Live" {
		t.Fatalf("existing value overwritten: %q", got)
	}
	if !reflect.DeepEqual(store.dicts[0].Keys, []string{"nav.home", "nav.live_scores", "nav.fixtures"}) {
		t.Fatalf("keys = %v", store.dicts[0].Keys)
	}
}

func TestBackfill_DryRunDoesNotSave(t *testing.T) {
	store := &memoryStore{dicts: []entities.Dictionary{dict("en")}}
	results, err := NewDictionaryService(store).Backfill(DefaultBackfill, true)
	if err != nil {
		t.Fatalf("Backfill: %v", err)
	}
	if len(results[0].Inserted) != len(DefaultBackfill) || results[0].Written {
		t.Fatalf("result = %+v", results[0])
	}
	if len(store.saved) != 0 {
		t.Fatalf("dry run saved %v", store.saved)
	}
}

func TestBackfill_IdempotentOnDisk(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"en.json": "{\n  \"nav.home\": \"Home\"\n}\n",
		"fr.json": `{"nav.home":"Accueil","nav.fixtures":"Calendrier"}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	svc := NewDictionaryService(dictionary.NewFileStore(dir))

	if _, err := svc.Backfill(DefaultBackfill, false); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := readAll(t, dir)

	results, err := svc.Backfill(DefaultBackfill, false)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, r := range results {
		if len(r.Inserted) != 0 || r.Written {
			t.Fatalf("second run changed %s: %+v", r.Language, r)
		}
	}
	if second := readAll(t, dir); !reflect.DeepEqual(first, second) {
		t.Fatalf("files changed on second run")
	}
	if got := first["fr.json"]; !containsInOrder(got, `"nav.home"`, `"nav.fixtures"`, `"nav.live_scores"`) {
		t.Fatalf("fr.json order unexpected:\n%s", got)
	}
}

func readAll(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]string)
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[e.Name()] = string(b)
	}
	return out
}

func containsInOrder(s string, parts ...string) bool {
	for _, p := range parts {
		i := strings.Index(s, p)
		if i < 0 {
			return false
		}
		s = s[i+len(p):]
	}
	return true
}
