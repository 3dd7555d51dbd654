package application

import (
	"fmt"
	"log"

	"golang.org/x/text/language"

	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/input"
	"sportsnews/internal/ports/output"
)

var _ input.DictionaryUseCase = (*DictionaryService)(nil)

// DefaultBackfill is the set of keys every dictionary must carry. Values are
// English placeholders; translators replace them afterwards.
var DefaultBackfill = []entities.Entry{
	{Key: "nav.live_scores", Value: "Live scores"},
	{Key: "nav.fixtures", Value: "Fixtures"},
	{Key: "nav.standings", Value: "Standings"},
	{Key: "article.read_more", Value: "Read more"},
	{Key: "article.published_on", Value: "Published on"},
	{Key: "article.related", Value: "Related articles"},
	{Key: "match.kickoff", Value: "Kick-off"},
	{Key: "match.full_time", Value: "Full time"},
	{Key: "common.loading", Value: "Loading..."},
	{Key: "common.error_retry", Value: "Something went wrong. Please try again."},
}

type DictionaryService struct {
	store output.DictionaryStore
}

func NewDictionaryService(store output.DictionaryStore) *DictionaryService {
	return &DictionaryService{store: store}
}

// Audit compares every dictionary against the reference language.
func (s *DictionaryService) Audit(reference string) (*entities.AuditReport, error) {
	dicts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(dicts) == 0 {
		return nil, domain.ErrNoDictionaries
	}

	var ref *entities.Dictionary
	for i := range dicts {
		if dicts[i].Language == reference {
			ref = &dicts[i]
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrReferenceNotFound, reference)
	}

	report := &entities.AuditReport{
		Reference:     ref.Language,
		ReferenceKeys: len(ref.Keys),
		Languages:     make([]entities.LanguageGap, 0, len(dicts)-1),
	}
	for i := range dicts {
		d := &dicts[i]
		if d == ref {
			continue
		}
		if _, err := language.Parse(d.Language); err != nil {
			log.Printf("⚠️ %s: %q is not a recognised language code", d.Path, d.Language)
		}
		report.Languages = append(report.Languages, entities.LanguageGap{
			Language: d.Language,
			Missing:  MissingKeys(ref, d),
			Extra:    MissingKeys(d, ref),
		})
	}
	return report, nil
}

// MissingKeys returns the keys of reference absent from sibling, in the
// reference's key order.
func MissingKeys(reference, sibling *entities.Dictionary) []string {
	out := make([]string, 0)
	for _, key := range reference.Keys {
		if !sibling.Has(key) {
			out = append(out, key)
		}
	}
	return out
}

// Backfill inserts every absent default into each dictionary. Existing keys
// are never modified and a dictionary is only written when it changed.
func (s *DictionaryService) Backfill(defaults []entities.Entry, dryRun bool) ([]entities.BackfillResult, error) {
	dicts, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(dicts) == 0 {
		return nil, domain.ErrNoDictionaries
	}

	results := make([]entities.BackfillResult, 0, len(dicts))
	for i := range dicts {
		d := &dicts[i]
		res := entities.BackfillResult{Language: d.Language, Path: d.Path, Inserted: []string{}}
		for _, e := range defaults {
			if d.Has(e.Key) {
				continue
			}
			d.Set(e.Key, e.Value)
			res.Inserted = append(res.Inserted, e.Key)
		}
		if len(res.Inserted) > 0 && !dryRun {
			if err := s.store.Save(d); err != nil {
				return results, fmt.Errorf("save %s: %w", d.Path, err)
			}
			res.Written = true
			log.Printf("✅ %s: %d key(s) added", d.Path, len(res.Inserted))
		}
		results = append(results, res)
	}
	return results, nil
}
