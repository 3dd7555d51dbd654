package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sportsnews/internal/application"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/infrastructure/dictionary"
)

func (a *App) runBackfill(_ context.Context, args []string) error {
	fs := a.flagSet("backfill")
	dir := fs.String("dir", a.cfg.LocalesDir, "directory holding <language>.json dictionaries")
	defaultsPath := fs.String("defaults", "", "TOML file of [[entry]] key/value pairs replacing the built-in defaults")
	dryRun := fs.Bool("dry-run", false, "report insertions without writing files")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	uiLang := fs.String("ui-lang", a.cfg.UILanguage, "language of the console report")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	defaults := application.DefaultBackfill
	if *defaultsPath != "" {
		loaded, err := LoadDefaults(*defaultsPath)
		if err != nil {
			return err
		}
		defaults = loaded
	}

	svc := application.NewDictionaryService(dictionary.NewFileStore(*dir))
	results, err := svc.Backfill(defaults, *dryRun)
	if err != nil {
		return err
	}

	if *asJSON {
		return writeJSON(a, results)
	}
	for _, r := range results {
		data := map[string]any{"Language": r.Language, "Count": len(r.Inserted)}
		switch {
		case len(r.Inserted) == 0:
			fmt.Fprintln(a.out, a.t.T(*uiLang, "backfill_unchanged", data))
		case *dryRun:
			fmt.Fprintln(a.out, a.t.T(*uiLang, "backfill_would_add", data))
		default:
			fmt.Fprintln(a.out, a.t.T(*uiLang, "backfill_added", data))
		}
	}
	return nil
}

type defaultsFile struct {
	Entry []struct {
		Key   string `toml:"key"`
		Value string `toml:"value"`
	} `toml:"entry"`
}

// LoadDefaults reads backfill defaults from a TOML file of [[entry]]
// tables. Entry order is kept; keys must be non-empty and unique.
func LoadDefaults(path string) ([]entities.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	var f defaultsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse defaults %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(f.Entry))
	out := make([]entities.Entry, 0, len(f.Entry))
	for i, e := range f.Entry {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			return nil, fmt.Errorf("defaults %s: entry %d has no key", path, i+1)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("defaults %s: duplicate key %q", path, key)
		}
		seen[key] = struct{}{}
		out = append(out, entities.Entry{Key: key, Value: e.Value})
	}
	return out, nil
}
