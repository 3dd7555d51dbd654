// Package dictionary stores per-language UI dictionaries as flat JSON files
// named <language>.json.
package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"sportsnews/internal/domain"
	"sportsnews/internal/domain/entities"
	"sportsnews/internal/ports/output"
)

const ext = ".json"

var _ output.DictionaryStore = (*FileStore)(nil)

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// FileStore reads and writes the dictionaries of one directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// LoadAll reads every *.json file of the directory. Other entries are
// skipped.
func (s *FileStore) LoadAll() ([]entities.Dictionary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDictionaryNotFound, s.dir)
		}
		return nil, fmt.Errorf("read locales directory: %w", err)
	}

	out := make([]entities.Dictionary, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		d, err := s.Load(strings.TrimSuffix(e.Name(), ext))
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Language < out[j].Language })
	return out, nil
}

// Load reads the dictionary of one language, keeping the file's key order.
func (s *FileStore) Load(language string) (*entities.Dictionary, error) {
	path := s.path(language)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	d.Language = language
	d.Path = path
	return d, nil
}

// Parse decodes a flat JSON object of strings. gjson walks the object in
// document order, which encoding/json maps cannot.
func Parse(data []byte) (*entities.Dictionary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", domain.ErrInvalidDictionary)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", domain.ErrInvalidDictionary)
	}

	d := &entities.Dictionary{Values: make(map[string]string)}
	var bad error
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			bad = fmt.Errorf("%w: key %q holds %s", domain.ErrInvalidDictionary, key.String(), value.Type)
			return false
		}
		d.Set(key.String(), value.String())
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return d, nil
}

// Save writes the dictionary pretty-printed with a trailing newline,
// keeping its key order and the existing file mode.
func (s *FileStore) Save(d *entities.Dictionary) error {
	if d.Path == "" {
		d.Path = s.path(d.Language)
	}
	data, err := Encode(d)
	if err != nil {
		return err
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(d.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(d.Path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", d.Path, err)
	}
	return nil
}

// Encode renders d as an indented JSON object in key order.
func Encode(d *entities.Dictionary) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeString(key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", key, err)
		}
		v, err := encodeString(d.Values[key])
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')

	out := pretty.PrettyOptions(buf.Bytes(), prettyOptions)
	out = append(bytes.TrimRight(out, "\n"), '\n')
	return out, nil
}

// encodeString quotes s without escaping HTML characters.
func encodeString(s string) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}

func (s *FileStore) path(language string) string {
	return filepath.Join(s.dir, language+ext)
}
