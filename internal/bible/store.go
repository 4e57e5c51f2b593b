// Package bible holds the scripture dataset and the read-only query layer
// over it: chapter lookup, navigation, full-text search and the canonical
// book table.
package bible

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.json
var dataFS embed.FS

var ErrVersionNotFound = errors.New("bible version not found")

// rawTranslation mirrors the on-disk dataset: book -> chapter -> verse -> text.
type rawTranslation map[string]map[string]map[string]string

// Translation is one loaded Bible edition. Immutable after load.
type Translation struct {
	books rawTranslation
	order []string
}

// Book returns the chapter map for the named book.
func (t *Translation) Book(name string) (map[string]map[string]string, bool) {
	b, ok := t.books[name]
	return b, ok
}

// Books lists book names in canonical order (books the dataset lacks are
// simply absent; books outside the canon sort after it alphabetically).
func (t *Translation) Books() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func newTranslation(raw rawTranslation) *Translation {
	t := &Translation{books: raw}

	var canonical, extra []string
	for name := range raw {
		if _, ok := BookByName(name); ok {
			canonical = append(canonical, name)
		} else {
			extra = append(extra, name)
		}
	}
	sort.Slice(canonical, func(i, j int) bool {
		return bookOrder[canonical[i]] < bookOrder[canonical[j]]
	})
	sort.Strings(extra)
	t.order = append(canonical, extra...)
	return t
}

// Store holds every bundled translation, loaded once at startup.
type Store struct {
	translations map[string]*Translation
	versions     []string
}

// NewStore loads all bundled translations from the embedded dataset. The
// version identifier is the uppercased file base name (kjv.json -> KJV).
func NewStore() (*Store, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read bundled dataset: %w", err)
	}

	s := &Store{translations: make(map[string]*Translation)}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}

		body, err := dataFS.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		var raw rawTranslation
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}

		version := strings.ToUpper(strings.TrimSuffix(name, ".json"))
		s.translations[version] = newTranslation(raw)
		s.versions = append(s.versions, version)
	}

	if len(s.versions) == 0 {
		return nil, errors.New("no bundled translations found")
	}
	sort.Strings(s.versions)
	return s, nil
}

// Load returns the named translation. Unknown identifiers are an explicit
// error so callers can tell "no such translation" from an empty chapter.
func (s *Store) Load(version string) (*Translation, error) {
	t, ok := s.translations[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVersionNotFound, version)
	}
	return t, nil
}

// Versions lists the bundled translation identifiers, sorted.
func (s *Store) Versions() []string {
	out := make([]string, len(s.versions))
	copy(out, s.versions)
	return out
}
