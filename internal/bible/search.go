package bible

import (
	"sort"
	"strconv"
	"strings"
)

// Searcher runs case-insensitive substring search over one translation.
// It is a deliberate full scan: the dataset is small and static, so no index
// is built, and results come back in traversal order (book declaration
// order, then chapter ascending, then verse ascending), not ranked.
type Searcher struct {
	store *Store
}

func NewSearcher(store *Store) *Searcher {
	return &Searcher{store: store}
}

// Search returns every verse whose text contains query, ignoring case.
// An empty or whitespace-only query returns nothing without scanning.
func (s *Searcher) Search(version, query string) ([]Verse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	t, err := s.store.Load(version)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var results []Verse

	for _, bookName := range t.Books() {
		bookData, _ := t.Book(bookName)
		for _, chapter := range sortedNumericKeys(bookData) {
			chapterData := bookData[chapter]
			for _, verseNumber := range sortedNumericKeys(chapterData) {
				text := chapterData[verseNumber]
				if !strings.Contains(strings.ToLower(text), needle) {
					continue
				}
				n, err := strconv.Atoi(verseNumber)
				if err != nil {
					continue
				}
				results = append(results, Verse{
					Book:      bookName,
					Chapter:   chapter,
					Number:    n,
					Text:      text,
					Reference: MakeReference(bookName, chapter, n),
				})
			}
		}
	}
	return results, nil
}

// sortedNumericKeys orders map keys numerically; non-numeric keys sort last.
func sortedNumericKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr != nil || berr != nil {
			if (aerr == nil) != (berr == nil) {
				return aerr == nil
			}
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}
