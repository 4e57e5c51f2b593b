package bible

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_EmptyAndWhitespaceQueries(t *testing.T) {
	s := NewSearcher(newTestStore(t))

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := s.Search("KJV", query)
		require.NoError(t, err)
		assert.Empty(t, results, "query %q should short-circuit to empty", query)
	}
}

func TestSearcher_CaseInsensitiveSubstring(t *testing.T) {
	s := NewSearcher(newTestStore(t))

	lower, err := s.Search("KJV", "love")
	require.NoError(t, err)
	upper, err := s.Search("KJV", "LOVE")
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper, "matching must ignore case")

	for _, v := range lower {
		assert.Contains(t, strings.ToLower(v.Text), "love")
	}
}

func TestSearcher_NoFalseNegatives(t *testing.T) {
	store := newTestStore(t)
	s := NewSearcher(store)

	results, err := s.Search("KJV", "light")
	require.NoError(t, err)

	found := make(map[string]bool, len(results))
	for _, v := range results {
		found[v.Reference] = true
	}

	// Every verse in the translation matching the predicate must be present.
	kjv, err := store.Load("KJV")
	require.NoError(t, err)
	for _, bookName := range kjv.Books() {
		book, _ := kjv.Book(bookName)
		for chapter, verses := range book {
			for number, text := range verses {
				if strings.Contains(strings.ToLower(text), "light") {
					ref := bookName + " " + chapter + ":" + number
					assert.True(t, found[ref], "missing %s", ref)
				}
			}
		}
	}
}

func TestSearcher_TraversalOrder(t *testing.T) {
	s := NewSearcher(newTestStore(t))

	results, err := s.Search("KJV", "the")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Book declaration (canonical) order, then chapter ascending, then verse
	// ascending. The fixture has Genesis before John before Philippians.
	firstIndex := make(map[string]int)
	for i, v := range results {
		if _, seen := firstIndex[v.Book]; !seen {
			firstIndex[v.Book] = i
		}
	}
	assert.Less(t, firstIndex["Genesis"], firstIndex["John"])

	prevByBook := make(map[string][2]int)
	for _, v := range results {
		chapter := atoiOrZero(v.Chapter)
		if prev, ok := prevByBook[v.Book]; ok {
			if prev[0] == chapter {
				assert.Greater(t, v.Number, prev[1], "verse order within %s %s", v.Book, v.Chapter)
			} else {
				assert.Greater(t, chapter, prev[0], "chapter order within %s", v.Book)
			}
		}
		prevByBook[v.Book] = [2]int{chapter, v.Number}
	}
}

func TestSearcher_UnknownVersion(t *testing.T) {
	s := NewSearcher(newTestStore(t))
	_, err := s.Search("NIV", "love")
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
