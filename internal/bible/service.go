package bible

import (
	"fmt"
	"strconv"
)

// Marker reports membership of a verse reference in an annotation
// collection. Implemented by the annotations store; kept as an interface here
// so the read side stays decoupled from persistence.
type Marker interface {
	Contains(reference string) bool
}

// AnnotatedVerse is a Verse plus the view-time bookmark/saved flags. The
// flags are computed against the annotation collections on every read; they
// are never stored on the verse.
type AnnotatedVerse struct {
	Verse
	Bookmarked bool `json:"bookmarked"`
	Saved      bool `json:"saved"`
}

// BookSummary is one entry of the books overview: canonical metadata plus
// the chapter count actually present in the loaded translation.
type BookSummary struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Chapters     int    `json:"chapters"`
}

// BookGroups is the books overview grouped by testament.
type BookGroups struct {
	Old []BookSummary `json:"old"`
	New []BookSummary `json:"new"`
}

// Navigation directions.
const (
	DirPrev = "prev"
	DirNext = "next"
)

// Service is the read side of the API: chapters, books, search and
// navigation, with annotation flags attached at read time.
type Service struct {
	store     *Store
	locator   *Locator
	searcher  *Searcher
	bookmarks Marker
	saved     Marker
}

func NewService(store *Store, bookmarks, saved Marker) *Service {
	return &Service{
		store:     store,
		locator:   NewLocator(store),
		searcher:  NewSearcher(store),
		bookmarks: bookmarks,
		saved:     saved,
	}
}

func (s *Service) Versions() []string {
	return s.store.Versions()
}

// Books returns the translation's books grouped by testament, with chapter
// counts taken from the dataset rather than the canonical table.
func (s *Service) Books(version string) (BookGroups, error) {
	t, err := s.store.Load(version)
	if err != nil {
		return BookGroups{}, err
	}

	var groups BookGroups
	for _, name := range t.Books() {
		meta, ok := BookByName(name)
		if !ok {
			continue
		}
		summary := BookSummary{
			Name:         name,
			Abbreviation: meta.Abbreviation,
			Chapters:     s.locator.ChapterCount(version, name),
		}
		if meta.Testament == OldTestament {
			groups.Old = append(groups.Old, summary)
		} else {
			groups.New = append(groups.New, summary)
		}
	}
	return groups, nil
}

// Chapter returns one chapter's verses annotated with bookmark/saved flags.
func (s *Service) Chapter(version, book, chapter string) ([]AnnotatedVerse, error) {
	verses, err := s.locator.Chapter(version, book, chapter)
	if err != nil {
		return nil, err
	}
	return s.annotate(verses), nil
}

// Navigate resolves the prev/next chapter for the reader's arrows, clamped
// into the book's valid range.
func (s *Service) Navigate(version, book, chapter, dir string) (int, error) {
	if _, err := s.store.Load(version); err != nil {
		return 0, err
	}

	current, err := strconv.Atoi(chapter)
	if err != nil {
		current = 1
	}

	switch dir {
	case DirPrev:
		current--
	case DirNext:
		current++
	default:
		return 0, fmt.Errorf("unknown direction %q", dir)
	}
	return s.locator.ClampChapter(version, book, current), nil
}

// Search runs the full-text scan and annotates the hits.
func (s *Service) Search(version, query string) ([]AnnotatedVerse, error) {
	verses, err := s.searcher.Search(version, query)
	if err != nil {
		return nil, err
	}
	return s.annotate(verses), nil
}

// Resolve looks a single verse up by position. The second return is false
// when the book, chapter or verse is absent from the translation.
func (s *Service) Resolve(version, book, chapter string, number int) (Verse, bool, error) {
	verses, err := s.locator.Chapter(version, book, chapter)
	if err != nil {
		return Verse{}, false, err
	}
	for _, v := range verses {
		if v.Number == number {
			return v, true, nil
		}
	}
	return Verse{}, false, nil
}

func (s *Service) annotate(verses []Verse) []AnnotatedVerse {
	out := make([]AnnotatedVerse, 0, len(verses))
	for _, v := range verses {
		out = append(out, AnnotatedVerse{
			Verse:      v,
			Bookmarked: s.bookmarks.Contains(v.Reference),
			Saved:      s.saved.Contains(v.Reference),
		})
	}
	return out
}
