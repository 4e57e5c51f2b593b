package bible

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

// Verse is the value object handed to every consumer. Reference is the
// identity key used across the whole service; a fresh Verse is derived on
// every read and never mutated.
type Verse struct {
	Book      string `json:"book"`
	Chapter   string `json:"chapter"`
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// MakeReference builds the canonical "{Book} {Chapter}:{Verse}" identity key.
// Every collection in the service must construct references through here.
func MakeReference(book, chapter string, number int) string {
	return fmt.Sprintf("%s %s:%d", book, chapter, number)
}

// ParseReference splits a canonical reference back into its parts. The book
// name may itself contain spaces ("1 John 3:16"), so the chapter:verse pair
// is taken from the last space-separated token.
func ParseReference(ref string) (book, chapter string, number int, err error) {
	i := strings.LastIndex(ref, " ")
	if i <= 0 {
		return "", "", 0, fmt.Errorf("malformed reference %q", ref)
	}
	book = ref[:i]

	chapterVerse := strings.SplitN(ref[i+1:], ":", 2)
	if len(chapterVerse) != 2 {
		return "", "", 0, fmt.Errorf("malformed reference %q", ref)
	}
	chapter = chapterVerse[0]

	number, err = strconv.Atoi(chapterVerse[1])
	if err != nil || number < 1 {
		return "", "", 0, fmt.Errorf("malformed reference %q", ref)
	}
	return book, chapter, number, nil
}

// Locator resolves chapters, chapter counts and navigation bounds against
// the store. Missing books or chapters are "nothing to show", not failures.
type Locator struct {
	store *Store
}

func NewLocator(store *Store) *Locator {
	return &Locator{store: store}
}

// Chapter returns the verses of one chapter sorted strictly ascending by
// verse number. Gaps in the source data are preserved as-is. An unknown
// version is an error; an unknown book or chapter yields an empty slice.
func (l *Locator) Chapter(version, book, chapter string) ([]Verse, error) {
	t, err := l.store.Load(version)
	if err != nil {
		return nil, err
	}

	bookData, ok := t.Book(book)
	if !ok {
		log.Printf("book %q not found in %s", book, version)
		return nil, nil
	}

	chapterData, ok := bookData[chapter]
	if !ok {
		log.Printf("chapter %s not found in %s (%s)", chapter, book, version)
		return nil, nil
	}

	verses := make([]Verse, 0, len(chapterData))
	for verseNumber, text := range chapterData {
		n, err := strconv.Atoi(verseNumber)
		if err != nil {
			log.Printf("skipping non-numeric verse key %q in %s %s", verseNumber, book, chapter)
			continue
		}
		verses = append(verses, Verse{
			Book:      book,
			Chapter:   chapter,
			Number:    n,
			Text:      text,
			Reference: MakeReference(book, chapter, n),
		})
	}
	sort.Slice(verses, func(i, j int) bool { return verses[i].Number < verses[j].Number })
	return verses, nil
}

// ChapterCount reports how many chapters of the book the translation carries.
// 0 when the book (or the version) is absent.
func (l *Locator) ChapterCount(version, book string) int {
	t, err := l.store.Load(version)
	if err != nil {
		log.Printf("chapter count: %v", err)
		return 0
	}
	bookData, ok := t.Book(book)
	if !ok {
		return 0
	}
	return len(bookData)
}

// ClampChapter forces requested into [1, ChapterCount]. Navigation never
// produces an out-of-range chapter and never fails: below-range requests
// stay at 1, above-range requests stay at the last chapter.
func (l *Locator) ClampChapter(version, book string, requested int) int {
	count := l.ChapterCount(version, book)
	if count == 0 || requested < 1 {
		return 1
	}
	if requested > count {
		return count
	}
	return requested
}
