package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarker map[string]bool

func (m fakeMarker) Contains(reference string) bool { return m[reference] }

func newTestService(t *testing.T, bookmarks, saved fakeMarker) *Service {
	t.Helper()
	if bookmarks == nil {
		bookmarks = fakeMarker{}
	}
	if saved == nil {
		saved = fakeMarker{}
	}
	return NewService(newTestStore(t), bookmarks, saved)
}

func TestService_Chapter_AnnotatesAtReadTime(t *testing.T) {
	bookmarks := fakeMarker{"John 3:16": true}
	saved := fakeMarker{"John 3:17": true}
	svc := newTestService(t, bookmarks, saved)

	verses, err := svc.Chapter("KJV", "John", "3")
	require.NoError(t, err)
	require.NotEmpty(t, verses)

	byRef := make(map[string]AnnotatedVerse)
	for _, v := range verses {
		byRef[v.Reference] = v
	}

	assert.True(t, byRef["John 3:16"].Bookmarked)
	assert.False(t, byRef["John 3:16"].Saved)
	assert.True(t, byRef["John 3:17"].Saved)
	assert.False(t, byRef["John 3:14"].Bookmarked)

	// Flags are recomputed per read, not stored on the verse: flipping the
	// collection flips the next read.
	delete(bookmarks, "John 3:16")
	verses, err = svc.Chapter("KJV", "John", "3")
	require.NoError(t, err)
	for _, v := range verses {
		if v.Reference == "John 3:16" {
			assert.False(t, v.Bookmarked)
		}
	}
}

func TestService_Books_GroupedByTestament(t *testing.T) {
	svc := newTestService(t, nil, nil)

	groups, err := svc.Books("KJV")
	require.NoError(t, err)

	oldNames := make([]string, 0, len(groups.Old))
	for _, b := range groups.Old {
		oldNames = append(oldNames, b.Name)
	}
	newNames := make([]string, 0, len(groups.New))
	for _, b := range groups.New {
		newNames = append(newNames, b.Name)
	}

	assert.Contains(t, oldNames, "Genesis")
	assert.Contains(t, oldNames, "Psalm")
	assert.Contains(t, newNames, "John")
	assert.Contains(t, newNames, "Philippians")

	// Chapter counts come from the loaded dataset, not the canonical table.
	for _, b := range groups.Old {
		if b.Name == "Genesis" {
			assert.Equal(t, 2, b.Chapters)
		}
	}
}

func TestService_Navigate(t *testing.T) {
	svc := newTestService(t, nil, nil)

	next, err := svc.Navigate("KJV", "Genesis", "1", DirNext)
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	// Incrementing past the last chapter is a no-op.
	stay, err := svc.Navigate("KJV", "Genesis", "2", DirNext)
	require.NoError(t, err)
	assert.Equal(t, 2, stay)

	// Decrementing below chapter 1 is a no-op.
	first, err := svc.Navigate("KJV", "Genesis", "1", DirPrev)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	_, err = svc.Navigate("KJV", "Genesis", "1", "sideways")
	assert.Error(t, err)

	_, err = svc.Navigate("NIV", "Genesis", "1", DirNext)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestService_Resolve(t *testing.T) {
	svc := newTestService(t, nil, nil)

	v, ok, err := svc.Resolve("KJV", "John", "3", 16)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "John 3:16", v.Reference)
	assert.Contains(t, v.Text, "only begotten Son")

	_, ok, err = svc.Resolve("KJV", "John", "3", 99)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = svc.Resolve("NIV", "John", "3", 16)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}
