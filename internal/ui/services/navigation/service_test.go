package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigateEmpty(t *testing.T) {
	s := NewService()

	_, ok := s.Next()
	assert.False(t, ok)
	_, ok = s.Prev()
	assert.False(t, ok)
	assert.Equal(t, -1, s.GetCursor())
}

func TestNextWrapsAround(t *testing.T) {
	s := NewService()
	s.SetItems([]string{"c", "b", "a"})

	var got []string
	for i := 0; i < 4; i++ {
		term, ok := s.Next()
		require.True(t, ok)
		got = append(got, term)
	}

	assert.Equal(t, []string{"c", "b", "a", "c"}, got)
}

func TestPrevStartsFromOldest(t *testing.T) {
	s := NewService()
	s.SetItems([]string{"c", "b", "a"})

	term, ok := s.Prev()
	require.True(t, ok)
	assert.Equal(t, "a", term)

	term, _ = s.Prev()
	assert.Equal(t, "b", term)
}

func TestSetItemsKeepsHighlight(t *testing.T) {
	s := NewService()
	s.SetItems([]string{"c", "b", "a"})
	s.Next()
	s.Next()

	s.SetItems([]string{"d", "c", "b"})
	term, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", term)
	assert.Equal(t, 2, s.GetCursor())

	s.SetItems([]string{"x"})
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	s := NewService()
	s.SetItems([]string{"a"})
	s.Next()

	s.Reset()

	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSetItemsCopies(t *testing.T) {
	items := []string{"a", "b"}
	s := NewService()
	s.SetItems(items)
	items[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.Items())
}
