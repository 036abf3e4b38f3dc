package clues

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsOneEntryPerText(t *testing.T) {
	idx := NewIndex()

	assert.True(t, idx.Insert("Wet footprints on the rug"))
	assert.False(t, idx.Insert("Wet footprints on the rug"))
	assert.True(t, idx.Insert("Broken glass"))

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"Broken glass", "Wet footprints on the rug"}, idx.Slice())
}

func TestEmptyClueIsNeverIndexed(t *testing.T) {
	idx := NewIndex()

	assert.False(t, idx.Insert(""))
	assert.False(t, idx.Contains(""))
	assert.Zero(t, idx.Len())
}

func TestContains(t *testing.T) {
	idx := NewIndex()
	idx.Insert("X1")

	assert.True(t, idx.Contains("X1"))
	assert.False(t, idx.Contains("x1"))
	assert.False(t, idx.Contains("X2"))
}

func TestOrderIsByteWise(t *testing.T) {
	idx := NewIndex()
	for _, c := range []string{"b", "B", "a", "Ab", "A", "ab"} {
		idx.Insert(c)
	}

	assert.Equal(t, []string{"A", "Ab", "B", "a", "ab", "b"}, idx.Slice())
}

func TestRandomMultisetsStaySortedAndDistinct(t *testing.T) {
	words := []string{"clock", "glass", "page", "safe", "fiber", "footprints", "ash", "rope"}
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		idx := NewIndex()
		distinct := make(map[string]bool)
		for n := rng.Intn(40); n > 0; n-- {
			w := words[rng.Intn(len(words))]
			idx.Insert(w)
			distinct[w] = true
		}

		got := idx.Slice()
		require.Len(t, got, len(distinct))
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i])
		}

		want := make([]string, 0, len(distinct))
		for w := range distinct {
			want = append(want, w)
		}
		sort.Strings(want)
		assert.Equal(t, want, got)
	}
}

func TestAllIsRestartableAndStoppable(t *testing.T) {
	idx := NewIndex()
	for _, c := range []string{"c", "a", "b"} {
		idx.Insert(c)
	}

	var first []string
	for text := range idx.All() {
		first = append(first, text)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, first)

	var second []string
	for text := range idx.All() {
		second = append(second, text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, second)
}
