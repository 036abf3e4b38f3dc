package clues

import (
	"iter"

	"github.com/google/btree"
)

const degree = 8

// Index is the ordered, duplicate-free set of clues a player has found.
// Clues are compared byte-wise, so iteration order is plain lexicographic.
type Index struct {
	tree *btree.BTreeG[string]
}

func NewIndex() *Index {
	return &Index{tree: btree.NewOrderedG[string](degree)}
}

// Insert adds a clue and reports whether it was new.
// Empty text and already indexed text leave the index untouched.
func (i *Index) Insert(text string) bool {
	if text == "" || i.tree.Has(text) {
		return false
	}
	i.tree.ReplaceOrInsert(text)
	return true
}

func (i *Index) Contains(text string) bool {
	return i.tree.Has(text)
}

func (i *Index) Len() int {
	return i.tree.Len()
}

// All yields the clues in ascending order. Every call starts a fresh walk.
func (i *Index) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		i.tree.Ascend(func(text string) bool {
			return yield(text)
		})
	}
}

// Slice copies the clues out in ascending order.
func (i *Index) Slice() []string {
	out := make([]string, 0, i.Len())
	for text := range i.All() {
		out = append(out, text)
	}
	return out
}
