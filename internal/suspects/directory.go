package suspects

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// DefaultBuckets matches the table size the game has always used.
const DefaultBuckets = 101

// Binding ties a clue to the suspect it implicates.
type Binding struct {
	Clue    string `json:"clue" yaml:"clue" validate:"required"`
	Suspect string `json:"suspect" yaml:"suspect" validate:"required"`
}

type entry struct {
	clue    string
	suspect string
}

// Directory maps clue text to a suspect using separate chaining.
// Each key is bound once; later bindings of the same clue are dropped.
type Directory struct {
	buckets [][]entry
	size    int
}

func New() *Directory {
	return NewWithBuckets(DefaultBuckets)
}

// NewWithBuckets sizes the table explicitly. Values below one fall back to one bucket.
func NewWithBuckets(n int) *Directory {
	if n < 1 {
		n = 1
	}
	return &Directory{buckets: make([][]entry, n)}
}

// FromBindings builds a directory in binding order, so the first binding of a clue wins.
func FromBindings(buckets int, bindings []Binding) *Directory {
	d := NewWithBuckets(buckets)
	for _, b := range bindings {
		d.Insert(b.Clue, b.Suspect)
	}
	return d
}

func (d *Directory) bucket(clue string) int {
	return int(xxhash.Sum64String(clue) % uint64(len(d.buckets)))
}

// Insert binds clue to suspect and reports whether the binding was stored.
// It returns false when the clue is already bound.
func (d *Directory) Insert(clue, suspect string) bool {
	b := d.bucket(clue)
	for _, e := range d.buckets[b] {
		if e.clue == clue {
			return false
		}
	}
	d.buckets[b] = append(d.buckets[b], entry{clue: clue, suspect: suspect})
	d.size++
	return true
}

func (d *Directory) Lookup(clue string) (string, bool) {
	for _, e := range d.buckets[d.bucket(clue)] {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

func (d *Directory) Len() int {
	return d.size
}

// Suspects lists every distinct suspect name, sorted.
func (d *Directory) Suspects() []string {
	seen := make(map[string]bool)
	var names []string
	for _, chain := range d.buckets {
		for _, e := range chain {
			if !seen[e.suspect] {
				seen[e.suspect] = true
				names = append(names, e.suspect)
			}
		}
	}
	sort.Strings(names)
	return names
}
