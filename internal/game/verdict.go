package game

import (
	"iter"
	"strings"
)

// GuiltyThreshold is how many distinct clues must point at the accused.
const GuiltyThreshold = 2

type Verdict string

const (
	VerdictSufficient   Verdict = "sufficient"
	VerdictInsufficient Verdict = "insufficient"
)

// ClueSet is anything that can list collected clues.
type ClueSet interface {
	All() iter.Seq[string]
}

// Resolver maps a clue to the suspect it implicates.
type Resolver interface {
	Lookup(clue string) (string, bool)
}

// Ruling is the outcome of an accusation.
type Ruling struct {
	Accused string  `json:"accused"`
	Count   int     `json:"count"`
	Verdict Verdict `json:"verdict"`
}

func (r Ruling) Guilty() bool {
	return r.Verdict == VerdictSufficient
}

// Tally counts the clues whose suspect is exactly accused.
// Clues without a binding are skipped.
func Tally(set ClueSet, dir Resolver, accused string) int {
	count := 0
	for clue := range set.All() {
		if suspect, ok := dir.Lookup(clue); ok && suspect == accused {
			count++
		}
	}
	return count
}

func Classify(count int) Verdict {
	if count >= GuiltyThreshold {
		return VerdictSufficient
	}
	return VerdictInsufficient
}

// Judge renders a ruling. A blank accusation renders nothing and reports false.
func Judge(set ClueSet, dir Resolver, accused string) (Ruling, bool) {
	if strings.TrimSpace(accused) == "" {
		return Ruling{}, false
	}
	count := Tally(set, dir, accused)
	return Ruling{Accused: accused, Count: count, Verdict: Classify(count)}, true
}
