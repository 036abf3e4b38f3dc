package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/mansion"
	"github.com/tahcohcat/cluequest/internal/suspects"
)

func samSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(&game.Case{
		ID:    "sam",
		Title: "Three Rooms",
		Entrance: mansion.Layout{
			Name:  "A",
			Clue:  "X1",
			Left:  &mansion.Layout{Name: "B"},
			Right: &mansion.Layout{Name: "C", Clue: "X2"},
		},
		Evidence: []suspects.Binding{
			{Clue: "X1", Suspect: "Sam"},
			{Clue: "X2", Suspect: "Sam"},
		},
	}, suspects.DefaultBuckets)
	require.NoError(t, err)
	return s
}

func run(t *testing.T, s *game.Session, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(strings.NewReader(input), &out).Run(s))
	return out.String()
}

func TestLeftThenAccuse(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "l\nq\nSam\n")

	assert.Contains(t, out, "You are in: A")
	assert.Contains(t, out, `You found a clue: "X1"`)
	assert.Contains(t, out, "You are in: B")
	assert.Contains(t, out, "There is no clue in this room")
	assert.Contains(t, out, " - X1\n")
	assert.NotContains(t, out, " - X2\n")
	assert.Contains(t, out, "pointing at Sam: 1")
	assert.Contains(t, out, "Insufficient evidence")
}

func TestRightThenAccuse(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "r\ns\nSam\n")

	assert.Contains(t, out, " - X1\n - X2\n")
	assert.Contains(t, out, "pointing at Sam: 2")
	assert.Contains(t, out, "is found guilty")
}

func TestInvalidInputIsReported(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "x\n\nl\nr\nq\nSam\n")

	assert.Equal(t, 3, strings.Count(out, "Invalid option or no such path"))
	assert.Equal(t, []string{"X1"}, s.Clues())
}

func TestEmptyAccusation(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "q\n\n")

	assert.Contains(t, out, "Closing without a verdict")
	assert.NotContains(t, out, "VERDICT")
	_, ok := s.Ruling()
	assert.False(t, ok)
}

func TestEndOfInput(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "r")

	assert.Contains(t, out, "You are in: C")
	assert.Contains(t, out, "Closing without a verdict")
	assert.True(t, s.Explored())
}

func TestLeafOnlyOffersLeaving(t *testing.T) {
	s := samSession(t)
	out := run(t, s, "l\nq\n\n")

	tail := out[strings.Index(out, "You are in: B"):]
	paths := tail[:strings.Index(tail, "Choice:")]
	assert.NotContains(t, paths, "(l)")
	assert.NotContains(t, paths, "(r)")
	assert.Contains(t, paths, "(q)")
}

func TestNoCluesCollected(t *testing.T) {
	s, err := game.NewSession(&game.Case{
		ID:       "empty",
		Title:    "Empty House",
		Entrance: mansion.Layout{Name: "Porch"},
	}, suspects.DefaultBuckets)
	require.NoError(t, err)

	out := run(t, s, "q\nSam\n")
	assert.Contains(t, out, "(no clues collected)")
	assert.Contains(t, out, "pointing at Sam: 0")
}
