package game

import (
	"strings"

	"github.com/tahcohcat/cluequest/internal/clues"
	"github.com/tahcohcat/cluequest/internal/mansion"
)

// Move is a request to the navigator.
type Move int

const (
	MoveInvalid Move = iota
	MoveLeft
	MoveRight
	MoveEnd
)

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveEnd:
		return "end"
	default:
		return "invalid"
	}
}

// ParseMove maps operator input to a move. The single letters e, d and s
// are kept for players used to the Portuguese prompts.
func ParseMove(token string) Move {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "l", "left", "e", "esquerda":
		return MoveLeft
	case "r", "right", "d", "direita":
		return MoveRight
	case "q", "quit", "end", "s", "sair":
		return MoveEnd
	default:
		return MoveInvalid
	}
}

// Transition is the pure room transition. It reports false when the move
// is not legal from at, in which case next equals at.
func Transition(m *mansion.Map, at mansion.RoomID, move Move) (next mansion.RoomID, accepted bool) {
	switch move {
	case MoveLeft:
		if l, ok := m.Left(at); ok {
			return l, true
		}
	case MoveRight:
		if r, ok := m.Right(at); ok {
			return r, true
		}
	case MoveEnd:
		return at, true
	}
	return at, false
}

// Outcome describes what a single move did.
type Outcome struct {
	Move     Move
	Accepted bool
	Room     mansion.RoomID
	Clue     string
	NewClue  bool
	Ended    bool
}

// Navigator walks a mansion and feeds every clue it sees into its index.
type Navigator struct {
	m       *mansion.Map
	current mansion.RoomID
	index   *clues.Index
	ended   bool
}

// NewNavigator places the player at the entrance, which already counts as entering it.
func NewNavigator(m *mansion.Map) (*Navigator, Outcome) {
	n := &Navigator{m: m, current: m.Root(), index: clues.NewIndex()}
	return n, n.enter(MoveInvalid)
}

func (n *Navigator) enter(move Move) Outcome {
	out := Outcome{Move: move, Accepted: true, Room: n.current}
	if clue, ok := n.m.Clue(n.current); ok {
		out.Clue = clue
		out.NewClue = n.index.Insert(clue)
	}
	return out
}

// Apply performs one move. Rejected moves change nothing.
func (n *Navigator) Apply(move Move) Outcome {
	if n.ended {
		return Outcome{Move: move, Room: n.current, Ended: true}
	}

	next, ok := Transition(n.m, n.current, move)
	if !ok {
		return Outcome{Move: move, Room: n.current}
	}
	if move == MoveEnd {
		n.ended = true
		return Outcome{Move: move, Accepted: true, Room: n.current, Ended: true}
	}

	n.current = next
	return n.enter(move)
}

// LegalMoves lists the moves Apply would accept right now.
func (n *Navigator) LegalMoves() []Move {
	if n.ended {
		return nil
	}
	moves := make([]Move, 0, 3)
	if _, ok := n.m.Left(n.current); ok {
		moves = append(moves, MoveLeft)
	}
	if _, ok := n.m.Right(n.current); ok {
		moves = append(moves, MoveRight)
	}
	return append(moves, MoveEnd)
}

func (n *Navigator) Current() mansion.RoomID {
	return n.current
}

func (n *Navigator) Ended() bool {
	return n.ended
}

// Clues exposes the index for reading. Only the navigator inserts into it.
func (n *Navigator) Clues() *clues.Index {
	return n.index
}
