package game

import (
	"errors"

	"github.com/schollz/closestmatch"

	"github.com/tahcohcat/cluequest/internal/mansion"
	"github.com/tahcohcat/cluequest/internal/suspects"
)

var (
	ErrExplorationInProgress = errors.New("exploration still in progress")
	ErrSessionClosed         = errors.New("session already closed")
)

// RoomView is what a player can see from where they stand.
type RoomView struct {
	Name  string `json:"name"`
	Clue  string `json:"clue,omitempty"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// Session is one player's run through a case: explore, then accuse once.
type Session struct {
	Case      *Case
	Map       *mansion.Map
	Directory *suspects.Directory

	nav      *Navigator
	entrance Outcome
	matcher  *closestmatch.ClosestMatch
	ruling   *Ruling
	closed   bool
}

func NewSession(c *Case, buckets int) (*Session, error) {
	m, dir, err := c.Build(buckets)
	if err != nil {
		return nil, err
	}
	nav, entrance := NewNavigator(m)
	return &Session{
		Case:      c,
		Map:       m,
		Directory: dir,
		nav:       nav,
		entrance:  entrance,
		matcher:   closestSuspects(dir.Suspects()),
	}, nil
}

// Entrance is the outcome of stepping into the first room.
func (s *Session) Entrance() Outcome {
	return s.entrance
}

func (s *Session) Move(move Move) Outcome {
	return s.nav.Apply(move)
}

func (s *Session) LegalMoves() []Move {
	return s.nav.LegalMoves()
}

func (s *Session) Explored() bool {
	return s.nav.Ended()
}

func (s *Session) Closed() bool {
	return s.closed
}

// Clues returns the collected clues in ascending order.
func (s *Session) Clues() []string {
	return s.nav.Clues().Slice()
}

func (s *Session) View() RoomView {
	return s.ViewOf(s.nav.Current())
}

func (s *Session) ViewOf(id mansion.RoomID) RoomView {
	v := RoomView{Name: s.Map.Name(id)}
	v.Clue, _ = s.Map.Clue(id)
	if l, ok := s.Map.Left(id); ok {
		v.Left = s.Map.Name(l)
	}
	if r, ok := s.Map.Right(id); ok {
		v.Right = s.Map.Name(r)
	}
	return v
}

// Accuse closes the session. A blank name closes it without a ruling.
func (s *Session) Accuse(name string) (Ruling, bool, error) {
	if s.closed {
		return Ruling{}, false, ErrSessionClosed
	}
	if !s.nav.Ended() {
		return Ruling{}, false, ErrExplorationInProgress
	}
	s.closed = true

	ruling, ok := Judge(s.nav.Clues(), s.Directory, name)
	if ok {
		s.ruling = &ruling
	}
	return ruling, ok, nil
}

func (s *Session) Ruling() (Ruling, bool) {
	if s.ruling == nil {
		return Ruling{}, false
	}
	return *s.ruling, true
}

// Suggest offers the closest known suspect for a name that is not one.
// It is only a hint for the player; tallying always uses the exact name.
func (s *Session) Suggest(name string) string {
	if s.matcher == nil {
		return ""
	}
	for _, known := range s.Directory.Suspects() {
		if known == name {
			return ""
		}
	}
	return s.matcher.Closest(name)
}
