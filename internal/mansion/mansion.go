package mansion

import (
	"errors"
	"fmt"
)

var (
	ErrUnnamedRoom  = errors.New("room has no name")
	ErrCyclicLayout = errors.New("room appears more than once in layout")
)

// Layout is the static description of a room and everything below it.
type Layout struct {
	Name  string  `json:"name" yaml:"name" validate:"required"`
	Clue  string  `json:"clue,omitempty" yaml:"clue,omitempty"`
	Left  *Layout `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Layout `json:"right,omitempty" yaml:"right,omitempty"`
}

// RoomID addresses a room inside a Map. NoRoom marks an absent child.
type RoomID int

const NoRoom RoomID = -1

type room struct {
	name  string
	clue  string
	left  RoomID
	right RoomID
}

// Map is an immutable binary tree of rooms stored as an arena.
// Children are referenced by index and no room knows its parent.
type Map struct {
	rooms []room
}

// Build turns a layout into a Map. The entrance is always Root().
func Build(entrance Layout) (*Map, error) {
	m := &Map{}
	seen := make(map[*Layout]bool)
	if _, err := m.add(&entrance, seen, "entrance"); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) add(l *Layout, seen map[*Layout]bool, path string) (RoomID, error) {
	if l == nil {
		return NoRoom, nil
	}
	if seen[l] {
		return NoRoom, fmt.Errorf("%s (%q): %w", path, l.Name, ErrCyclicLayout)
	}
	seen[l] = true
	if l.Name == "" {
		return NoRoom, fmt.Errorf("%s: %w", path, ErrUnnamedRoom)
	}

	id := RoomID(len(m.rooms))
	m.rooms = append(m.rooms, room{name: l.Name, clue: l.Clue, left: NoRoom, right: NoRoom})

	left, err := m.add(l.Left, seen, path+".left")
	if err != nil {
		return NoRoom, err
	}
	right, err := m.add(l.Right, seen, path+".right")
	if err != nil {
		return NoRoom, err
	}

	m.rooms[id].left = left
	m.rooms[id].right = right
	return id, nil
}

func (m *Map) Root() RoomID {
	return 0
}

func (m *Map) Len() int {
	return len(m.rooms)
}

func (m *Map) valid(id RoomID) bool {
	return id >= 0 && int(id) < len(m.rooms)
}

// Left returns the left child of id, or false when there is none.
func (m *Map) Left(id RoomID) (RoomID, bool) {
	if !m.valid(id) || m.rooms[id].left == NoRoom {
		return NoRoom, false
	}
	return m.rooms[id].left, true
}

// Right returns the right child of id, or false when there is none.
func (m *Map) Right(id RoomID) (RoomID, bool) {
	if !m.valid(id) || m.rooms[id].right == NoRoom {
		return NoRoom, false
	}
	return m.rooms[id].right, true
}

func (m *Map) Name(id RoomID) string {
	if !m.valid(id) {
		return ""
	}
	return m.rooms[id].name
}

// Clue returns the clue held by a room. An empty clue counts as no clue.
func (m *Map) Clue(id RoomID) (string, bool) {
	if !m.valid(id) || m.rooms[id].clue == "" {
		return "", false
	}
	return m.rooms[id].clue, true
}
