// Package drag coordinates a single pick-up-and-place gesture against the
// schedule. A session is short-lived: it begins on pick-up, tracks the
// candidate target while the user moves, and resolves exactly once on drop
// or cancel.
package drag

import (
	"errors"

	"tableflip.dev/weekly/pkg/item"
)

// ErrNoDrag rejects hover/drop calls made while no session is active.
var ErrNoDrag = errors.New("drag: no active session")

// Board is the slice of the schedule a session mutates on drop.
type Board interface {
	Day(day int) []item.Item
	Assign(day int, it item.Item)
	Move(from, to int, it item.Item)
	Reorder(day int, seq []item.Item)
}

// SourceKind tags where a drag picked its item up from.
type SourceKind int

const (
	// FromLibrary drags an unscheduled item template.
	FromLibrary SourceKind = iota
	// FromDay drags an instance already placed on a day.
	FromDay
)

// Source identifies the dragged item and, for day sources, its origin slot.
type Source struct {
	Kind  SourceKind
	Item  item.Item
	Day   int
	Index int
}

// LibrarySource starts a drag from the item library.
func LibrarySource(it item.Item) Source {
	return Source{Kind: FromLibrary, Item: it}
}

// DaySource starts a drag from position index on the given day.
func DaySource(it item.Item, day, index int) Source {
	return Source{Kind: FromDay, Item: it, Day: day, Index: index}
}

// Target is the candidate drop slot. Index < 0 means "the day as a whole"
// (append for library drops, no reorder for same-day drops).
type Target struct {
	Day   int
	Index int
}

// Session is the drag state machine: Idle until Begin, Dragging until Drop
// or Cancel. Hover never mutates the board; only Drop does.
type Session struct {
	board    Board
	dragging bool
	source   Source
	target   *Target
}

// NewSession binds a session to the board it will resolve against.
func NewSession(b Board) *Session {
	return &Session{board: b}
}

// Dragging reports whether a gesture is in flight.
func (s *Session) Dragging() bool {
	return s.dragging
}

// Source returns the active drag source, if any.
func (s *Session) Source() (Source, bool) {
	return s.source, s.dragging
}

// Target returns the currently hovered target, if any.
func (s *Session) Target() (Target, bool) {
	if !s.dragging || s.target == nil {
		return Target{}, false
	}
	return *s.target, true
}

// Begin starts a new gesture. A session already in flight is implicitly
// cancelled first so two gestures can never both resolve.
func (s *Session) Begin(src Source) {
	if s.dragging {
		s.Cancel()
	}
	s.dragging = true
	s.source = src
	s.target = nil
}

// Hover records the current candidate target for presentation feedback.
func (s *Session) Hover(t Target) error {
	if !s.dragging {
		return ErrNoDrag
	}
	s.target = &t
	return nil
}

// Cancel ends the gesture without touching the board.
func (s *Session) Cancel() {
	s.dragging = false
	s.target = nil
}

// Drop resolves the gesture against the board and returns to idle. A drop
// with no hovered target is a cancel.
func (s *Session) Drop() error {
	if !s.dragging {
		return ErrNoDrag
	}
	src, tgt := s.source, s.target
	s.Cancel()

	if tgt == nil {
		return nil
	}

	switch src.Kind {
	case FromLibrary:
		s.board.Assign(tgt.Day, src.Item)
	case FromDay:
		if tgt.Day != src.Day {
			s.board.Move(src.Day, tgt.Day, src.Item)
			break
		}
		if tgt.Index < 0 || tgt.Index == src.Index {
			break
		}
		s.board.Reorder(src.Day, relocate(s.board.Day(src.Day), src.Index, tgt.Index))
	}
	return nil
}

// relocate splices the element at from out of seq and back in at to.
func relocate(seq []item.Item, from, to int) []item.Item {
	if from < 0 || from >= len(seq) {
		return seq
	}
	if to < 0 {
		to = 0
	}
	if to >= len(seq) {
		to = len(seq) - 1
	}
	out := make([]item.Item, 0, len(seq))
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)
	moved := seq[from]
	out = append(out[:to], append([]item.Item{moved}, out[to:]...)...)
	return out
}
