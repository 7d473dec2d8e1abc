// Package schedule owns the mapping from weekday slots to ordered item
// sequences, and the week preferences that shape how they render.
package schedule

import "tableflip.dev/weekly/pkg/item"

// Week maps a day index (0=Sunday..6=Saturday) to the ordered items planned
// for that day. Order is the user's practice order and is never re-sorted.
type Week map[int][]item.Item

// Clone deep-copies the week so callers can hand it out safely.
func (w Week) Clone() Week {
	out := make(Week, len(w))
	for day, seq := range w {
		cp := make([]item.Item, len(seq))
		copy(cp, seq)
		out[day] = cp
	}
	return out
}

// Store holds the live schedule and its mutation operations. Duplicates are
// allowed, both across days and within a single day.
type Store struct {
	days Week
}

// NewStore returns an empty schedule store.
func NewStore() *Store {
	return &Store{days: make(Week)}
}

// Assign appends the item to the end of the day's sequence.
func (s *Store) Assign(day int, it item.Item) {
	s.days[day] = append(s.days[day], it)
}

// Unassign removes the first occurrence of the id from the day. When the day
// holds duplicates only one instance goes per call. Absent ids are a no-op.
func (s *Store) Unassign(day int, id string) {
	seq := s.days[day]
	for i, it := range seq {
		if it.ID == id {
			s.days[day] = append(seq[:i], seq[i+1:]...)
			return
		}
	}
}

// Move relocates the item from one day to the end of another. Moving within
// the same day is a no-op; use Reorder for that.
func (s *Store) Move(from, to int, it item.Item) {
	if from == to {
		return
	}
	s.Unassign(from, it.ID)
	s.Assign(to, it)
}

// Reorder replaces the day's sequence wholesale. The caller guarantees the
// new sequence is a permutation of the old one; the store does not check.
func (s *Store) Reorder(day int, seq []item.Item) {
	cp := make([]item.Item, len(seq))
	copy(cp, seq)
	s.days[day] = cp
}

// PurgeItem removes every occurrence of the id across all days.
func (s *Store) PurgeItem(id string) {
	for day, seq := range s.days {
		kept := seq[:0]
		for _, it := range seq {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		s.days[day] = kept
	}
}

// RefreshItem rewrites every scheduled occurrence of the item with its
// current fields. Scheduled entries are denormalized copies, so edits to an
// item have to be pushed through here.
func (s *Store) RefreshItem(it item.Item) {
	for day, seq := range s.days {
		for i := range seq {
			if seq[i].ID == it.ID {
				seq[i] = it
			}
		}
		s.days[day] = seq
	}
}

// Day returns a copy of the day's sequence.
func (s *Store) Day(day int) []item.Item {
	seq := s.days[day]
	out := make([]item.Item, len(seq))
	copy(out, seq)
	return out
}

// Week returns a deep copy of the full schedule.
func (s *Store) Week() Week {
	return s.days.Clone()
}

// Replace installs a whole new schedule, used by load and import.
func (s *Store) Replace(w Week) {
	s.days = w.Clone()
	if s.days == nil {
		s.days = make(Week)
	}
}
