// Package app provides the high-level planner operations. The Service wires
// the item repository, the schedule, and the persistence gateway together so
// the CLI and TUI can share one code path.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/weekly/pkg/drag"
	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/snapshot"
	"tableflip.dev/weekly/pkg/store"
)

// Service owns the in-memory planner state. All mutations are synchronous;
// persistence happens as a side effect after each committed mutation and
// never rolls a mutation back.
type Service struct {
	Items    *item.Repository
	Schedule *schedule.Store
	Prefs    schedule.Preferences
	Gateway  store.Gateway

	// Notify receives persistence failures. When nil a warning is logged.
	Notify func(error)

	loaded bool
}

// New builds a Service over the given gateway with empty state. Call Load
// before mutating; saves are suppressed until the initial load completes so
// an early mutation cannot overwrite durable state with empty defaults.
func New(g store.Gateway) *Service {
	return &Service{
		Items:    item.NewRepository(),
		Schedule: schedule.NewStore(),
		Prefs:    schedule.DefaultPreferences(),
		Gateway:  g,
	}
}

// Load pulls the persisted state into memory and arms saving.
func (s *Service) Load() error {
	if s.Gateway == nil {
		return errors.New("app: no gateway configured")
	}
	st, err := s.Gateway.Load()
	if err != nil {
		return err
	}
	s.Items.Replace(st.Items)
	s.Schedule.Replace(st.Schedule)
	s.Prefs = st.Preferences.Normalize()
	s.loaded = true
	return nil
}

// Loaded reports whether the initial load has completed.
func (s *Service) Loaded() bool {
	return s.loaded
}

// AddItem creates a new repository item.
func (s *Service) AddItem(title, color, note string) (item.Item, error) {
	it, err := s.Items.Add(title, color, note)
	if err != nil {
		return item.Item{}, err
	}
	s.persist()
	return it, nil
}

// UpdateItem merges the patch into the item and refreshes its scheduled
// copies.
func (s *Service) UpdateItem(id string, p item.Patch) (item.Item, error) {
	it, err := s.Items.Update(id, p)
	if err != nil {
		return item.Item{}, err
	}
	s.Schedule.RefreshItem(it)
	s.persist()
	return it, nil
}

// RemoveItem deletes the item and purges every scheduled reference, so the
// schedule never points at a dead id.
func (s *Service) RemoveItem(id string) error {
	if err := s.Items.Remove(id); err != nil {
		return err
	}
	s.Schedule.PurgeItem(id)
	s.persist()
	return nil
}

// Plan appends the item to the day's sequence.
func (s *Service) Plan(day int, id string) (item.Item, error) {
	it, ok := s.Items.Get(id)
	if !ok {
		return item.Item{}, item.ErrNotFound
	}
	s.Schedule.Assign(day, it)
	s.persist()
	return it, nil
}

// Unplan removes the first occurrence of the id from the day.
func (s *Service) Unplan(day int, id string) {
	s.Schedule.Unassign(day, id)
	s.persist()
}

// MoveItem relocates a scheduled instance from one day to another.
func (s *Service) MoveItem(from, to int, id string) error {
	var moved *item.Item
	for _, it := range s.Schedule.Day(from) {
		if it.ID == id {
			cp := it
			moved = &cp
			break
		}
	}
	if moved == nil {
		return item.ErrNotFound
	}
	s.Schedule.Move(from, to, *moved)
	s.persist()
	return nil
}

// ReorderDay rearranges a day to the given id order. Each id consumes the
// first unconsumed occurrence, so days with duplicates stay well-defined.
func (s *Service) ReorderDay(day int, order []string) error {
	current := s.Schedule.Day(day)
	if len(order) != len(current) {
		return fmt.Errorf("reorder: %d ids for %d scheduled items", len(order), len(current))
	}

	used := make([]bool, len(current))
	seq := make([]item.Item, 0, len(current))
	for _, id := range order {
		found := false
		for i, it := range current {
			if !used[i] && it.ID == id {
				used[i] = true
				seq = append(seq, it)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("reorder: id %s not scheduled on %d: %w", id, day, item.ErrNotFound)
		}
	}

	s.Schedule.Reorder(day, seq)
	s.persist()
	return nil
}

// SetPreferences installs new week preferences.
func (s *Service) SetPreferences(p schedule.Preferences) {
	s.Prefs = p.Normalize()
	s.persist()
}

// Export encodes the current state as a portable snapshot.
func (s *Service) Export(now time.Time) ([]byte, error) {
	return snapshot.Export(s.Items.List(), s.Schedule.Week(), s.Prefs, now)
}

// Import validates the snapshot and installs it wholesale. On a format
// error the existing state is untouched.
func (s *Service) Import(data []byte) error {
	items, week, prefs, err := snapshot.Import(data)
	if err != nil {
		return err
	}
	s.Items.Replace(items)
	s.Schedule.Replace(week)
	s.Prefs = prefs
	s.persist()
	return nil
}

// PurgeLegacy removes legacy-namespace and unrelated keys from the store.
func (s *Service) PurgeLegacy() error {
	if s.Gateway == nil {
		return errors.New("app: no gateway configured")
	}
	return s.Gateway.PurgeLegacy()
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Gateway == nil {
		return nil, errors.New("app: no gateway configured")
	}
	return s.Gateway.Watch(ctx)
}

// DragSession opens a drag gesture whose drops commit through the service,
// so board mutations persist like any other mutation.
func (s *Service) DragSession() *drag.Session {
	return drag.NewSession(&persistingBoard{s: s})
}

// persist writes the committed state through the gateway. Failures are
// surfaced, never fatal: the in-memory model stays authoritative.
func (s *Service) persist() {
	if !s.loaded || s.Gateway == nil {
		return
	}
	err := s.Gateway.Save(store.State{
		Items:       s.Items.List(),
		Schedule:    s.Schedule.Week(),
		Preferences: s.Prefs,
	})
	if err == nil {
		return
	}
	if s.Notify != nil {
		s.Notify(err)
		return
	}
	log.Warn("saving planner state failed; changes live in memory only", "err", err)
}

// persistingBoard exposes the schedule to a drag session and persists after
// every committed mutation.
type persistingBoard struct {
	s *Service
}

func (b *persistingBoard) Day(day int) []item.Item {
	return b.s.Schedule.Day(day)
}

func (b *persistingBoard) Assign(day int, it item.Item) {
	b.s.Schedule.Assign(day, it)
	b.s.persist()
}

func (b *persistingBoard) Move(from, to int, it item.Item) {
	b.s.Schedule.Move(from, to, it)
	b.s.persist()
}

func (b *persistingBoard) Reorder(day int, seq []item.Item) {
	b.s.Schedule.Reorder(day, seq)
	b.s.persist()
}
