// Package snapshot serializes the planner state into a portable text
// snapshot and validates externally supplied ones. A snapshot is a full
// replacement for the in-memory state, not a merge.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/schedule"
)

// ErrFormat rejects snapshots that do not parse or miss a required section.
var ErrFormat = errors.New("snapshot: invalid format")

// Snapshot is the wire shape of an exported planner.
type Snapshot struct {
	Items       []item.Item          `json:"items"`
	Schedule    schedule.Week        `json:"schedule"`
	Preferences schedule.Preferences `json:"preferences"`
	ExportDate  string               `json:"exportDate"`
}

// Export encodes the triple plus an export timestamp. The output round-trips
// through Import.
func Export(items []item.Item, week schedule.Week, prefs schedule.Preferences, now time.Time) ([]byte, error) {
	if items == nil {
		items = []item.Item{}
	}
	if week == nil {
		week = schedule.Week{}
	}
	snap := Snapshot{
		Items:       items,
		Schedule:    week,
		Preferences: prefs,
		ExportDate:  now.UTC().Format(time.RFC3339),
	}
	return json.MarshalIndent(snap, "", "  ")
}

// Import parses and validates a snapshot. All three of items, schedule, and
// preferences must be present; anything else is ErrFormat.
func Import(data []byte) ([]item.Item, schedule.Week, schedule.Preferences, error) {
	var raw struct {
		Items       *[]item.Item          `json:"items"`
		Schedule    *schedule.Week        `json:"schedule"`
		Preferences *schedule.Preferences `json:"preferences"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, schedule.Preferences{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	switch {
	case raw.Items == nil:
		return nil, nil, schedule.Preferences{}, fmt.Errorf("%w: missing items", ErrFormat)
	case raw.Schedule == nil:
		return nil, nil, schedule.Preferences{}, fmt.Errorf("%w: missing schedule", ErrFormat)
	case raw.Preferences == nil:
		return nil, nil, schedule.Preferences{}, fmt.Errorf("%w: missing preferences", ErrFormat)
	}

	items := *raw.Items
	if items == nil {
		items = []item.Item{}
	}
	week := *raw.Schedule
	if week == nil {
		week = schedule.Week{}
	}
	return items, week, raw.Preferences.Normalize(), nil
}
