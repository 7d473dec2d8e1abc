// Package store makes the planner state durable across process restarts. It
// wraps a diskv key-value store and performs a one-time migration from the
// legacy key namespace.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/schedule"
)

// Current namespace keys. Values are UTF-8 JSON.
const (
	KeyItems       = "app.items"
	KeySchedule    = "app.schedule"
	KeyPreferences = "app.preferences"
)

// Legacy namespace keys, read once and deleted after migration.
const (
	legacyItems    = "legacy.items"
	legacySchedule = "legacy.schedule"
	legacySettings = "legacy.settings"
)

// purgeKeys is the fixed set the cleanup operation removes: the legacy
// namespace plus keys left behind by earlier app versions sharing the store.
var purgeKeys = []string{
	legacyItems,
	legacySchedule,
	legacySettings,
	"theme",
	"customSubdivisions",
	"savedSettings",
	"images",
	"timerDebugInfo",
	"soundPattern",
	"soundSettings",
	"pendingSessions",
	"timer-settings",
	"beatsPerMeasure",
	"practice-timer-settings",
	"auth_token",
	"subdivision",
	"bpm",
}

// ErrPersistence wraps durable read/write failures. The in-memory model
// stays authoritative when it fires; callers warn the user and carry on.
var ErrPersistence = errors.New("store: persistence unavailable")

// State is the triple the gateway persists.
type State struct {
	Items       []item.Item
	Schedule    schedule.Week
	Preferences schedule.Preferences
}

// Gateway defines the persistence contract for the planner. The core logic
// only ever sees this interface, so tests can inject a fake.
type Gateway interface {
	Load() (State, error)
	Save(State) error
	PurgeLegacy() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Gateway backed by diskv using the provided config.
func Load(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &gateway{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type gateway struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the current namespace, migrating any piece still living under
// a legacy key. Malformed stored text counts as absent, never fatal.
func (g *gateway) Load() (State, error) {
	st := State{
		Items:       []item.Item{},
		Schedule:    schedule.Week{},
		Preferences: schedule.DefaultPreferences(),
	}

	var items []item.Item
	if g.readKey(KeyItems, legacyItems, &items) && items != nil {
		st.Items = items
	}
	var week schedule.Week
	if g.readKey(KeySchedule, legacySchedule, &week) && week != nil {
		st.Schedule = week
	}
	var prefs schedule.Preferences
	if g.readKey(KeyPreferences, legacySettings, &prefs) {
		st.Preferences = prefs.Normalize()
	}
	return st, nil
}

// readKey reads current first, then falls back to the legacy key. Legacy
// hits are copied into the current namespace and the legacy key is deleted.
// Returns false when neither key holds parseable data.
func (g *gateway) readKey(current, legacy string, target any) bool {
	if data, err := g.d.Read(current); err == nil {
		if json.Unmarshal(data, target) == nil {
			return true
		}
		// Unparseable current value; fall through to legacy, then defaults.
		fmt.Fprintf(os.Stderr, "store: %s holds malformed data, ignoring\n", current)
	}

	data, err := g.d.Read(legacy)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s holds malformed data, ignoring\n", legacy)
		return false
	}
	if err := g.d.Write(current, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: migrate %s: %v\n", legacy, err)
		return true
	}
	if err := g.d.Erase(legacy); err != nil {
		fmt.Fprintf(os.Stderr, "store: erase %s: %v\n", legacy, err)
	}
	return true
}

// Save writes the three pieces under their own keys. A failure on one piece
// does not stop the others; every failure is reported.
func (g *gateway) Save(st State) error {
	var errs []error

	if err := g.writeJSON(KeyItems, st.Items); err != nil {
		errs = append(errs, fmt.Errorf("items: %w", err))
	}
	if err := g.writeJSON(KeySchedule, st.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	}
	if err := g.writeJSON(KeyPreferences, st.Preferences); err != nil {
		errs = append(errs, fmt.Errorf("preferences: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPersistence, errors.Join(errs...))
	}
	return nil
}

func (g *gateway) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return g.d.Write(key, data)
}

// PurgeLegacy removes the enumerated legacy and unrelated keys. Idempotent;
// the current namespace is never touched.
func (g *gateway) PurgeLegacy() error {
	var errs []error
	for _, key := range purgeKeys {
		if !g.d.Has(key) {
			continue
		}
		if err := g.d.Erase(key); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPersistence, errors.Join(errs...))
	}
	return nil
}
