package snapshot

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/schedule"
)

var exportTime = time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)

func sample() ([]item.Item, schedule.Week, schedule.Preferences) {
	a := item.Item{ID: "a", Title: "Scales", Color: "#3b82f6", Note: "slow"}
	b := item.Item{ID: "b", Title: "Etude", Color: "#ef4444"}
	items := []item.Item{a, b}
	week := schedule.Week{
		1: {a, b},
		4: {b},
	}
	return items, week, schedule.Preferences{StartDay: schedule.StartDayToday, WeekFormat: schedule.FiveDay}
}

func TestRoundTrip(t *testing.T) {
	items, week, prefs := sample()

	data, err := Export(items, week, prefs, exportTime)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	gotItems, gotWeek, gotPrefs, err := Import(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(gotItems, items) {
		t.Fatalf("items: got %+v want %+v", gotItems, items)
	}
	if !reflect.DeepEqual(gotWeek, week) {
		t.Fatalf("week: got %+v want %+v", gotWeek, week)
	}
	if gotPrefs != prefs {
		t.Fatalf("prefs: got %+v want %+v", gotPrefs, prefs)
	}
}

func TestExportEmbedsDate(t *testing.T) {
	data, err := Export(nil, nil, schedule.DefaultPreferences(), exportTime)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(data), `"exportDate": "2026-08-26T15:04:05Z"`) {
		t.Fatalf("missing export date in %s", data)
	}
}

func TestImportMissingPreferences(t *testing.T) {
	_, _, _, err := Import([]byte(`{"items":[],"schedule":{}}`))
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestImportMissingSections(t *testing.T) {
	cases := []string{
		`{"schedule":{},"preferences":{"startDay":1,"weekFormat":"7-day"}}`,
		`{"items":[],"preferences":{"startDay":1,"weekFormat":"7-day"}}`,
	}
	for _, in := range cases {
		if _, _, _, err := Import([]byte(in)); !errors.Is(err, ErrFormat) {
			t.Fatalf("expected ErrFormat for %s, got %v", in, err)
		}
	}
}

func TestImportUnparseable(t *testing.T) {
	if _, _, _, err := Import([]byte("not json at all")); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestImportNormalizesPreferences(t *testing.T) {
	in := `{"items":[],"schedule":{},"preferences":{"startDay":42,"weekFormat":"whenever"}}`
	_, _, prefs, err := Import([]byte(in))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if prefs != schedule.DefaultPreferences() {
		t.Fatalf("expected normalized defaults, got %+v", prefs)
	}
}
