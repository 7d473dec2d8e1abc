package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/store"
)

type fakeGateway struct {
	state store.State
}

func (f *fakeGateway) Load() (store.State, error) { return f.state, nil }
func (f *fakeGateway) Save(st store.State) error  { f.state = st; return nil }
func (f *fakeGateway) PurgeLegacy() error         { return nil }
func (f *fakeGateway) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func boardWith(t *testing.T, items ...item.Item) (*Model, *app.Service) {
	t.Helper()
	svc := app.New(&fakeGateway{state: store.State{
		Items:       items,
		Schedule:    schedule.Week{},
		Preferences: schedule.DefaultPreferences(),
	}})
	if err := svc.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewModel(svc), svc
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(*Model)
	}
	return m
}

func TestPickUpAndPlaceOnDay(t *testing.T) {
	a := item.Item{ID: "a", Title: "Scales", Color: "#3b82f6"}
	m, svc := boardWith(t, a)

	// pick up from the library, move to the first day column, drop
	m = press(m, "enter", "l", "enter")

	day := m.order[0]
	got := svc.Schedule.Day(day)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected item planned on day %d, got %v", day, got)
	}
	if m.session.Dragging() {
		t.Fatalf("session must be idle after drop")
	}
}

func TestEscCancelsGesture(t *testing.T) {
	a := item.Item{ID: "a", Title: "Scales", Color: "#3b82f6"}
	m, svc := boardWith(t, a)

	m = press(m, "enter", "l", "esc")

	if m.session.Dragging() {
		t.Fatalf("esc must cancel the gesture")
	}
	for day := 0; day < 7; day++ {
		if len(svc.Schedule.Day(day)) != 0 {
			t.Fatalf("cancelled gesture must not mutate the schedule")
		}
	}
}

func TestMoveAcrossDays(t *testing.T) {
	a := item.Item{ID: "a", Title: "Scales", Color: "#3b82f6"}
	m, svc := boardWith(t, a)

	fromDay := m.order[0]
	toDay := m.order[2]
	svc.Schedule.Assign(fromDay, a)

	// focus the first day, pick the item up, two columns right, drop
	m = press(m, "l", "enter", "l", "l", "enter")

	if len(svc.Schedule.Day(fromDay)) != 0 {
		t.Fatalf("source day not emptied")
	}
	got := svc.Schedule.Day(toDay)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected item on day %d, got %v", toDay, got)
	}
}

func TestReorderWithinDay(t *testing.T) {
	a := item.Item{ID: "a", Title: "A", Color: "#3b82f6"}
	b := item.Item{ID: "b", Title: "B", Color: "#ef4444"}
	m, svc := boardWith(t, a, b)

	day := m.order[0]
	svc.Schedule.Assign(day, a)
	svc.Schedule.Assign(day, b)

	// pick the first scheduled item and drop it below the second
	m = press(m, "l", "enter", "j", "enter")

	got := svc.Schedule.Day(day)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected [b a], got %v", got)
	}
}

func TestUnplanUnderCursor(t *testing.T) {
	a := item.Item{ID: "a", Title: "Scales", Color: "#3b82f6"}
	m, svc := boardWith(t, a)

	day := m.order[0]
	svc.Schedule.Assign(day, a)

	m = press(m, "l", "x")

	if len(svc.Schedule.Day(day)) != 0 {
		t.Fatalf("expected item unplanned")
	}
	if svc.Items.Len() != 1 {
		t.Fatalf("unplanning must not remove the library item")
	}
}

func TestAddForm(t *testing.T) {
	m, svc := boardWith(t)

	m = press(m, "a")
	if !m.adding {
		t.Fatalf("expected add form to open")
	}
	m = press(m, "E", "t", "u", "d", "e", "enter")

	if m.adding {
		t.Fatalf("expected add form to close")
	}
	items := svc.Items.List()
	if len(items) != 1 || items[0].Title != "Etude" {
		t.Fatalf("expected Etude in library, got %v", items)
	}
}

func TestAddFormRejectsEmptyTitle(t *testing.T) {
	m, svc := boardWith(t)

	m = press(m, "a", "enter")
	if !m.isError {
		t.Fatalf("expected a validation error in the status line")
	}
	if svc.Items.Len() != 0 {
		t.Fatalf("rejected add must not create an item")
	}
}
