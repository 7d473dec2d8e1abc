package schedule

import (
	"reflect"
	"testing"

	"tableflip.dev/weekly/pkg/item"
)

func mk(id, title string) item.Item {
	return item.Item{ID: id, Title: title, Color: "#3b82f6"}
}

func ids(seq []item.Item) []string {
	out := make([]string, len(seq))
	for i, it := range seq {
		out[i] = it.ID
	}
	return out
}

func TestAssignAndUnassign(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")

	s.Assign(1, a)
	if got := ids(s.Day(1)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("after assign: %v", got)
	}

	s.Unassign(1, "a")
	if got := s.Day(1); len(got) != 0 {
		t.Fatalf("after unassign: %v", got)
	}

	// absent id is a no-op
	s.Unassign(1, "a")
	if got := s.Day(1); len(got) != 0 {
		t.Fatalf("unassign of absent id must not change the day: %v", got)
	}
}

func TestAssignAllowsDuplicates(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	s.Assign(2, a)
	s.Assign(2, a)
	if got := ids(s.Day(2)); !reflect.DeepEqual(got, []string{"a", "a"}) {
		t.Fatalf("duplicates must be kept: %v", got)
	}
}

func TestUnassignRemovesFirstMatchOnly(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	b := mk("b", "Etude")
	s.Assign(3, a)
	s.Assign(3, b)
	s.Assign(3, a)

	s.Unassign(3, "a")
	if got := ids(s.Day(3)); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected first duplicate removed, got %v", got)
	}
}

func TestMove(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	s.Assign(1, a)

	s.Move(1, 4, a)
	if got := s.Day(1); len(got) != 0 {
		t.Fatalf("source day should be empty: %v", got)
	}
	if got := ids(s.Day(4)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("target day: %v", got)
	}
}

func TestMoveSameDayIsNoop(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	b := mk("b", "Etude")
	s.Assign(2, a)
	s.Assign(2, b)

	s.Move(2, 2, a)
	if got := ids(s.Day(2)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("same-day move must not touch order: %v", got)
	}
}

func TestReorderReplacesWholesale(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	b := mk("b", "Etude")
	s.Assign(2, a)
	s.Assign(2, b)

	s.Reorder(2, []item.Item{b, a})
	if got := ids(s.Day(2)); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("expected [b a], got %v", got)
	}
}

func TestPurgeItem(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	b := mk("b", "Etude")
	s.Assign(0, a)
	s.Assign(3, a)
	s.Assign(3, a)
	s.Assign(3, b)

	s.PurgeItem("a")
	for day := 0; day < 7; day++ {
		for _, it := range s.Day(day) {
			if it.ID == "a" {
				t.Fatalf("purged id still present on day %d", day)
			}
		}
	}
	if got := ids(s.Day(3)); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("unrelated items lost: %v", got)
	}
}

func TestRefreshItem(t *testing.T) {
	s := NewStore()
	a := mk("a", "Scales")
	s.Assign(1, a)
	s.Assign(5, a)

	a.Title = "Arpeggios"
	a.Color = "#22c55e"
	s.RefreshItem(a)

	for _, day := range []int{1, 5} {
		got := s.Day(day)
		if got[0].Title != "Arpeggios" || got[0].Color != "#22c55e" {
			t.Fatalf("day %d not refreshed: %+v", day, got[0])
		}
	}
}

// Replays a random-ish operation sequence against a plain reference model and
// compares the resulting id multisets.
func TestReplayMatchesReferenceModel(t *testing.T) {
	s := NewStore()
	ref := make(map[int][]string)

	refUnassign := func(day int, id string) {
		for i, got := range ref[day] {
			if got == id {
				ref[day] = append(ref[day][:i], ref[day][i+1:]...)
				return
			}
		}
	}

	a := mk("a", "A")
	b := mk("b", "B")
	c := mk("c", "C")

	type op struct {
		run func()
	}
	ops := []op{
		{func() { s.Assign(1, a); ref[1] = append(ref[1], "a") }},
		{func() { s.Assign(1, b); ref[1] = append(ref[1], "b") }},
		{func() { s.Assign(1, a); ref[1] = append(ref[1], "a") }},
		{func() { s.Assign(4, c); ref[4] = append(ref[4], "c") }},
		{func() { s.Unassign(1, "a"); refUnassign(1, "a") }},
		{func() { s.Move(1, 4, b); refUnassign(1, "b"); ref[4] = append(ref[4], "b") }},
		{func() { s.Reorder(4, []item.Item{b, c}); ref[4] = []string{"b", "c"} }},
		{func() { s.Unassign(4, "missing") }},
	}
	for _, o := range ops {
		o.run()
	}

	for day := 0; day < 7; day++ {
		if got, want := ids(s.Day(day)), ref[day]; len(got) != len(want) {
			t.Fatalf("day %d: got %v want %v", day, got, want)
		} else if len(got) > 0 && !reflect.DeepEqual(got, want) {
			t.Fatalf("day %d: got %v want %v", day, got, want)
		}
	}
}

func TestWeekCloneIsDeep(t *testing.T) {
	s := NewStore()
	s.Assign(1, mk("a", "A"))

	w := s.Week()
	w[1][0].Title = "mutated"
	if s.Day(1)[0].Title == "mutated" {
		t.Fatalf("Week must return a deep copy")
	}
}
