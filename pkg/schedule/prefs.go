package schedule

import "time"

// WeekFormat selects how many days the board shows.
type WeekFormat string

const (
	// SevenDay shows the full week.
	SevenDay WeekFormat = "7-day"
	// FiveDay shows weekdays only.
	FiveDay WeekFormat = "5-day"
)

// StartDayToday marks the start day as "whatever today is". It is resolved
// every time it is read, never baked into stored indices.
const StartDayToday = -1

// Preferences shape the week view. StartDay is a day index 0..6 or
// StartDayToday.
type Preferences struct {
	StartDay   int        `json:"startDay"`
	WeekFormat WeekFormat `json:"weekFormat"`
}

// DefaultPreferences is a Monday-start full week.
func DefaultPreferences() Preferences {
	return Preferences{StartDay: 1, WeekFormat: SevenDay}
}

// Normalize clamps out-of-range stored values back to defaults.
func (p Preferences) Normalize() Preferences {
	if p.StartDay < StartDayToday || p.StartDay > 6 {
		p.StartDay = DefaultPreferences().StartDay
	}
	if p.WeekFormat != SevenDay && p.WeekFormat != FiveDay {
		p.WeekFormat = SevenDay
	}
	return p
}

// ResolveStartDay returns the concrete day index the week starts on,
// resolving StartDayToday against the given clock reading.
func ResolveStartDay(p Preferences, now time.Time) int {
	if p.StartDay == StartDayToday {
		return int(now.Weekday())
	}
	if p.StartDay < 0 || p.StartDay > 6 {
		return DefaultPreferences().StartDay
	}
	return p.StartDay
}

// DisplayOrder returns the day indices to render, starting at the resolved
// start day. The five-day format drops Saturday and Sunday.
func DisplayOrder(p Preferences, now time.Time) []int {
	start := ResolveStartDay(p, now)
	order := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		day := (start + i) % 7
		if p.WeekFormat == FiveDay && (day == 0 || day == 6) {
			continue
		}
		order = append(order, day)
	}
	return order
}
