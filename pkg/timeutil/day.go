// Package timeutil parses and formats day-of-week tokens used across the
// CLI and TUI.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	dayNames = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	dayAliases = map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tues": 2, "tuesday": 2,
		"wed": 3, "weds": 3, "wednesday": 3,
		"thu": 4, "thur": 4, "thurs": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}
)

// ParseDay resolves a human-friendly day token (for example "mon", "Friday",
// "3", or "today") to a day index where 0 is Sunday and 6 is Saturday.
func ParseDay(input string) (int, error) {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return 0, fmt.Errorf("day required")
	}
	if token == "today" {
		return int(time.Now().Weekday()), nil
	}
	if d, ok := dayAliases[token]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("day index %d out of range 0..6", n)
		}
		return n, nil
	}
	return 0, fmt.Errorf("unknown day %q", input)
}

// DayName returns the full weekday name for a day index.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "?"
	}
	return dayNames[day]
}

// ShortDayName returns the three-letter weekday name for a day index.
func ShortDayName(day int) string {
	if day < 0 || day > 6 {
		return "?"
	}
	return shortDayNames[day]
}
