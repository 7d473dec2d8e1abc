// Package printers renders planner state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/palette"
	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Items prints the repository as a table, insertion order.
func (pp *PrettyPrint) Items(items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("", "ID", "TITLE", "NOTE")
		for _, it := range items {
			table.AddRow(palette.Swatch(it.Color), it.ID, it.Title, it.Note)
		}
	} else {
		table.AddRow("", "TITLE", "NOTE")
		for _, it := range items {
			table.AddRow(palette.Swatch(it.Color), it.Title, it.Note)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Week prints each day in display order with its planned items. The day
// matching today gets a marker.
func (pp *PrettyPrint) Week(week schedule.Week, order []int, today int) {
	t := color.New()
	h := color.New(color.Bold, color.Underline)
	now := color.New(color.Bold, color.FgHiBlue)
	f := color.New(color.Faint, color.Italic)

	for _, day := range order {
		name := timeutil.DayName(day)
		if day == today {
			_, _ = now.Printf("%s ◂\n", name)
		} else {
			_, _ = h.Println(name)
		}

		seq := week[day]
		if len(seq) == 0 {
			_, _ = f.Print(" none\n\n")
			continue
		}
		for i, it := range seq {
			line := fmt.Sprintf(" %d. %s %s", i+1, palette.Swatch(it.Color), it.Title)
			if strings.TrimSpace(it.Note) != "" {
				line += color.New(color.Faint).Sprintf("  %s", it.Note)
			}
			_, _ = t.Println(line)
		}
		_, _ = t.Println("")
	}
}
