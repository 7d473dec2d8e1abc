// Package tui renders the interactive week board. It is a thin shell: all
// gestures resolve through the drag session and the app service, never by
// poking the schedule directly.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/drag"
	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/palette"
	"tableflip.dev/weekly/pkg/schedule"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/timeutil"
)

// libraryColumn is the leftmost column; day columns follow in display order.
const libraryColumn = 0

type storeChangedMsg store.Event

type Model struct {
	svc     *app.Service
	session *drag.Session

	order []int // day indices in display order
	col   int   // libraryColumn or 1..len(order)
	row   int

	adding bool
	input  textinput.Model

	status  string
	isError bool

	events <-chan store.Event

	width  int
	height int
}

// NewModel builds the board over a loaded service.
func NewModel(svc *app.Service) *Model {
	input := textinput.New()
	input.Placeholder = "Item title…"
	input.Prompt = "add> "
	input.CharLimit = 80

	return &Model{
		svc:     svc,
		session: svc.DragSession(),
		order:   schedule.DisplayOrder(svc.Prefs, time.Now()),
		input:   input,
	}
}

// Run starts the board and blocks until the user quits.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewModel(svc)
	if events, err := svc.Watch(ctx); err == nil {
		m.events = events
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.waitForStoreEvent()
}

func (m *Model) waitForStoreEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return storeChangedMsg(ev)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case storeChangedMsg:
		// another process touched the store; reload and redraw
		if err := m.svc.Load(); err == nil {
			m.order = schedule.DisplayOrder(m.svc.Prefs, time.Now())
			m.clampCursor()
		}
		return m, m.waitForStoreEvent()

	case tea.KeyMsg:
		if m.adding {
			return m.updateAddForm(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m *Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.adding = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		color := ""
		if n := m.svc.Items.Len(); n > 0 {
			color = palette.Next(m.svc.Items.List()[n-1].Color)
		}
		if _, err := m.svc.AddItem(title, color, ""); err != nil {
			m.setError(err)
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		m.setStatus("item added")
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.session.Dragging() {
			m.session.Cancel()
			m.setStatus("cancelled")
			return m, nil
		}
		return m, tea.Quit

	case "left", "h":
		m.moveColumn(-1)
	case "right", "l":
		m.moveColumn(1)
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)

	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink

	case "x", "delete":
		m.deleteUnderCursor()

	case "enter", " ":
		m.pickOrPlace()
	}
	return m, nil
}

func (m *Model) moveColumn(delta int) {
	m.col += delta
	if m.col < libraryColumn {
		m.col = libraryColumn
	}
	if m.col > len(m.order) {
		m.col = len(m.order)
	}
	m.clampCursor()
	m.hover()
}

func (m *Model) moveRow(delta int) {
	m.row += delta
	m.clampCursor()
	m.hover()
}

func (m *Model) clampCursor() {
	max := len(m.columnItems(m.col)) - 1
	if m.row > max {
		m.row = max
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) columnItems(col int) []item.Item {
	if col == libraryColumn {
		return m.svc.Items.List()
	}
	if col-1 < len(m.order) {
		return m.svc.Schedule.Day(m.order[col-1])
	}
	return nil
}

// hover keeps the session's candidate target in sync with the cursor.
func (m *Model) hover() {
	if !m.session.Dragging() || m.col == libraryColumn {
		return
	}
	day := m.order[m.col-1]
	index := -1
	if src, ok := m.session.Source(); ok && src.Kind == drag.FromDay && src.Day == day {
		index = m.row
	}
	_ = m.session.Hover(drag.Target{Day: day, Index: index})
}

func (m *Model) pickOrPlace() {
	if m.session.Dragging() {
		if m.col == libraryColumn {
			m.session.Cancel()
			m.setStatus("cancelled")
			return
		}
		if err := m.session.Drop(); err != nil {
			m.setError(err)
			return
		}
		m.clampCursor()
		m.setStatus("placed")
		return
	}

	items := m.columnItems(m.col)
	if m.row >= len(items) {
		return
	}
	it := items[m.row]
	if m.col == libraryColumn {
		m.session.Begin(drag.LibrarySource(it))
	} else {
		m.session.Begin(drag.DaySource(it, m.order[m.col-1], m.row))
	}
	m.setStatus(fmt.Sprintf("dragging %s", it.Title))
}

func (m *Model) deleteUnderCursor() {
	items := m.columnItems(m.col)
	if m.row >= len(items) {
		return
	}
	it := items[m.row]
	if m.col == libraryColumn {
		if err := m.svc.RemoveItem(it.ID); err != nil {
			m.setError(err)
			return
		}
		m.setStatus(fmt.Sprintf("removed %s", it.Title))
	} else {
		m.svc.Unplan(m.order[m.col-1], it.ID)
		m.setStatus(fmt.Sprintf("unplanned %s", it.Title))
	}
	m.clampCursor()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isError = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.isError = true
}

func (m *Model) View() string {
	columns := make([]string, 0, len(m.order)+1)
	columns = append(columns, m.renderColumn(libraryColumn))
	for i := range m.order {
		columns = append(columns, m.renderColumn(i+1))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var footer string
	switch {
	case m.adding:
		footer = m.input.View()
	case m.isError:
		footer = errorStyle.Render(m.status)
	case m.session.Dragging():
		src, _ := m.session.Source()
		footer = draggingStyle.Render(fmt.Sprintf("dragging %s · enter drops · esc cancels", src.Item.Title))
	default:
		line := "enter pick up · x unplan/remove · a add · q quit"
		if m.status != "" {
			line = m.status + "  ·  " + line
		}
		footer = statusStyle.Render(line)
	}

	return board + "\n" + footer
}

func (m *Model) renderColumn(col int) string {
	var b strings.Builder

	today := int(time.Now().Weekday())
	if col == libraryColumn {
		b.WriteString(headerStyle.Render("Library"))
	} else {
		day := m.order[col-1]
		name := timeutil.DayName(day)
		if day == today {
			b.WriteString(todayStyle.Render(name + " ◂"))
		} else {
			b.WriteString(headerStyle.Render(name))
		}
	}
	b.WriteString("\n")

	items := m.columnItems(col)
	if len(items) == 0 {
		b.WriteString(emptyStyle.Render("none"))
	}
	for i, it := range items {
		line := swatchStyle(it.Color).Render("●") + " " + it.Title
		if col == m.col && i == m.row {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}

	style := columnStyle
	if col == m.col {
		style = focusedColumnStyle
	}
	return style.Render(b.String())
}
