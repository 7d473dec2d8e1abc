package tui

import "github.com/charmbracelet/lipgloss"

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(22)

	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("63"))

	headerStyle = lipgloss.NewStyle().Bold(true)

	todayStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("63"))

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	draggingStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.Color("212"))

	emptyStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	statusStyle = lipgloss.NewStyle().Faint(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func swatchStyle(token string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(token))
}
