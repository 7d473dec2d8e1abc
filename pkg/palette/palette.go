// Package palette holds the fixed set of colors items can wear and helpers
// for rendering them in a terminal.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaults is ordered warm to cool so adjacent picks stay distinguishable.
var defaults = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16",
	"#22c55e", "#10b981", "#14b8a6", "#06b6d4", "#0ea5e9",
	"#3b82f6", "#6366f1", "#8b5cf6", "#a855f7", "#d946ef",
	"#ec4899", "#f43f5e",
}

// Default returns a copy of the built-in color palette.
func Default() []string {
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// Fallback is the color assigned when the caller does not pick one.
func Fallback() string {
	return defaults[0]
}

// Contains reports whether the token is one of the built-in palette colors.
func Contains(token string) bool {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, c := range defaults {
		if c == token {
			return true
		}
	}
	return false
}

// Next returns the palette color following the given token, wrapping at the
// end. Unknown tokens restart from the beginning.
func Next(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	for i, c := range defaults {
		if c == token {
			return defaults[(i+1)%len(defaults)]
		}
	}
	return defaults[0]
}

// Swatch renders a filled marker in the given color token for terminal output.
func Swatch(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		token = Fallback()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(token)).Render("●")
}
