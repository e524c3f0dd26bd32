// Package theme holds the terminal styles used by the CLI summaries.
package theme

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#F97316") // Orange
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

var (
	Title    lipgloss.Style
	Hint     lipgloss.Style
	Mastered lipgloss.Style
	Pending  lipgloss.Style
)

func init() {
	SetEnabled(true)
}

// SetEnabled switches styling on or off. With styling off every style
// renders its input unchanged.
func SetEnabled(on bool) {
	if !on {
		plain := lipgloss.NewStyle()
		Title, Hint, Mastered, Pending = plain, plain, plain, plain
		return
	}

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Mastered = lipgloss.NewStyle().
		Foreground(Success)

	Pending = lipgloss.NewStyle().
		Foreground(Warning)
}

// Rule returns a horizontal rule n cells wide.
func Rule(n int) string {
	return Hint.Render(strings.Repeat("─", n))
}

// Truncate shortens s to at most n terminal cells, ending in "..." when
// anything was cut. Multi-byte and wide characters are never split.
func Truncate(s string, n int) string {
	return ansi.Truncate(s, n, "...")
}
