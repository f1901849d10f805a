// Package style holds the palette and glyphs used across hrdesk output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Teal   = lipgloss.Color("#0E9F9A")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#101828")
	Mist   = lipgloss.Color("#F2F4F7")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check    = "✓"
	Cross    = "✗"
	Warning  = "!"
	Arrow    = "→"
	Pointer  = "❯"
	Selected = "◉"
	Empty    = "○"
)
