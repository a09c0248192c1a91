// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/modpack/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Mark returns the icon and color used to display an entry state.
func Mark(state domain.EntryState) (string, lipgloss.Color) {
	switch state {
	case domain.StateMaterialized:
		return Check, Green
	case domain.StateModified:
		return Tilde, Yellow
	case domain.StatePinned:
		return Circle, Iris
	case domain.StateStale:
		return Cross, Red
	case domain.StateUntracked:
		return Warning, Slate
	default:
		return Dot, Slate
	}
}
