// Package output provides utilities for creating terminal renderers with consistent
// color profile handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for the current environment.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewRenderer creates a lipgloss renderer writing to w with the CLI color profile.
// A nil writer falls back to stdout.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	return NewRendererWithProfile(w, ColorProfile)
}

// NewRendererWithProfile is NewRenderer with a custom profile selector.
func NewRendererWithProfile(w io.Writer, profileFn func() termenv.Profile) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profileFn())
	return r
}
