package output_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/modpack/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNewRenderer_Ascii(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	r := output.NewRenderer(new(bytes.Buffer))

	got := r.NewStyle().Foreground(lipgloss.Color("#22A06B")).Render("plain")

	assert.Equal(t, "plain", got)
}

func TestNewRendererWithProfile_ANSI(t *testing.T) {
	r := output.NewRendererWithProfile(new(bytes.Buffer), func() termenv.Profile { return termenv.ANSI })

	assert.Equal(t, termenv.ANSI, r.ColorProfile())
}

func TestNewRenderer_Nil(t *testing.T) {
	assert.NotNil(t, output.NewRenderer(nil))
}
