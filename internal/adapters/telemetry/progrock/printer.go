package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/modpack/internal/ui/output"
	"go.trai.ch/modpack/internal/ui/style"
)

var _ progrock.Writer = (*Printer)(nil)

// Printer is a progrock.Writer that prints one line per finished vertex.
// Running vertices are not shown, so the output stays readable when it is
// not a terminal.
type Printer struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	printed  map[string]struct{}
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:      w,
		renderer: output.NewRenderer(w),
		printed:  make(map[string]struct{}),
	}
}

// WriteStatus prints every vertex of update that completed since the last call.
func (p *Printer) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, ok := p.printed[v.Id]; ok {
			continue
		}
		p.printed[v.Id] = struct{}{}

		if _, err := fmt.Fprintln(p.out, p.line(v)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) line(v *progrock.Vertex) string {
	icon, color, suffix := style.Check, style.Green, ""
	switch {
	case v.Error != nil:
		icon, color, suffix = style.Cross, style.Red, ": "+*v.Error
	case v.Cached:
		color, suffix = style.Slate, " (cached)"
	}
	return p.renderer.NewStyle().Foreground(color).Render(icon) + " " + v.Name + suffix
}

// Close does nothing; the Printer writes synchronously.
func (p *Printer) Close() error {
	return nil
}
