// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"io"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/modpack/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// One vertex is recorded per unit of work, keyed by its name, and every update
// goes to the recorder's writer.
type Recorder struct {
	w     progrock.Writer
	rec   *progrock.Recorder
	stats stats
}

// stats counts vertex outcomes for the end-of-run summary.
type stats struct {
	completed atomic.Int64
	failed    atomic.Int64
	cached    atomic.Int64
}

// Summary reports how recorded vertices ended.
type Summary struct {
	Completed int64
	Failed    int64
	Cached    int64
}

// New creates a Recorder that prints finished vertices to w.
func New(w io.Writer) *Recorder {
	return NewRecorder(NewPrinter(w))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(name string) ports.Vertex {
	return &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name), stats: &r.stats}
}

// Summary returns the outcome counts recorded so far.
func (r *Recorder) Summary() Summary {
	return Summary{
		Completed: r.stats.completed.Load(),
		Failed:    r.stats.failed.Load(),
		Cached:    r.stats.cached.Load(),
	}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
