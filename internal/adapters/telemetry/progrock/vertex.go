package progrock

import (
	"sync/atomic"

	"github.com/vito/progrock"
	"go.trai.ch/modpack/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	stats  *stats
	done   atomic.Bool
	cached atomic.Bool
}

// Complete marks the vertex as finished. Only the first call counts.
func (v *Vertex) Complete(err error) {
	if !v.done.CompareAndSwap(false, true) {
		return
	}
	if err != nil {
		v.stats.failed.Add(1)
	} else {
		v.stats.completed.Add(1)
	}
	v.vertex.Done(err)
}

// Cached marks the vertex as served from the content cache.
func (v *Vertex) Cached() {
	if !v.cached.CompareAndSwap(false, true) {
		return
	}
	v.stats.cached.Add(1)
	v.vertex.Cached()
}
