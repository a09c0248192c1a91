package ports

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of per-mod work.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(name string) Vertex
	// Close flushes and ends the recording session.
	Close() error
}

// Vertex is a single unit of recorded work.
type Vertex interface {
	// Complete marks the vertex finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as served from the content cache.
	Cached()
}
