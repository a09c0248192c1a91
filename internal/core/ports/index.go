package ports

import "go.trai.ch/modpack/internal/core/domain"

// InstalledIndex is the durable record of which files in the installation directory
// belong to which mod versions. Every mutation is flushed before it returns.
type InstalledIndex interface {
	// Entries returns a copy of the tracked entries.
	Entries() []domain.InstalledEntry

	// InstalledVersion returns the version installed for slug, if any.
	InstalledVersion(slug string) (string, bool)

	// Add records a completed download, replacing any entry for the same filename.
	Add(entry domain.InstalledEntry) error

	// Cleanup drops entries not referenced by pairs (deleting their files when prune is set)
	// and entries whose backing file has disappeared.
	Cleanup(pairs []domain.VersionPair, prune bool) error
}

// IndexLoader opens the installed-state index of an installation directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type IndexLoader interface {
	// Load reads the index (creating it when absent), runs Cleanup against pairs and persists it.
	Load(installDir string, pairs []domain.VersionPair, prune bool) (InstalledIndex, error)

	// Open reads the index as it is on disk, without cleaning or persisting it.
	Open(installDir string) (InstalledIndex, error)
}
