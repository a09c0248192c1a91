package ports

import "go.trai.ch/modpack/internal/core/domain"

// ManifestStore reads and writes the manifest file.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Exists reports whether a manifest file is present at path.
	Exists(path string) bool

	// Load reads the manifest at path.
	// Returns domain.ErrManifestNotFound if the file does not exist.
	Load(path string) (*domain.Manifest, error)

	// Save writes the manifest to path, preserving entry order.
	Save(path string, manifest *domain.Manifest) error
}
