// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/modpack/internal/core/domain"
)

// Catalog resolves package ids and version ids against the remote catalog service.
// Implementations perform plain request/response calls: no caching, no retries.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// GetPackage returns the metadata of a package by id or slug.
	// Returns domain.ErrNotFound if the catalog does not know it.
	GetPackage(ctx context.Context, id string) (*domain.PackageMetadata, error)

	// GetVersions returns every published version of a package, in catalog order.
	// The list may be empty.
	GetVersions(ctx context.Context, packageID string) ([]domain.VersionMetadata, error)

	// GetVersion returns a single version by id.
	// Returns domain.ErrNotFound if the catalog does not know it.
	GetVersion(ctx context.Context, versionID string) (*domain.VersionMetadata, error)
}
