package ports

import (
	"context"

	"go.trai.ch/modpack/internal/core/domain"
)

// ContentCache is a content-addressed store of downloaded artifacts shared across projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ContentCache interface {
	// Materialize places the artifact addressed by target at destination.
	// On a cache hit the file is copied without network access; on a miss it is
	// downloaded into the cache first. hit reports which path was taken.
	Materialize(ctx context.Context, target domain.DownloadTarget, destination string) (hit bool, err error)
}
