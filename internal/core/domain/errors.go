package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrNotFound is returned when the catalog does not know a package or version id.
	ErrNotFound = zerr.New("not found in catalog")

	// ErrVersionNotFound is returned when no version satisfies the platform and loader
	// constraints, when a pinned version does not belong to its package, or when the
	// selected version has no downloadable files.
	ErrVersionNotFound = zerr.New("version not found")

	// ErrDownloadFailed is returned when fetching an artifact yields a transport error
	// or a non-success HTTP response.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrIOFailure is returned when a local filesystem read, write or delete fails.
	ErrIOFailure = zerr.New("filesystem operation failed")

	// ErrCatalogRequestFailed is returned when a catalog request cannot be completed.
	ErrCatalogRequestFailed = zerr.New("catalog request failed")

	// ErrCatalogParseFailed is returned when a catalog response cannot be decoded.
	ErrCatalogParseFailed = zerr.New("failed to parse catalog response")

	// ErrInvalidSpecifier is returned when a mod specifier is not "slug" or "slug:version".
	ErrInvalidSpecifier = zerr.New("invalid mod specifier")

	// ErrInvalidCacheKey is returned when a download target cannot be mapped to a cache path.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrModNotInManifest is returned when an operation names a mod the manifest does not pin.
	ErrModNotInManifest = zerr.New("mod is not in the manifest")

	// ErrManifestNotFound is returned when the manifest file does not exist.
	ErrManifestNotFound = zerr.New("manifest does not exist")

	// ErrManifestExists is returned by init when a manifest is already present.
	ErrManifestExists = zerr.New("manifest already exists")

	// ErrManifestParseFailed is returned when the manifest file cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrIndexParseFailed is returned when the installed-state index cannot be decoded.
	ErrIndexParseFailed = zerr.New("failed to parse installed-state index")

	// ErrSettingsParseFailed is returned when the settings file cannot be decoded.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidSettings is returned when a settings value is out of range.
	ErrInvalidSettings = zerr.New("invalid settings")
)

// Tagged returns kind in a form that zerr metadata can be attached to while
// errors.Is still matches kind. zerr.With on a bare sentinel copies it and
// loses its identity.
func Tagged(kind error) error {
	return zerr.Wrap(kind, "")
}

// WrapKind returns an error reading "kind: cause" that matches both kind and
// cause under errors.Is.
func WrapKind(kind, cause error) error {
	if cause == nil {
		return Tagged(kind)
	}
	return fmt.Errorf("%w: %w", kind, cause)
}
