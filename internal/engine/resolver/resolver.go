// Package resolver selects concrete mod versions from the catalog.
package resolver

import (
	"cmp"
	"context"
	"slices"

	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver turns package ids and constraints into version ids.
type Resolver struct {
	catalog ports.Catalog
}

// New creates a new Resolver over catalog.
func New(catalog ports.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// ResolveLatest returns the newest version of packageID that supports both
// platformVersion and loader. Versions published at the same instant keep
// their catalog order.
func (r *Resolver) ResolveLatest(
	ctx context.Context, packageID, platformVersion, loader string,
) (domain.ResolvedVersion, error) {
	pkg, err := r.catalog.GetPackage(ctx, packageID)
	if err != nil {
		return domain.ResolvedVersion{}, err
	}

	versions, err := r.catalog.GetVersions(ctx, pkg.ID)
	if err != nil {
		return domain.ResolvedVersion{}, err
	}

	candidates := slices.DeleteFunc(slices.Clone(versions), func(v domain.VersionMetadata) bool {
		return !v.Supports(platformVersion, loader)
	})
	if len(candidates) == 0 {
		notFound := zerr.With(domain.Tagged(domain.ErrVersionNotFound), "package", packageID)
		notFound = zerr.With(notFound, "platform_version", platformVersion)
		return domain.ResolvedVersion{}, zerr.With(notFound, "loader", loader)
	}

	slices.SortStableFunc(candidates, func(a, b domain.VersionMetadata) int {
		return cmp.Compare(b.Published.UnixNano(), a.Published.UnixNano())
	})

	best := candidates[0]
	if len(best.Files) == 0 {
		noFiles := zerr.With(domain.Tagged(domain.ErrVersionNotFound), "package", packageID)
		noFiles = zerr.With(noFiles, "version_id", best.ID)
		return domain.ResolvedVersion{}, zerr.With(noFiles, "reason", "version has no files")
	}

	return domain.ResolvedVersion{PackageID: pkg.ID, Slug: slugOf(pkg, packageID), VersionID: best.ID}, nil
}

// ResolveExact checks that versionID is one of packageID's versions.
// The version itself is not fetched.
func (r *Resolver) ResolveExact(ctx context.Context, packageID, versionID string) (domain.ResolvedVersion, error) {
	pkg, err := r.catalog.GetPackage(ctx, packageID)
	if err != nil {
		return domain.ResolvedVersion{}, err
	}

	if !pkg.HasVersion(versionID) {
		notFound := zerr.With(domain.Tagged(domain.ErrVersionNotFound), "package", packageID)
		return domain.ResolvedVersion{}, zerr.With(notFound, "version_id", versionID)
	}

	return domain.ResolvedVersion{PackageID: pkg.ID, Slug: slugOf(pkg, packageID), VersionID: versionID}, nil
}

// slugOf prefers the catalog slug and falls back to what the user typed.
func slugOf(pkg *domain.PackageMetadata, requested string) string {
	if pkg.Slug != "" {
		return pkg.Slug
	}
	return requested
}
