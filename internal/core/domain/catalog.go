package domain

import (
	"slices"
	"time"
)

// preferredHashes lists the hash algorithms used as cache keys, in order of preference.
var preferredHashes = []string{"sha1", "sha512"}

// PackageMetadata is the subset of a catalog project consumed by resolution.
type PackageMetadata struct {
	ID       string
	Slug     string
	Title    string
	Versions []string
}

// HasVersion reports whether versionID is one of the package's known versions.
func (p *PackageMetadata) HasVersion(versionID string) bool {
	return slices.Contains(p.Versions, versionID)
}

// VersionMetadata describes a single published version of a package.
type VersionMetadata struct {
	ID               string
	PackageID        string
	Name             string
	VersionNumber    string
	Published        time.Time
	PlatformVersions []string
	Loaders          []string
	Files            []FileDescriptor
}

// Supports reports whether the version declares both the platform version and the loader.
func (v *VersionMetadata) Supports(platformVersion, loader string) bool {
	return slices.Contains(v.PlatformVersions, platformVersion) && slices.Contains(v.Loaders, loader)
}

// PrimaryFile returns the authoritative file of the version: the first one listed.
func (v *VersionMetadata) PrimaryFile() (FileDescriptor, bool) {
	if len(v.Files) == 0 {
		return FileDescriptor{}, false
	}
	return v.Files[0], true
}

// FileDescriptor is a downloadable file of a version.
type FileDescriptor struct {
	Filename string
	URL      string
	Hashes   map[string]string
	Primary  bool
}

// CacheKeyHash returns the hash used to address the file in the content cache.
// sha1 is preferred, then sha512, then the alphabetically first algorithm, so the
// choice is stable regardless of how the catalog ordered the hash object.
func (f FileDescriptor) CacheKeyHash() (string, bool) {
	for _, algo := range preferredHashes {
		if h := f.Hashes[algo]; h != "" {
			return h, true
		}
	}
	algos := make([]string, 0, len(f.Hashes))
	for algo, h := range f.Hashes {
		if h != "" {
			algos = append(algos, algo)
		}
	}
	if len(algos) == 0 {
		return "", false
	}
	slices.Sort(algos)
	return f.Hashes[algos[0]], true
}

// ResolvedVersion is the outcome of resolving a package and constraints to a version.
type ResolvedVersion struct {
	PackageID string
	Slug      string
	VersionID string
}

// DownloadTarget addresses an artifact in the content cache and where to fetch it from.
type DownloadTarget struct {
	PackageID   string
	VersionID   string
	ContentHash string
	SourceURL   string
}

// String returns "package:version", used in log lines.
func (t DownloadTarget) String() string {
	return t.PackageID + ":" + t.VersionID
}
