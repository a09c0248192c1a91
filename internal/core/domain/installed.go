package domain

// VersionPair identifies a pinned (slug, version) combination.
type VersionPair struct {
	Slug      string
	VersionID string
}

// InstalledEntry records that a file in the installation directory is believed
// to be an exact version of a mod. Filenames are unique within an index.
type InstalledEntry struct {
	Slug      string `json:"modSlug"`
	PackageID string `json:"modId"`
	VersionID string `json:"versionId"`
	Filename  string `json:"filename"`

	// Checksum is the xxhash64 of the file at install time, hex encoded.
	// Entries written by older tools do not carry it.
	Checksum string `json:"checksum,omitempty"`
}

// Matches reports whether the entry belongs to the given pin.
func (e InstalledEntry) Matches(p VersionPair) bool {
	return e.Slug == p.Slug && e.VersionID == p.VersionID
}

// Pair returns the entry's (slug, version) pair.
func (e InstalledEntry) Pair() VersionPair {
	return VersionPair{Slug: e.Slug, VersionID: e.VersionID}
}
