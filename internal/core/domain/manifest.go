package domain

import "slices"

// Details holds the manifest-wide resolution defaults.
type Details struct {
	// PlatformVersion is the game version new mods are resolved against (e.g. "1.20.1").
	PlatformVersion string

	// Loader is the mod loader new mods must support (e.g. "fabric").
	Loader string
}

// ManifestEntry pins a single mod slug to a version id.
type ManifestEntry struct {
	Slug      string
	VersionID string
}

// Pair returns the entry as a VersionPair.
func (e ManifestEntry) Pair() VersionPair {
	return VersionPair{Slug: e.Slug, VersionID: e.VersionID}
}

// Manifest is the declared desired state: an ordered set of slug -> version pins.
// Slugs are unique. Declared order is kept so that entries are processed
// and saved deterministically.
type Manifest struct {
	Details Details

	entries []ManifestEntry
	dirty   bool
}

// NewManifest creates an empty manifest with the given defaults.
func NewManifest(platformVersion, loader string) *Manifest {
	return &Manifest{
		Details: Details{PlatformVersion: platformVersion, Loader: loader},
	}
}

// NewManifestFromEntries creates a manifest from already persisted entries.
// Later duplicates of a slug override earlier ones in place. The result is not dirty.
func NewManifestFromEntries(details Details, entries []ManifestEntry) *Manifest {
	m := &Manifest{Details: details}
	for _, e := range entries {
		m.set(e.Slug, e.VersionID)
	}
	return m
}

// Entries returns a copy of the manifest entries in declared order.
func (m *Manifest) Entries() []ManifestEntry {
	return slices.Clone(m.entries)
}

// Pairs returns the (slug, version) projection used by index cleanup.
func (m *Manifest) Pairs() []VersionPair {
	pairs := make([]VersionPair, len(m.entries))
	for i, e := range m.entries {
		pairs[i] = e.Pair()
	}
	return pairs
}

// Len returns the number of pinned mods.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Get returns the version pinned for slug.
func (m *Manifest) Get(slug string) (string, bool) {
	i := m.indexOf(slug)
	if i < 0 {
		return "", false
	}
	return m.entries[i].VersionID, true
}

// Set pins slug to versionID, appending new slugs at the end.
// It reports whether the manifest changed.
func (m *Manifest) Set(slug, versionID string) bool {
	changed := m.set(slug, versionID)
	if changed {
		m.dirty = true
	}
	return changed
}

// Remove deletes the pin for slug and reports whether it existed.
func (m *Manifest) Remove(slug string) bool {
	i := m.indexOf(slug)
	if i < 0 {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	m.dirty = true
	return true
}

// Dirty reports whether the manifest was mutated since it was created or last marked clean.
func (m *Manifest) Dirty() bool {
	return m.dirty
}

// MarkClean records that the current state has been persisted.
func (m *Manifest) MarkClean() {
	m.dirty = false
}

func (m *Manifest) set(slug, versionID string) bool {
	if i := m.indexOf(slug); i >= 0 {
		if m.entries[i].VersionID == versionID {
			return false
		}
		m.entries[i].VersionID = versionID
		return true
	}
	m.entries = append(m.entries, ManifestEntry{Slug: slug, VersionID: versionID})
	return true
}

func (m *Manifest) indexOf(slug string) int {
	return slices.IndexFunc(m.entries, func(e ManifestEntry) bool { return e.Slug == slug })
}
