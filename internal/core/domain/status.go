package domain

// EntryState is the observed reconciliation state of a mod or file.
type EntryState string

const (
	// StatePinned means the manifest pins a version but no matching file is installed.
	StatePinned EntryState = "pinned"
	// StateMaterialized means the pinned version is installed and tracked by the index.
	StateMaterialized EntryState = "materialized"
	// StateModified means the tracked file exists but its content changed since install.
	StateModified EntryState = "modified"
	// StateStale means the index tracks a file the manifest no longer references.
	StateStale EntryState = "stale"
	// StateUntracked means a file sits in the installation directory without an index entry.
	StateUntracked EntryState = "untracked"
)

// EntryStatus is one line of a status report.
type EntryStatus struct {
	Slug      string
	VersionID string
	Filename  string
	State     EntryState
}

// StatusReport summarizes how the manifest, the index and the filesystem agree.
type StatusReport struct {
	Entries []EntryStatus
}

// Consistent reports whether every entry is materialized.
func (r StatusReport) Consistent() bool {
	for _, e := range r.Entries {
		if e.State != StateMaterialized {
			return false
		}
	}
	return true
}
