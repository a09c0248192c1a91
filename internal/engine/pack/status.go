package pack

import (
	"path/filepath"

	"go.trai.ch/modpack/internal/core/domain"
)

// Status compares the manifest, the index and the installation directory.
// It only reads: the index on disk is neither cleaned nor rewritten.
func (p *Pack) Status() (domain.StatusReport, error) {
	idx, err := p.deps.Index.Open(p.installDir)
	if err != nil {
		return domain.StatusReport{}, err
	}

	p.mu.Lock()
	entries := p.manifest.Entries()
	p.mu.Unlock()
	tracked := idx.Entries()

	var report domain.StatusReport
	referenced := make(map[domain.VersionPair]bool, len(entries))
	for _, e := range entries {
		referenced[e.Pair()] = true
		st, err := p.entryStatus(e, tracked)
		if err != nil {
			return domain.StatusReport{}, err
		}
		report.Entries = append(report.Entries, st)
	}

	known := make(map[string]bool, len(tracked))
	for _, t := range tracked {
		known[t.Filename] = true
		if !referenced[t.Pair()] {
			report.Entries = append(report.Entries, domain.EntryStatus{
				Slug:      t.Slug,
				VersionID: t.VersionID,
				Filename:  t.Filename,
				State:     domain.StateStale,
			})
		}
	}

	for name := range p.deps.Lister.ListFiles(p.installDir) {
		if !known[name] {
			report.Entries = append(report.Entries, domain.EntryStatus{Filename: name, State: domain.StateUntracked})
		}
	}

	return report, nil
}

func (p *Pack) entryStatus(e domain.ManifestEntry, tracked []domain.InstalledEntry) (domain.EntryStatus, error) {
	st := domain.EntryStatus{Slug: e.Slug, VersionID: e.VersionID, State: domain.StatePinned}

	for _, t := range tracked {
		if !t.Matches(e.Pair()) {
			continue
		}
		st.Filename = t.Filename

		path := filepath.Join(p.installDir, t.Filename)
		present, err := p.deps.Probe.Exists(path)
		if err != nil {
			return st, err
		}
		if !present {
			return st, nil
		}

		st.State = domain.StateMaterialized
		if t.Checksum == "" {
			return st, nil
		}
		sum, err := p.deps.Hasher.ComputeFileHash(path)
		if err != nil {
			return st, err
		}
		if sum != t.Checksum {
			st.State = domain.StateModified
		}
		return st, nil
	}
	return st, nil
}
