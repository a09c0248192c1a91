// Package index implements the installed-state index: a JSON side file in the
// installation directory recording which file belongs to which mod version.
package index

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	modfs "go.trai.ch/modpack/internal/adapters/fs"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.IndexLoader    = (*Loader)(nil)
	_ ports.InstalledIndex = (*Index)(nil)
)

// document is the on-disk shape of the index file.
type document struct {
	Mods []domain.InstalledEntry `json:"mods"`
}

// Loader opens indexes through a shared logger and verifier.
type Loader struct {
	logger   ports.Logger
	verifier *modfs.Verifier
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, verifier *modfs.Verifier) *Loader {
	return &Loader{logger: logger, verifier: verifier}
}

// Load reads the index of installDir, creating it when absent, then cleans it
// against pairs and persists the result.
func (l *Loader) Load(installDir string, pairs []domain.VersionPair, prune bool) (ports.InstalledIndex, error) {
	idx, err := Open(installDir, l.logger, l.verifier)
	if err != nil {
		return nil, err
	}
	if err := idx.Cleanup(pairs, prune); err != nil {
		return nil, err
	}
	return idx, nil
}

// Open reads the index of installDir as it is on disk. Nothing is written.
func (l *Loader) Open(installDir string) (ports.InstalledIndex, error) {
	return Open(installDir, l.logger, l.verifier)
}

// Index implements ports.InstalledIndex. Every mutation is flushed to disk
// before it returns.
type Index struct {
	dir      string
	path     string
	logger   ports.Logger
	verifier *modfs.Verifier

	mu      sync.Mutex
	entries []domain.InstalledEntry
}

// Open reads the index stored in installDir without cleaning it.
// A missing or empty file yields an empty index.
func Open(installDir string, logger ports.Logger, verifier *modfs.Verifier) (*Index, error) {
	dir := filepath.Clean(installDir)
	idx := &Index{
		dir:      dir,
		path:     filepath.Join(dir, domain.IndexFileName),
		logger:   logger,
		verifier: verifier,
	}
	if err := idx.load(); err != nil {
		return nil, err
	}
	return idx, nil
}

func (i *Index) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(i.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", i.path)
	}

	if len(data) == 0 {
		return nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrIndexParseFailed, err), "path", i.path)
	}
	i.entries = doc.Mods
	return nil
}

// flush persists the entries. Callers must hold i.mu.
func (i *Index) flush() error {
	doc := document{Mods: i.entries}
	if doc.Mods == nil {
		doc.Mods = []domain.InstalledEntry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.WrapKind(domain.ErrIOFailure, err)
	}

	return modfs.WriteBytesAtomic(i.path, data)
}

// Entries returns a copy of the tracked entries.
func (i *Index) Entries() []domain.InstalledEntry {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.entries)
}

// InstalledVersion returns the version installed for slug, if any.
func (i *Index) InstalledVersion(slug string) (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, e := range i.entries {
		if e.Slug == slug {
			return e.VersionID, true
		}
	}
	return "", false
}

// Add records a completed download, replacing any entry for the same filename.
func (i *Index) Add(entry domain.InstalledEntry) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.entries = slices.DeleteFunc(i.entries, func(e domain.InstalledEntry) bool {
		return e.Filename == entry.Filename
	})
	i.entries = append(i.entries, entry)

	return i.flush()
}

// Cleanup drops entries whose pin is not in pairs, deleting their files first
// when prune is set, then drops entries whose file has disappeared. All
// deletions are attempted; failures are reported together after the index is
// persisted. An entry whose file could not be deleted stays tracked.
func (i *Index) Cleanup(pairs []domain.VersionPair, prune bool) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	wanted := make(map[domain.VersionPair]struct{}, len(pairs))
	for _, p := range pairs {
		wanted[p] = struct{}{}
	}

	var deleteErrs []error
	kept := make([]domain.InstalledEntry, 0, len(i.entries))

	for _, e := range i.entries {
		if _, ok := wanted[e.Pair()]; ok {
			kept = append(kept, e)
			continue
		}
		if !prune {
			continue
		}
		if err := i.deleteFile(e); err != nil {
			deleteErrs = append(deleteErrs, err)
			kept = append(kept, e)
		}
	}

	present := kept[:0]
	for _, e := range kept {
		if !domain.IsBaseName(e.Filename) {
			i.logger.Warn("dropping index entry with invalid filename", "slug", e.Slug, "filename", e.Filename)
			continue
		}
		ok, err := i.verifier.Exists(filepath.Join(i.dir, e.Filename))
		if err != nil {
			return err
		}
		if !ok {
			i.logger.Info("file missing from disk, forgetting it", "slug", e.Slug, "filename", e.Filename)
			continue
		}
		present = append(present, e)
	}
	i.entries = present

	if err := i.flush(); err != nil {
		return err
	}

	if len(deleteErrs) > 0 {
		return zerr.With(
			domain.WrapKind(domain.ErrIOFailure, errors.Join(deleteErrs...)),
			"failed_deletions", len(deleteErrs),
		)
	}
	return nil
}

// deleteFile removes the backing file of an unreferenced entry.
// A file that is already gone is not a failure.
func (i *Index) deleteFile(e domain.InstalledEntry) error {
	if !domain.IsBaseName(e.Filename) {
		i.logger.Warn("refusing to delete file outside the installation directory",
			"slug", e.Slug, "filename", e.Filename)
		return nil
	}

	path := filepath.Join(i.dir, e.Filename)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.With(err, "slug", e.Slug), "path", path)
	}
	i.logger.Info("deleted", "slug", e.Slug, "version", e.VersionID, "filename", e.Filename)
	return nil
}
