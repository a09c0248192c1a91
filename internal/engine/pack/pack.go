// Package pack reconciles a manifest with its installation directory.
//
// A Pack owns one manifest and one installed-state index. Every mutation of
// either goes through the pack mutex, so concurrent downloads started by Sync
// never interleave index writes.
package pack

import (
	"cmp"
	"context"
	"errors"
	"iter"
	"path/filepath"
	"sync"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/modpack/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FileProbe inspects files in the installation directory.
type FileProbe interface {
	Exists(path string) (bool, error)
	Matches(path string, want digest.Digest) (bool, error)
}

// FileLister lists the plain files of a directory by base name.
type FileLister interface {
	ListFiles(dir string) iter.Seq[string]
}

// Deps are the collaborators shared by every Pack.
type Deps struct {
	Catalog   ports.Catalog
	Resolver  *resolver.Resolver
	Cache     ports.ContentCache
	Index     ports.IndexLoader
	Hasher    ports.FileHasher
	Probe     FileProbe
	Lister    FileLister
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Option configures a Pack.
type Option func(*Pack)

// WithJobs sets how many entries Sync materializes concurrently.
// Values below 1 are ignored.
func WithJobs(n int) Option {
	return func(p *Pack) {
		if n >= 1 {
			p.jobs = n
		}
	}
}

// InstallOptions control Install.
type InstallOptions struct {
	// ForcedPlatformVersion replaces the manifest's platform version for this resolution only.
	ForcedPlatformVersion string
	// Download materializes the resolved version right away.
	Download bool
}

// UpdateResult describes the outcome of updating one pin.
type UpdateResult struct {
	Slug string
	From string
	To   string
}

// Changed reports whether the pin moved to a different version.
func (r UpdateResult) Changed() bool {
	return r.From != r.To
}

// Pack binds a manifest to an installation directory.
type Pack struct {
	manifest   *domain.Manifest
	installDir string
	deps       Deps
	jobs       int

	mu    sync.Mutex
	index ports.InstalledIndex
}

// New creates a Pack for manifest installed into installDir.
func New(manifest *domain.Manifest, installDir string, deps Deps, opts ...Option) *Pack {
	p := &Pack{
		manifest:   manifest,
		installDir: filepath.Clean(installDir),
		deps:       deps,
		jobs:       1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Manifest returns the manifest the pack mutates.
func (p *Pack) Manifest() *domain.Manifest {
	return p.manifest
}

// InstallDir returns the installation directory.
func (p *Pack) InstallDir() string {
	return p.installDir
}

// Install resolves a specifier and pins the result in the manifest.
// "slug:version" pins exactly that version; a bare slug pins the newest version
// supporting the manifest's loader and platform version.
func (p *Pack) Install(ctx context.Context, raw string, opts InstallOptions) (domain.ResolvedVersion, error) {
	spec, err := domain.ParseSpecifier(raw)
	if err != nil {
		return domain.ResolvedVersion{}, err
	}

	var resolved domain.ResolvedVersion
	if spec.Pinned() {
		resolved, err = p.deps.Resolver.ResolveExact(ctx, spec.Mod, spec.VersionID)
	} else {
		platform, loader := p.constraints(opts.ForcedPlatformVersion)
		resolved, err = p.deps.Resolver.ResolveLatest(ctx, spec.Mod, platform, loader)
	}
	if err != nil {
		return domain.ResolvedVersion{}, err
	}

	p.mu.Lock()
	p.manifest.Set(resolved.Slug, resolved.VersionID)
	p.mu.Unlock()
	p.deps.Logger.Info("pinned", "mod", resolved.Slug, "version", resolved.VersionID)

	if opts.Download {
		if err := p.DownloadIfAbsent(ctx, resolved.Slug, resolved.VersionID); err != nil {
			return resolved, err
		}
	}
	return resolved, nil
}

// DownloadIfAbsent makes sure the file of versionID is present in the
// installation directory and tracked by the index. A file that is already
// present is never fetched again.
func (p *Pack) DownloadIfAbsent(ctx context.Context, slug, versionID string) (err error) {
	vertex := p.deps.Telemetry.Record(slug + "@" + versionID)
	defer func() { vertex.Complete(err) }()

	meta, err := p.deps.Catalog.GetVersion(ctx, versionID)
	if err != nil {
		return err
	}

	file, ok := meta.PrimaryFile()
	if !ok {
		noFiles := zerr.With(domain.Tagged(domain.ErrVersionNotFound), "version_id", versionID)
		return zerr.With(noFiles, "reason", "version has no files")
	}
	if !domain.IsBaseName(file.Filename) {
		unsafe := zerr.With(domain.Tagged(domain.ErrCatalogParseFailed), "filename", file.Filename)
		return zerr.With(unsafe, "reason", "file name is not a plain base name")
	}

	idx, err := p.openIndex()
	if err != nil {
		return err
	}

	entry := domain.InstalledEntry{
		Slug:      slug,
		PackageID: meta.PackageID,
		VersionID: versionID,
		Filename:  file.Filename,
	}
	dest := filepath.Join(p.installDir, file.Filename)

	present, err := p.deps.Probe.Exists(dest)
	if err != nil {
		return err
	}
	if present {
		if p.tracks(idx, entry) {
			vertex.Cached()
			return nil
		}
		same, err := p.holds(dest, file)
		if err != nil {
			return err
		}
		if same {
			p.deps.Logger.Info("adopting file already in place", "mod", slug, "file", file.Filename)
			return p.record(idx, entry, dest)
		}
		p.deps.Logger.Info("replacing file of another version", "mod", slug, "file", file.Filename)
	}

	hash, ok := file.CacheKeyHash()
	if !ok {
		noHash := zerr.With(domain.Tagged(domain.ErrInvalidCacheKey), "version_id", versionID)
		return zerr.With(noHash, "reason", "file carries no hash")
	}

	target := domain.DownloadTarget{
		PackageID:   cmp.Or(meta.PackageID, slug),
		VersionID:   versionID,
		ContentHash: hash,
		SourceURL:   file.URL,
	}
	hit, err := p.deps.Cache.Materialize(ctx, target, dest)
	if err != nil {
		return err
	}
	if hit {
		vertex.Cached()
	}

	return p.record(idx, entry, dest)
}

// UpdateOne moves the pin of one mod to its newest compatible version.
// Nothing is downloaded. When the pin is already the newest the manifest is not touched.
func (p *Pack) UpdateOne(ctx context.Context, slugOrID, forcedPlatformVersion string) (UpdateResult, error) {
	platform, loader := p.constraints(forcedPlatformVersion)
	resolved, err := p.deps.Resolver.ResolveLatest(ctx, slugOrID, platform, loader)
	if err != nil {
		return UpdateResult{Slug: slugOrID}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := resolved.Slug
	current, ok := p.manifest.Get(key)
	if !ok {
		key = slugOrID
		current, ok = p.manifest.Get(key)
	}
	if !ok {
		return UpdateResult{Slug: slugOrID}, zerr.With(domain.Tagged(domain.ErrModNotInManifest), "mod", slugOrID)
	}

	result := UpdateResult{Slug: key, From: current, To: resolved.VersionID}
	if result.Changed() {
		p.manifest.Set(key, resolved.VersionID)
		p.deps.Logger.Info("updated", "mod", key, "from", current, "to", resolved.VersionID)
	}
	return result, nil
}

// UpdateAll runs UpdateOne for every entry in declared order. A failing entry
// does not stop the others; the failures are joined and tagged with their slug.
func (p *Pack) UpdateAll(ctx context.Context, forcedPlatformVersion string) ([]UpdateResult, error) {
	p.mu.Lock()
	entries := p.manifest.Entries()
	p.mu.Unlock()

	results := make([]UpdateResult, 0, len(entries))
	var errs []error
	for _, e := range entries {
		r, err := p.UpdateOne(ctx, e.Slug, forcedPlatformVersion)
		if err != nil {
			errs = append(errs, tagged(err, e.Slug))
			continue
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// Sync makes the installation directory match the manifest.
// The index is cleaned, every entry is materialized, then the index is cleaned
// again. With prune, files of entries the manifest dropped are deleted.
func (p *Pack) Sync(ctx context.Context, prune bool) error {
	p.mu.Lock()
	idx, err := p.deps.Index.Load(p.installDir, p.manifest.Pairs(), prune)
	if err == nil {
		p.index = idx
	}
	entries := p.manifest.Entries()
	p.mu.Unlock()
	if err != nil {
		return err
	}

	errs := make([]error, len(entries)+1)
	var g errgroup.Group
	g.SetLimit(p.jobs)
	for i, e := range entries {
		g.Go(func() error {
			if err := p.DownloadIfAbsent(ctx, e.Slug, e.VersionID); err != nil {
				errs[i] = tagged(err, e.Slug)
			}
			return nil
		})
	}
	_ = g.Wait()

	p.mu.Lock()
	errs[len(entries)] = idx.Cleanup(p.manifest.Pairs(), prune)
	p.mu.Unlock()

	return errors.Join(errs...)
}

// Remove drops slug from the manifest. Its file stays on disk until a pruning sync.
func (p *Pack) Remove(slug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.manifest.Remove(slug) {
		return zerr.With(domain.Tagged(domain.ErrModNotInManifest), "mod", slug)
	}
	p.deps.Logger.Info("removed from manifest", "mod", slug)
	return nil
}

func (p *Pack) constraints(forcedPlatformVersion string) (platform, loader string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return cmp.Or(forcedPlatformVersion, p.manifest.Details.PlatformVersion), p.manifest.Details.Loader
}

// openIndex loads the index on first use without pruning anything.
func (p *Pack) openIndex() (ports.InstalledIndex, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index != nil {
		return p.index, nil
	}
	idx, err := p.deps.Index.Load(p.installDir, p.manifest.Pairs(), false)
	if err != nil {
		return nil, err
	}
	p.index = idx
	return idx, nil
}

// holds reports whether the untracked file at path is the content the catalog
// advertises for file. Without a checkable digest the file name decides.
func (p *Pack) holds(path string, file domain.FileDescriptor) (bool, error) {
	want, ok := fileDigest(file)
	if !ok {
		return true, nil
	}
	return p.deps.Probe.Matches(path, want)
}

func (p *Pack) tracks(idx ports.InstalledIndex, want domain.InstalledEntry) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range idx.Entries() {
		if e.Filename == want.Filename && e.Matches(want.Pair()) {
			return true
		}
	}
	return false
}

func (p *Pack) record(idx ports.InstalledIndex, entry domain.InstalledEntry, path string) error {
	sum, err := p.deps.Hasher.ComputeFileHash(path)
	if err != nil {
		p.deps.Logger.Warn("failed to checksum installed file", "file", path, "error", err)
	}
	entry.Checksum = sum

	p.mu.Lock()
	defer p.mu.Unlock()
	return idx.Add(entry)
}

// tagged prefixes err with the slug it belongs to.
func tagged(err error, slug string) error {
	return zerr.With(zerr.Wrap(err, slug), "mod", slug)
}
