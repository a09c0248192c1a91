// Package app implements the application layer for modpack.
package app

import (
	"context"
	"errors"

	"go.trai.ch/modpack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/modpack/internal/engine/pack"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings  *domain.Settings
	manifests ports.ManifestStore
	packs     *pack.Factory
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	manifests ports.ManifestStore,
	packs *pack.Factory,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		settings:  settings,
		manifests: manifests,
		packs:     packs,
		logger:    log,
		telemetry: telemetry,
	}
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	PlatformVersion string
	Loader          string
}

// AddOptions configuration for the Add method.
type AddOptions struct {
	PlatformVersion string
	Sync            bool
}

// RemoveOptions configuration for the Remove method.
type RemoveOptions struct {
	Sync     bool
	NoDelete bool
}

// SyncOptions configuration for the Sync method.
type SyncOptions struct {
	NoDelete bool
	// Jobs overrides the configured parallelism when positive.
	Jobs int
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	PlatformVersion string
}

// Init creates an empty manifest. An existing manifest is never overwritten.
func (a *App) Init(opts InitOptions) error {
	path := a.settings.ManifestFile
	if a.manifests.Exists(path) {
		return zerr.With(domain.Tagged(domain.ErrManifestExists), "path", path)
	}

	m := domain.NewManifest(opts.PlatformVersion, opts.Loader)
	if err := a.manifests.Save(path, m); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	a.logger.Info("created manifest", "path", path, "loader", opts.Loader, "game_version", opts.PlatformVersion)
	return nil
}

// Add pins every specifier in the manifest. A failing specifier does not stop
// the others; whatever was pinned is saved.
func (a *App) Add(ctx context.Context, specifiers []string, opts AddOptions) error {
	p, err := a.open(0)
	if err != nil {
		return err
	}

	var errs []error
	for _, raw := range specifiers {
		_, err := p.Install(ctx, raw, pack.InstallOptions{ForcedPlatformVersion: opts.PlatformVersion})
		if err != nil {
			errs = append(errs, zerr.With(zerr.Wrap(err, raw), "specifier", raw))
		}
	}

	if err := a.save(p); err != nil {
		errs = append(errs, err)
	}
	if opts.Sync {
		errs = append(errs, a.sync(ctx, p, true))
	}
	return errors.Join(errs...)
}

// Remove drops mods from the manifest and optionally syncs right away.
func (a *App) Remove(ctx context.Context, slugs []string, opts RemoveOptions) error {
	p, err := a.open(0)
	if err != nil {
		return err
	}

	var errs []error
	for _, slug := range slugs {
		if err := p.Remove(slug); err != nil {
			errs = append(errs, err)
		}
	}

	if err := a.save(p); err != nil {
		errs = append(errs, err)
	}
	if opts.Sync {
		errs = append(errs, a.sync(ctx, p, !opts.NoDelete))
	}
	return errors.Join(errs...)
}

// Sync makes the mods directory match the manifest.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	p, err := a.open(opts.Jobs)
	if err != nil {
		return err
	}
	return a.sync(ctx, p, !opts.NoDelete)
}

// Update moves pins to their newest compatible versions. With no slugs every
// entry is updated. Nothing is downloaded.
func (a *App) Update(ctx context.Context, slugs []string, opts UpdateOptions) ([]pack.UpdateResult, error) {
	p, err := a.open(0)
	if err != nil {
		return nil, err
	}

	var (
		results []pack.UpdateResult
		errs    []error
	)
	if len(slugs) == 0 {
		results, err = p.UpdateAll(ctx, opts.PlatformVersion)
		errs = append(errs, err)
	} else {
		for _, slug := range slugs {
			r, err := p.UpdateOne(ctx, slug, opts.PlatformVersion)
			if err != nil {
				errs = append(errs, zerr.With(zerr.Wrap(err, slug), "mod", slug))
				continue
			}
			results = append(results, r)
		}
	}

	if err := a.save(p); err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

// Status reports how the manifest, the index and the mods directory agree.
func (a *App) Status(_ context.Context) (domain.StatusReport, error) {
	p, err := a.open(0)
	if err != nil {
		return domain.StatusReport{}, err
	}
	return p.Status()
}

func (a *App) open(jobs int) (*pack.Pack, error) {
	m, err := a.manifests.Load(a.settings.ManifestFile)
	if err != nil {
		return nil, err
	}
	if jobs < 1 {
		jobs = a.settings.Jobs
	}
	return a.packs.Open(m, a.settings.ModsDir, pack.WithJobs(jobs)), nil
}

func (a *App) save(p *pack.Pack) error {
	m := p.Manifest()
	if !m.Dirty() {
		return nil
	}
	if err := a.manifests.Save(a.settings.ManifestFile, m); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

func (a *App) sync(ctx context.Context, p *pack.Pack, prune bool) error {
	err := p.Sync(ctx, prune)
	if s, ok := a.telemetry.(interface{ Summary() progrock.Summary }); ok {
		summary := s.Summary()
		a.logger.Info("sync finished",
			"mods", p.Manifest().Len(),
			"cached", summary.Cached,
			"failed", summary.Failed,
		)
	}
	return err
}
