package pack_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/engine/pack"
)

func TestPack_Status_ReportsDrift(t *testing.T) {
	h := newHarness(t)
	h.serve("sodium", "v1")
	h.serve("lithium", "v2")
	h.serve("iris", "v3")
	dir := h.installDir("a")
	m := newManifest(
		domain.ManifestEntry{Slug: "sodium", VersionID: "v1"},
		domain.ManifestEntry{Slug: "lithium", VersionID: "v2"},
		domain.ManifestEntry{Slug: "iris", VersionID: "v3"},
	)
	p := pack.New(m, dir, h.deps)
	require.NoError(t, p.Sync(context.Background(), false))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sodium-v1.jar"), []byte("patched"), 0o600))
	require.NoError(t, os.Remove(filepath.Join(dir, "lithium-v2.jar")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manual.jar"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".extra-v9.jar-42.tmp"), []byte("partial"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o750))
	require.NoError(t, p.Remove("iris"))
	m.Set("extra", "v9")

	report, err := p.Status()

	require.NoError(t, err)
	assert.False(t, report.Consistent())
	states := make(map[string]domain.EntryState)
	for _, e := range report.Entries {
		key := e.Slug
		if key == "" {
			key = e.Filename
		}
		states[key] = e.State
	}
	assert.Equal(t, map[string]domain.EntryState{
		"sodium":     domain.StateModified,
		"lithium":    domain.StatePinned,
		"extra":      domain.StatePinned,
		"iris":       domain.StateStale,
		"manual.jar": domain.StateUntracked,
	}, states)
}

func TestPack_Status_DoesNotRewriteIndex(t *testing.T) {
	h := newHarness(t)
	h.serve("sodium", "v1")
	dir := h.installDir("a")
	m := newManifest(domain.ManifestEntry{Slug: "sodium", VersionID: "v1"})
	p := pack.New(m, dir, h.deps)
	require.NoError(t, p.Sync(context.Background(), false))
	require.NoError(t, p.Remove("sodium"))

	before, err := os.ReadFile(filepath.Join(dir, domain.IndexFileName))
	require.NoError(t, err)

	_, err = p.Status()
	require.NoError(t, err)

	after, err := os.ReadFile(filepath.Join(dir, domain.IndexFileName))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestPack_Status_EmptyDirectory(t *testing.T) {
	h := newHarness(t)
	p := pack.New(newManifest(), h.installDir("none"), h.deps)

	report, err := p.Status()

	require.NoError(t, err)
	assert.Empty(t, report.Entries)
	assert.True(t, report.Consistent())
}
