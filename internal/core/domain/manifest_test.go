package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modpack/internal/core/domain"
)

func TestManifest_SetKeepsDeclaredOrder(t *testing.T) {
	m := domain.NewManifest("1.20.1", "fabric")

	assert.True(t, m.Set("sodium", "v1"))
	assert.True(t, m.Set("lithium", "v2"))
	assert.True(t, m.Set("sodium", "v3"))

	assert.Equal(t, []domain.ManifestEntry{
		{Slug: "sodium", VersionID: "v3"},
		{Slug: "lithium", VersionID: "v2"},
	}, m.Entries())
	assert.True(t, m.Dirty())
}

func TestManifest_SetSameVersionIsNotAWrite(t *testing.T) {
	m := domain.NewManifestFromEntries(domain.Details{PlatformVersion: "1.20.1", Loader: "fabric"},
		[]domain.ManifestEntry{{Slug: "foo", VersionID: "b"}})
	assert.False(t, m.Dirty())

	assert.False(t, m.Set("foo", "b"))
	assert.False(t, m.Dirty())
}

func TestManifest_Remove(t *testing.T) {
	m := domain.NewManifestFromEntries(domain.Details{}, []domain.ManifestEntry{
		{Slug: "a", VersionID: "1"},
		{Slug: "b", VersionID: "2"},
		{Slug: "c", VersionID: "3"},
	})

	assert.False(t, m.Remove("missing"))
	assert.False(t, m.Dirty())

	assert.True(t, m.Remove("b"))
	assert.True(t, m.Dirty())
	assert.Equal(t, []domain.VersionPair{
		{Slug: "a", VersionID: "1"},
		{Slug: "c", VersionID: "3"},
	}, m.Pairs())

	_, ok := m.Get("b")
	assert.False(t, ok)

	m.MarkClean()
	assert.False(t, m.Dirty())
}

func TestNewManifestFromEntries_DuplicateSlugOverridesInPlace(t *testing.T) {
	m := domain.NewManifestFromEntries(domain.Details{}, []domain.ManifestEntry{
		{Slug: "a", VersionID: "1"},
		{Slug: "b", VersionID: "2"},
		{Slug: "a", VersionID: "9"},
	})

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "9", v)
	assert.Equal(t, "a", m.Entries()[0].Slug)
}
