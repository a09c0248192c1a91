package resolver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports/mocks"
	"go.trai.ch/modpack/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

var jar = []domain.FileDescriptor{{Filename: "mod.jar", URL: "https://cdn.test/mod.jar"}}

func version(id string, ts int64, platforms, loaders []string) domain.VersionMetadata {
	return domain.VersionMetadata{
		ID:               id,
		PackageID:        "pkg",
		Published:        time.Unix(ts, 0),
		PlatformVersions: platforms,
		Loaders:          loaders,
		Files:            jar,
	}
}

func expectPackage(c *mocks.MockCatalog, versions ...string) {
	c.EXPECT().GetPackage(gomock.Any(), "pkg").
		Return(&domain.PackageMetadata{ID: "pkg", Slug: "thing", Versions: versions}, nil)
}

func TestResolveLatest_NewestWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c, "a", "b")
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return([]domain.VersionMetadata{
		version("a", 100, []string{"1.20"}, []string{"x"}),
		version("b", 200, []string{"1.20"}, []string{"x"}),
	}, nil)

	got, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "x")

	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedVersion{PackageID: "pkg", Slug: "thing", VersionID: "b"}, got)
}

func TestResolveLatest_LoaderFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c, "a", "b")
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return([]domain.VersionMetadata{
		version("a", 100, []string{"1.20"}, []string{"x"}),
		version("b", 200, []string{"1.20"}, []string{"x"}),
	}, nil)

	_, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "y")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestResolveLatest_PlatformFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c)
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return([]domain.VersionMetadata{
		version("old", 100, []string{"1.19"}, []string{"x"}),
		version("new", 300, []string{"1.21"}, []string{"x"}),
		version("mid", 200, []string{"1.19", "1.20"}, []string{"x", "y"}),
	}, nil)

	got, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "y")

	require.NoError(t, err)
	assert.Equal(t, "mid", got.VersionID)
}

func TestResolveLatest_TieKeepsCatalogOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c)
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return([]domain.VersionMetadata{
		version("older", 50, []string{"1.20"}, []string{"x"}),
		version("first", 100, []string{"1.20"}, []string{"x"}),
		version("second", 100, []string{"1.20"}, []string{"x"}),
	}, nil)

	got, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "x")

	require.NoError(t, err)
	assert.Equal(t, "first", got.VersionID)
}

func TestResolveLatest_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c)
	empty := version("b", 200, []string{"1.20"}, []string{"x"})
	empty.Files = nil
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return([]domain.VersionMetadata{
		version("a", 100, []string{"1.20"}, []string{"x"}),
		empty,
	}, nil)

	_, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestResolveLatest_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c)
	c.EXPECT().GetVersions(gomock.Any(), "pkg").Return(nil, nil)

	_, err := resolver.New(c).ResolveLatest(context.Background(), "pkg", "1.20", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestResolveLatest_PackageNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	c.EXPECT().GetPackage(gomock.Any(), "ghost").Return(nil, domain.ErrNotFound)

	_, err := resolver.New(c).ResolveLatest(context.Background(), "ghost", "1.20", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveExact(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	expectPackage(c, "a", "b")
	expectPackage(c, "a", "b")

	r := resolver.New(c)

	got, err := r.ResolveExact(context.Background(), "pkg", "a")
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedVersion{PackageID: "pkg", Slug: "thing", VersionID: "a"}, got)

	_, err = r.ResolveExact(context.Background(), "pkg", "zzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestResolveExact_FallsBackToRequestedSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mocks.NewMockCatalog(ctrl)
	c.EXPECT().GetPackage(gomock.Any(), "P7dR8mSH").
		Return(&domain.PackageMetadata{ID: "P7dR8mSH", Versions: []string{"v1"}}, nil)

	got, err := resolver.New(c).ResolveExact(context.Background(), "P7dR8mSH", "v1")

	require.NoError(t, err)
	assert.Equal(t, "P7dR8mSH", got.Slug)
}
