package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/adapters/catalog"
	"go.trai.ch/modpack/internal/core/domain"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

const versionJSON = `{
	"id": "v2",
	"project_id": "AANobbMI",
	"name": "Sodium 0.5",
	"version_number": "0.5.0",
	"date_published": "2023-06-01T12:00:00Z",
	"game_versions": ["1.20.1"],
	"loaders": ["fabric"],
	"unknown_field": {"ignored": true},
	"files": [
		{"filename": "sodium-0.5.jar", "url": "https://cdn.example/sodium-0.5.jar", "hashes": {"sha1": "abc", "sha512": "def"}, "primary": true},
		{"filename": "sodium-0.5-sources.jar", "url": "https://cdn.example/src.jar", "hashes": {"sha1": "123"}}
	]
}`

func newServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ModrinthRoutes(t *testing.T) {
	srv := newServer(t, map[string]string{
		"/project/sodium":           `{"id":"AANobbMI","slug":"sodium","title":"Sodium","versions":["v1","v2"]}`,
		"/project/AANobbMI/version": "[" + versionJSON + "]",
		"/version/v2":               versionJSON,
	})

	client, err := catalog.NewClientWithHTTP(srv.URL, domain.APIFlavorModrinth, "test-agent", srv.Client())
	require.NoError(t, err)
	ctx := context.Background()

	pkg, err := client.GetPackage(ctx, "sodium")
	require.NoError(t, err)
	assert.Equal(t, "AANobbMI", pkg.ID)
	assert.Equal(t, "sodium", pkg.Slug)
	assert.Equal(t, []string{"v1", "v2"}, pkg.Versions)

	versions, err := client.GetVersions(ctx, "AANobbMI")
	require.NoError(t, err)
	require.Len(t, versions, 1)

	v, err := client.GetVersion(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, "AANobbMI", v.PackageID)
	assert.Equal(t, time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC), v.Published.UTC())
	assert.Equal(t, []string{"1.20.1"}, v.PlatformVersions)
	assert.Equal(t, []string{"fabric"}, v.Loaders)
	require.Len(t, v.Files, 2)
	assert.Equal(t, "sodium-0.5.jar", v.Files[0].Filename)
	assert.True(t, v.Files[0].Primary)
	assert.Equal(t, "abc", v.Files[0].Hashes["sha1"])
}

func TestClient_GenericRoutes(t *testing.T) {
	legacy := `{"id":"a","mod_id":"pkg","date_published":"3/14/21 09:05 PM","game_versions":["1.16"],"loaders":["forge"],"files":[]}`
	srv := newServer(t, map[string]string{
		"/package/pkg":          `{"id":"pkg","slug":"thing","versions":["a"]}`,
		"/package/pkg/versions": "[" + legacy + "]",
	})

	client, err := catalog.NewClientWithHTTP(srv.URL+"/", domain.APIFlavorGeneric, "", srv.Client())
	require.NoError(t, err)

	pkg, err := client.GetPackage(context.Background(), "pkg")
	require.NoError(t, err)
	assert.Equal(t, "thing", pkg.Slug)

	versions, err := client.GetVersions(context.Background(), "pkg")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "pkg", versions[0].PackageID, "mod_id is accepted when project_id is absent")
	assert.Equal(t, time.Date(2021, 3, 14, 21, 5, 0, 0, time.UTC), versions[0].Published)
	assert.Empty(t, versions[0].Files)
}

func TestClient_EmptyVersionList(t *testing.T) {
	srv := newServer(t, map[string]string{"/project/x/version": "[]"})
	client, err := catalog.NewClientWithHTTP(srv.URL, domain.APIFlavorModrinth, "", srv.Client())
	require.NoError(t, err)

	versions, err := client.GetVersions(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestClient_Errors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		srv := newServer(t, nil)
		client, err := catalog.NewClientWithHTTP(srv.URL, domain.APIFlavorModrinth, "", srv.Client())
		require.NoError(t, err)

		_, err = client.GetPackage(context.Background(), "unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = client.GetVersion(context.Background(), "unknown")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("APIError", func(t *testing.T) {
		client, err := catalog.NewClientWithHTTP("https://catalog.test", domain.APIFlavorModrinth, "",
			newMockClient(func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusInternalServerError,
					Body:       io.NopCloser(bytes.NewBufferString("Internal Server Error")),
				}, nil
			}))
		require.NoError(t, err)

		_, err = client.GetPackage(context.Background(), "sodium")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogRequestFailed)
	})

	t.Run("TransportError", func(t *testing.T) {
		client, err := catalog.NewClientWithHTTP("https://catalog.test", domain.APIFlavorModrinth, "",
			newMockClient(func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}))
		require.NoError(t, err)

		_, err = client.GetVersions(context.Background(), "sodium")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogRequestFailed)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		srv := newServer(t, map[string]string{"/version/v1": "{not json"})
		client, err := catalog.NewClientWithHTTP(srv.URL, domain.APIFlavorModrinth, "", srv.Client())
		require.NoError(t, err)

		_, err = client.GetVersion(context.Background(), "v1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogParseFailed)
	})

	t.Run("BadTimestamp", func(t *testing.T) {
		srv := newServer(t, map[string]string{"/version/v1": `{"id":"v1","date_published":"yesterday"}`})
		client, err := catalog.NewClientWithHTTP(srv.URL, domain.APIFlavorModrinth, "", srv.Client())
		require.NoError(t, err)

		_, err = client.GetVersion(context.Background(), "v1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogParseFailed)
	})

	t.Run("OversizedBody", func(t *testing.T) {
		huge := `"` + strings.Repeat("a", 11<<20) + `"`
		client, err := catalog.NewClientWithHTTP("https://catalog.test", domain.APIFlavorModrinth, "",
			newMockClient(func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(huge)),
				}, nil
			}))
		require.NoError(t, err)

		_, err = client.GetPackage(context.Background(), "big")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrCatalogParseFailed)
	})
}

func TestClient_SendsHeaders(t *testing.T) {
	var gotUA, gotPath string
	client, err := catalog.NewClientWithHTTP("https://catalog.test/v2", domain.APIFlavorModrinth, "modpack-test/1.0",
		newMockClient(func(req *http.Request) (*http.Response, error) {
			gotUA = req.Header.Get("User-Agent")
			gotPath = req.URL.EscapedPath()
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"id":"x"}`)),
			}, nil
		}))
	require.NoError(t, err)

	_, err = client.GetPackage(context.Background(), "a b")
	require.NoError(t, err)

	assert.Equal(t, "modpack-test/1.0", gotUA)
	assert.Equal(t, "/v2/project/a%20b", gotPath)
}

func TestNewClientWithHTTP_InvalidSettings(t *testing.T) {
	_, err := catalog.NewClientWithHTTP("https://catalog.test", "maven", "", http.DefaultClient)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	_, err = catalog.NewClientWithHTTP("not a url", domain.APIFlavorModrinth, "", http.DefaultClient)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestNewClient_FromSettings(t *testing.T) {
	settings := domain.DefaultSettings()

	client, err := catalog.NewClient(&settings)

	require.NoError(t, err)
	assert.NotNil(t, client)
}
