// Package catalog implements the Catalog port against the remote mod catalog HTTP API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxResponseBytes bounds the size of a single catalog response.
const maxResponseBytes = 10 << 20

var _ ports.Catalog = (*Client)(nil)

// routes holds the path templates of one API flavor. Each contains a single %s.
type routes struct {
	pkg      string
	versions string
	version  string
}

var flavors = map[string]routes{
	domain.APIFlavorModrinth: {
		pkg:      "/project/%s",
		versions: "/project/%s/version",
		version:  "/version/%s",
	},
	domain.APIFlavorGeneric: {
		pkg:      "/package/%s",
		versions: "/package/%s/versions",
		version:  "/version/%s",
	},
}

// Client implements ports.Catalog over HTTP. It performs no caching and no retries.
type Client struct {
	baseURL    string
	routes     routes
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a catalog client from settings.
func NewClient(settings *domain.Settings) (*Client, error) {
	return NewClientWithHTTP(settings.APIURL, settings.APIFlavor, settings.UserAgent, &http.Client{
		Timeout: settings.APITimeout,
	})
}

// NewClientWithHTTP creates a catalog client using the given http client.
func NewClientWithHTTP(baseURL, flavor, userAgent string, client *http.Client) (*Client, error) {
	r, ok := flavors[flavor]
	if !ok {
		return nil, zerr.With(domain.Tagged(domain.ErrInvalidSettings), "api_flavor", flavor)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrInvalidSettings, err), "api_url", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, zerr.With(domain.Tagged(domain.ErrInvalidSettings), "api_url", baseURL)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		routes:     r,
		userAgent:  userAgent,
		httpClient: client,
	}, nil
}

// GetPackage returns the metadata of a package by id or slug.
func (c *Client) GetPackage(ctx context.Context, id string) (*domain.PackageMetadata, error) {
	var dto packageDTO
	if err := c.getJSON(ctx, c.routes.pkg, id, &dto); err != nil {
		return nil, err
	}
	pkg := dto.toDomain()
	return &pkg, nil
}

// GetVersions returns every published version of a package, in catalog order.
func (c *Client) GetVersions(ctx context.Context, packageID string) ([]domain.VersionMetadata, error) {
	var dtos []versionDTO
	if err := c.getJSON(ctx, c.routes.versions, packageID, &dtos); err != nil {
		return nil, err
	}

	versions := make([]domain.VersionMetadata, 0, len(dtos))
	for i := range dtos {
		v, err := dtos[i].toDomain()
		if err != nil {
			return nil, zerr.With(err, "package_id", packageID)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// GetVersion returns a single version by id.
func (c *Client) GetVersion(ctx context.Context, versionID string) (*domain.VersionMetadata, error) {
	var dto versionDTO
	if err := c.getJSON(ctx, c.routes.version, versionID, &dto); err != nil {
		return nil, err
	}
	v, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// getJSON issues a GET for route filled with id and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, route, id string, out any) error {
	if id == "" {
		return zerr.With(domain.Tagged(domain.ErrNotFound), "id", id)
	}
	endpoint := c.baseURL + fmt.Sprintf(route, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCatalogRequestFailed, err), "url", endpoint)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCatalogRequestFailed, err), "url", endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return zerr.With(zerr.With(domain.Tagged(domain.ErrNotFound), "id", id), "url", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := zerr.With(domain.Tagged(domain.ErrCatalogRequestFailed), "status_code", resp.StatusCode)
		return zerr.With(apiErr, "url", endpoint)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCatalogRequestFailed, err), "url", endpoint)
	}
	if len(body) > maxResponseBytes {
		return zerr.With(zerr.With(domain.Tagged(domain.ErrCatalogParseFailed), "url", endpoint), "limit_bytes", maxResponseBytes)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return zerr.With(domain.WrapKind(domain.ErrCatalogParseFailed, err), "url", endpoint)
	}
	return nil
}
