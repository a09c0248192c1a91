// Package cache implements the content-addressed download cache shared by every project of a user.
package cache

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.trai.ch/modpack/internal/adapters/fs"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentCache = (*Store)(nil)

// Store implements ports.ContentCache under a root directory. Entries are
// written once and trusted afterwards; nothing is ever evicted.
type Store struct {
	root       string
	httpClient *http.Client
	userAgent  string
	logger     ports.Logger
}

// NewStore creates a Store rooted at root, creating the directory if needed.
func NewStore(root string, client *http.Client, userAgent string, logger ports.Logger) (*Store, error) {
	cleanRoot := filepath.Clean(root)
	if err := os.MkdirAll(cleanRoot, domain.DirPerm); err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", cleanRoot)
	}
	return &Store{
		root:       cleanRoot,
		httpClient: client,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// Path returns the cache file addressed by target.
func (s *Store) Path(target domain.DownloadTarget) (string, error) {
	for key, part := range map[string]string{
		"package_id":   target.PackageID,
		"version_id":   target.VersionID,
		"content_hash": target.ContentHash,
	} {
		if !domain.IsBaseName(part) {
			return "", zerr.With(zerr.With(domain.Tagged(domain.ErrInvalidCacheKey), "field", key), "value", part)
		}
	}
	return filepath.Join(s.root, target.PackageID, target.VersionID, target.ContentHash+domain.CacheFileSuffix), nil
}

// Materialize places the artifact addressed by target at destination,
// downloading it into the cache first on a miss.
func (s *Store) Materialize(ctx context.Context, target domain.DownloadTarget, destination string) (bool, error) {
	path, err := s.Path(target)
	if err != nil {
		return false, err
	}

	hit := true
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			return false, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
		}
		hit = false
		if err := s.download(ctx, target, path); err != nil {
			return false, err
		}
	} else {
		s.logger.Info("cache hit", "target", target.String())
	}

	if err := fs.CopyFileAtomic(path, destination); err != nil {
		return hit, err
	}
	return hit, nil
}

// download streams target's source URL into path through a temporary file.
func (s *Store) download(ctx context.Context, target domain.DownloadTarget, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.SourceURL, http.NoBody)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "url", target.SourceURL)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, err), "url", target.SourceURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		dlErr := zerr.With(domain.Tagged(domain.ErrDownloadFailed), "status_code", resp.StatusCode)
		dlErr = zerr.With(dlErr, "status", resp.Status)
		return zerr.With(dlErr, "url", target.SourceURL)
	}

	var written int64
	err = fs.WriteFileAtomic(path, func(w io.Writer) error {
		n, copyErr := io.Copy(w, resp.Body)
		written = n
		if copyErr != nil {
			return zerr.With(domain.WrapKind(domain.ErrDownloadFailed, copyErr), "url", target.SourceURL)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("downloaded", "target", target.String(), "size", humanize.IBytes(uint64(written))) //nolint:gosec // io.Copy never returns a negative count
	return nil
}
