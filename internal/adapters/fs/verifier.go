package fs

import (
	_ "crypto/sha256" // digest.SHA256
	_ "crypto/sha512" // digest.SHA512
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier checks the presence and content of files on disk.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether a file is present at path.
// A missing file is not an error; any other stat failure is.
func (v *Verifier) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
	}
	return true, nil
}

// Missing returns the names, relative to root, that have no file on disk.
func (v *Verifier) Missing(root string, names []string) ([]string, error) {
	var missing []string
	for _, name := range names {
		ok, err := v.Exists(filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// Matches reports whether the content of the file at path has the digest want.
func (v *Verifier) Matches(path string, want digest.Digest) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	got, err := want.Algorithm().FromReader(f)
	if err != nil {
		return false, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
	}
	return got == want, nil
}
