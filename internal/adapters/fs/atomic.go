package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// WriteFileAtomic writes a file by streaming into a temporary file in the same
// directory and renaming it into place once write succeeds. Readers never observe
// a partially written file.
func WriteFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return ioFailure(err, dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return ioFailure(err, dir)
	}
	tmpName := tmpFile.Name()

	// The temp file only survives a failed write.
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := write(tmpFile); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return ioFailure(err, tmpName)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return ioFailure(err, tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return ioFailure(err, path)
	}
	return nil
}

// WriteBytesAtomic is WriteFileAtomic for an in-memory payload.
func WriteBytesAtomic(path string, data []byte) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		if _, err := w.Write(data); err != nil {
			return ioFailure(err, path)
		}
		return nil
	})
}

// CopyFileAtomic copies src to dst through WriteFileAtomic.
func CopyFileAtomic(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return ioFailure(err, src)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	return WriteFileAtomic(dst, func(w io.Writer) error {
		if _, err := io.Copy(w, in); err != nil {
			return ioFailure(err, dst)
		}
		return nil
	})
}

func ioFailure(err error, path string) error {
	return zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
}
