package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/adapters/fs"
	"go.trai.ch/modpack/internal/core/domain"
)

func TestVerifier_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.jar"), []byte("content"), 0o600))

	ok, err := verifier.Exists(filepath.Join(tmpDir, "a.jar"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Exists(filepath.Join(tmpDir, "b.jar"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifier_Missing(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out1.jar"), []byte("content"), 0o600))

	missing, err := verifier.Missing(tmpDir, []string{"out1.jar", "missing.jar"})
	require.NoError(t, err)
	assert.Equal(t, []string{"missing.jar"}, missing)
}

func TestVerifier_Matches(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()
	path := filepath.Join(tmpDir, "a.jar")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	ok, err := verifier.Matches(path, digest.SHA512.FromString("content"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verifier.Matches(path, digest.SHA256.FromString("other content"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = verifier.Matches(filepath.Join(tmpDir, "b.jar"), digest.SHA512.FromString("content"))
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}
