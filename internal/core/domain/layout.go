package domain

import (
	"os"
	"path/filepath"
)

const (
	// ManifestFileName is the default name of the manifest file.
	ManifestFileName = "modrinth-mods.toml"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "modpack.yaml"

	// ModsDirName is the default installation directory.
	ModsDirName = "mods"

	// IndexFileName is the hidden installed-state index stored inside the installation directory.
	IndexFileName = ".installed-mods"

	// CacheDirName is the name of the user-scoped content cache directory.
	CacheDirName = ".modpack-cache"

	// CacheFileSuffix is appended to the content hash to form a cache file name.
	CacheFileSuffix = ".cache"

	// CacheDirEnv overrides the content cache root.
	CacheDirEnv = "MODPACK_CACHE_DIR"

	// APIURLEnv overrides the catalog base URL.
	APIURLEnv = "MODPACK_API_URL"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default root of the content cache.
// It lives in the user's home directory so that every project shares it.
func DefaultCachePath() string {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), CacheDirName)
	}
	return filepath.Join(home, CacheDirName)
}

// IsBaseName reports whether name is a plain file name with no directory part.
// Only such names are ever resolved inside an installation or cache directory.
func IsBaseName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name &&
		filepath.IsLocal(name)
}
