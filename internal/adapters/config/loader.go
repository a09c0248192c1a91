// Package config provides the settings loader for modpack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*FileSettingsLoader)(nil)

// FileSettingsLoader implements ports.SettingsLoader using an optional YAML file.
type FileSettingsLoader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a loader reading domain.SettingsFileName.
func NewLoader(log ports.Logger) *FileSettingsLoader {
	return &FileSettingsLoader{Filename: domain.SettingsFileName, Logger: log}
}

// Load reads the settings from the given working directory.
// A missing file yields the defaults. Environment overrides are applied last.
func (l *FileSettingsLoader) Load(cwd string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(cwd, l.Filename)
	file, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := l.apply(&settings, file, cwd); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	applyEnv(&settings)
	return &settings, nil
}

// readFile parses the settings file at path. It returns nil when the file does not exist.
func readFile(path string) (*SettingsFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(domain.WrapKind(domain.ErrSettingsParseFailed, err), "path", path)
	}
	return &file, nil
}

func (l *FileSettingsLoader) apply(s *domain.Settings, file *SettingsFile, cwd string) error {
	if file.API.URL != "" {
		s.APIURL = file.API.URL
	}
	if file.API.Flavor != "" {
		flavor := strings.ToLower(file.API.Flavor)
		if flavor != domain.APIFlavorModrinth && flavor != domain.APIFlavorGeneric {
			return zerr.With(domain.Tagged(domain.ErrInvalidSettings), "api.flavor", file.API.Flavor)
		}
		s.APIFlavor = flavor
	}
	if file.API.Timeout != "" {
		timeout, err := time.ParseDuration(file.API.Timeout)
		if err != nil || timeout <= 0 {
			return zerr.With(domain.Tagged(domain.ErrInvalidSettings), "api.timeout", file.API.Timeout)
		}
		s.APITimeout = timeout
	}
	if file.API.UserAgent != "" {
		s.UserAgent = file.API.UserAgent
	}
	if file.CacheDir != "" {
		s.CacheDir = resolvePath(cwd, file.CacheDir)
	}
	if file.ModsDir != "" {
		s.ModsDir = file.ModsDir
	}
	if file.Manifest != "" {
		s.ManifestFile = file.Manifest
	}
	if file.Jobs != nil {
		if *file.Jobs < 1 {
			return zerr.With(domain.Tagged(domain.ErrInvalidSettings), "jobs", *file.Jobs)
		}
		s.Jobs = *file.Jobs
	}
	if file.LogLevel != "" {
		level, ok := domain.ParseLogLevel(file.LogLevel)
		if !ok && l.Logger != nil {
			l.Logger.Warn("unknown log level, using info", "log_level", file.LogLevel)
		}
		s.LogLevel = level
	}
	return nil
}

func applyEnv(s *domain.Settings) {
	if dir := os.Getenv(domain.CacheDirEnv); dir != "" {
		s.CacheDir = dir
	}
	if u := os.Getenv(domain.APIURLEnv); u != "" {
		s.APIURL = u
	}
}

// resolvePath expands a leading ~ and anchors relative paths at cwd.
func resolvePath(cwd, p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}
