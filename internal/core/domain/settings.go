package domain

import "time"

// API flavors select the catalog route layout.
const (
	APIFlavorModrinth = "modrinth"
	APIFlavorGeneric  = "generic"
)

const (
	// DefaultAPIURL is the Modrinth v2 API.
	DefaultAPIURL = "https://api.modrinth.com/v2"

	// DefaultAPITimeout bounds every catalog and download request.
	DefaultAPITimeout = 30 * time.Second

	// DefaultUserAgent identifies the tool to the catalog.
	DefaultUserAgent = "go.trai.ch/modpack"
)

// Settings holds the tool configuration resolved from modpack.yaml, the environment and defaults.
type Settings struct {
	APIURL       string
	APIFlavor    string
	APITimeout   time.Duration
	UserAgent    string
	CacheDir     string
	ModsDir      string
	ManifestFile string
	Jobs         int
	LogLevel     LogLevel
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{
		APIURL:       DefaultAPIURL,
		APIFlavor:    APIFlavorModrinth,
		APITimeout:   DefaultAPITimeout,
		UserAgent:    DefaultUserAgent,
		CacheDir:     DefaultCachePath(),
		ModsDir:      ModsDirName,
		ManifestFile: ManifestFileName,
		Jobs:         1,
		LogLevel:     LogLevelInfo,
	}
}
