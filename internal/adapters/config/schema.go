package config

// SettingsFile represents the structure of the modpack.yaml settings file.
// Every field is optional; absent fields keep their defaults.
type SettingsFile struct {
	API      APIDTO `yaml:"api"`
	CacheDir string `yaml:"cache_dir"`
	ModsDir  string `yaml:"mods_dir"`
	Manifest string `yaml:"manifest"`
	Jobs     *int   `yaml:"jobs"`
	LogLevel string `yaml:"log_level"`
}

// APIDTO configures the catalog client.
type APIDTO struct {
	URL       string `yaml:"url"`
	Flavor    string `yaml:"flavor"`
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}
