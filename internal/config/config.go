// Package config loads tokenconv settings from ~/.tokenconv/config.yaml and
// the environment. The file is optional; a missing file yields defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/tokenconv/tokenconv/internal/engine/cache"
)

// Environment variables recognized at startup.
const (
	// EnvAPIKey holds the pricing API key.
	EnvAPIKey = "TOKENCONV_API_KEY"

	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "TOKENCONV_LOG_LEVEL"

	// EnvAPIURL overrides the pricing API endpoint.
	EnvAPIURL = "TOKENCONV_API_URL"
)

// SchemaVersion is the config schema version this build writes and expects.
const SchemaVersion = "1.0.0"

// configDirName is the per-user settings directory under $HOME.
const configDirName = ".tokenconv"

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full tokenconv configuration.
type Config struct {
	// Version is the config schema version (semver).
	Version string `yaml:"version"`

	// APIKey is the pricing API key. The environment variable takes
	// precedence over the file.
	APIKey string `yaml:"api_key"`

	// APIURL overrides the pricing API endpoint. Empty uses the default.
	APIURL string `yaml:"api_url"`

	// CacheTTLSeconds overrides the token cache TTL.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: SchemaVersion,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Path returns the config file location, honoring TOKENCONV_CONFIG for
// tests and unusual setups.
func Path() string {
	if p := os.Getenv("TOKENCONV_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", configDirName, "config.yaml")
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the config file at Path, applies environment overrides, and
// returns the result together with any non-fatal warnings (unreadable file,
// schema version drift). Load never fails: bad input degrades to defaults.
func Load() (Config, []string) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit path.
func LoadFrom(path string) (Config, []string) {
	cfg := Default()
	var warnings []string

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own config location
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file is the common case; defaults apply.
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("could not read config %s: %v", path, err))
	default:
		var fileCfg Config
		if unmarshalErr := yaml.Unmarshal(data, &fileCfg); unmarshalErr != nil {
			warnings = append(warnings, fmt.Sprintf("invalid config %s: %v", path, unmarshalErr))
		} else {
			cfg = merge(cfg, fileCfg)
			if w := checkSchemaVersion(fileCfg.Version); w != "" {
				warnings = append(warnings, w)
			}
		}
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.APIKey = key
	}
	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, warnings
}

// CacheTTL resolves the effective cache TTL: CLI flag (flagSeconds > 0) wins,
// then the TOKENCONV_CACHE_TTL environment variable, then the config file,
// then the built-in default.
func (c Config) CacheTTL(flagSeconds int) time.Duration {
	if flagSeconds > 0 {
		return time.Duration(flagSeconds) * time.Second
	}
	def := cache.DefaultTTL
	if c.CacheTTLSeconds > 0 {
		def = time.Duration(c.CacheTTLSeconds) * time.Second
	}
	return cache.TTLFromEnv(def)
}

// merge overlays file values onto base, keeping base defaults for zero values.
func merge(base, file Config) Config {
	out := base
	if file.Version != "" {
		out.Version = file.Version
	}
	if file.APIKey != "" {
		out.APIKey = file.APIKey
	}
	if file.APIURL != "" {
		out.APIURL = file.APIURL
	}
	if file.CacheTTLSeconds != 0 {
		out.CacheTTLSeconds = file.CacheTTLSeconds
	}
	if file.Logging.Level != "" {
		out.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		out.Logging.Format = file.Logging.Format
	}
	if file.Logging.File != "" {
		out.Logging.File = file.Logging.File
	}
	return out
}

// checkSchemaVersion compares the file's schema version against this build's
// and returns a warning for drift. Version problems never block operation.
func checkSchemaVersion(version string) string {
	if version == "" {
		return fmt.Sprintf("config has no version field; assuming %s", SchemaVersion)
	}

	fileVer, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Sprintf("config version %q is not valid semver: %v", version, err)
	}

	current := semver.MustParse(SchemaVersion)
	if fileVer.Major() != current.Major() {
		return fmt.Sprintf(
			"config schema version %s differs from supported %s; run with defaults reviewed",
			fileVer, current,
		)
	}

	return ""
}
