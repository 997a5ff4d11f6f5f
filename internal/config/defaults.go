package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Input defaults
	DefaultChecksFile = "checks.json"
	DefaultHTMLFile   = "index.html"

	// DefaultURL is the reference deployment. It is not applied to --url;
	// the remote path is only taken when a URL is given explicitly.
	DefaultURL = "http://whispering-wildwood-1454.herokuapp.com/"

	// Fetch defaults
	DefaultFetchTimeout    = 30 * time.Second
	DefaultMaxRetries      = 0
	DefaultFollowRedirects = true

	// Server defaults
	DefaultPort = 8080

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override (GRADER_FETCH_TIMEOUT, ...)
	EnvPrefix = "GRADER"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grader"
	}
	return filepath.Join(home, ".grader")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Checks: DefaultChecksFile,
		File:   DefaultHTMLFile,
		Fetch: FetchConfig{
			Timeout:         DefaultFetchTimeout,
			MaxRetries:      DefaultMaxRetries,
			FollowRedirects: DefaultFollowRedirects,
		},
		Server: ServerConfig{
			Port:      DefaultPort,
			IndexFile: DefaultHTMLFile,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
