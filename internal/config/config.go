package config

import (
	"time"

	"github.com/quantmind-br/grader-go/internal/domain"
	"github.com/quantmind-br/grader-go/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Checks     string           `mapstructure:"checks" yaml:"checks"`
	File       string           `mapstructure:"file" yaml:"file"`
	URL        string           `mapstructure:"url" yaml:"url"`
	Fetch      FetchConfig      `mapstructure:"fetch" yaml:"fetch"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// FetchConfig contains settings for the remote markup source
type FetchConfig struct {
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries      int           `mapstructure:"max_retries" yaml:"max_retries"`
	UserAgent       string        `mapstructure:"user_agent" yaml:"user_agent"`
	ProxyURL        string        `mapstructure:"proxy_url" yaml:"proxy_url"`
	FollowRedirects bool          `mapstructure:"follow_redirects" yaml:"follow_redirects"`
}

// ValidationConfig controls how checks are evaluated
type ValidationConfig struct {
	// Strict rejects checks that are not valid selectors instead of
	// reporting them as absent.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// ServerConfig contains settings for the static index server
type ServerConfig struct {
	Port      int    `mapstructure:"port" yaml:"port"`
	IndexFile string `mapstructure:"index_file" yaml:"index_file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// IsRemote reports whether markup should be fetched from URL rather than read from File
func (c *Config) IsRemote() bool {
	return c.URL != ""
}

// Validate validates the configuration, replacing out-of-range values with defaults
func (c *Config) Validate() error {
	if c.Checks == "" {
		c.Checks = DefaultChecksFile
	}
	if c.File == "" {
		c.File = DefaultHTMLFile
	}
	if c.Fetch.Timeout < time.Second {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.MaxRetries < 0 {
		c.Fetch.MaxRetries = DefaultMaxRetries
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return domain.NewValidationError("server.port", "must be between 1 and 65535")
	}
	if c.Server.IndexFile == "" {
		c.Server.IndexFile = DefaultHTMLFile
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// ValidateInputs checks that the input files named by the configuration exist.
// The markup file is only required when no URL is configured.
func (c *Config) ValidateInputs() error {
	if !utils.FileExists(c.Checks) {
		return domain.NewFileNotFoundError(c.Checks, domain.RoleChecks)
	}
	if !c.IsRemote() && !utils.FileExists(c.File) {
		return domain.NewFileNotFoundError(c.File, domain.RoleHTML)
	}
	return nil
}
