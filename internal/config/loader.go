package config

import (
	"errors"
	"strings"

	"github.com/quantmind-br/grader-go/internal/utils"
	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults into v.
// CLI flags are expected to be bound to v by the caller; a nil v uses a
// fresh instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)

	// An explicit config file (SetConfigFile) takes precedence over the search path
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (GRADER_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT is the conventional variable set by hosting platforms
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Checks = utils.ExpandPath(cfg.Checks)
	cfg.File = utils.ExpandPath(cfg.File)
	cfg.Server.IndexFile = utils.ExpandPath(cfg.Server.IndexFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("checks", DefaultChecksFile)
	v.SetDefault("file", DefaultHTMLFile)
	v.SetDefault("url", "")

	v.SetDefault("fetch.timeout", DefaultFetchTimeout)
	v.SetDefault("fetch.max_retries", DefaultMaxRetries)
	v.SetDefault("fetch.user_agent", "")
	v.SetDefault("fetch.proxy_url", "")
	v.SetDefault("fetch.follow_redirects", DefaultFollowRedirects)

	v.SetDefault("validation.strict", false)

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.index_file", DefaultHTMLFile)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
