package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/factcard/internal/model"
)

const (
	defaultVariant        = model.DefaultVariant
	defaultRequestTimeout = model.DefaultRequestTimeout
	defaultLogLevel       = model.DefaultLogLevel
	defaultUserAgent      = model.DefaultUserAgent
)

// cliConfig holds factcard configuration.
type cliConfig struct {
	Variant        string        `mapstructure:"variant"`
	Endpoint       string        `mapstructure:"endpoint"`
	Field          string        `mapstructure:"field"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	UserAgent      string        `mapstructure:"user-agent"`
	LogFile        string        `mapstructure:"log-file"`
	LogLevel       string        `mapstructure:"log-level"`
	ConfigPath     string        `mapstructure:"-"` // not from config file
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("FACTCARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("variant", defaultVariant)
	v.SetDefault("endpoint", "")
	v.SetDefault("field", "")
	v.SetDefault("request-timeout", defaultRequestTimeout)
	v.SetDefault("user-agent", defaultUserAgent)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "factcard", "factcard.log"))
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "factcard", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.RequestTimeout < 0 {
		return cfg, fmt.Errorf("invalid request-timeout: %s", cfg.RequestTimeout)
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}

// resolveVariant returns the configured built-in variant with any endpoint
// or field override applied.
func (c cliConfig) resolveVariant() (model.Variant, error) {
	v, err := model.LookupVariant(c.Variant)
	if err != nil {
		return model.Variant{}, err
	}
	return v.WithOverrides(c.Endpoint, c.Field), nil
}
