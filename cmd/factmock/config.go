package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/tinytelemetry/factcard/internal/mockapi"
)

// mockConfig is read from FACTMOCK_* environment variables.
type mockConfig struct {
	Addr     string `env:"FACTMOCK_ADDR" envDefault:"127.0.0.1:8089"`
	Statuses []int  `env:"FACTMOCK_STATUSES" envSeparator:","`
	Seed     uint64 `env:"FACTMOCK_SEED"`
	LogLevel string `env:"FACTMOCK_LOG_LEVEL" envDefault:"info"`
}

func loadMockConfig() (mockConfig, error) {
	var cfg mockConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	for _, code := range cfg.Statuses {
		if err := mockapi.ValidateStatus(code); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
