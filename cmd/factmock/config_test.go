package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMockConfig_Defaults(t *testing.T) {
	cfg, err := loadMockConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8089", cfg.Addr)
	assert.Empty(t, cfg.Statuses)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMockConfig_Env(t *testing.T) {
	t.Setenv("FACTMOCK_ADDR", "127.0.0.1:0")
	t.Setenv("FACTMOCK_STATUSES", "200,500")
	t.Setenv("FACTMOCK_SEED", "42")

	cfg, err := loadMockConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", cfg.Addr)
	assert.Equal(t, []int{200, 500}, cfg.Statuses)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadMockConfig_InvalidStatus(t *testing.T) {
	t.Setenv("FACTMOCK_STATUSES", "200,700")

	_, err := loadMockConfig()
	assert.Error(t, err)
}
