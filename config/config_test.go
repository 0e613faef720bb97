package config

import (
	"os"
	"path/filepath"
	"testing"

	"offerfeed/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: offerfeed
http:
  port: 8080
storage:
  driver: memory
discovery:
  pageSize: 20
  maxPageSize: 50
session:
  cookieName: sid
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("DISCOVERY_PAGESIZE", "30")
	t.Setenv("SESSION_COOKIENAME", "offerfeed_sid")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 30, cfg.Discovery.PageSize)
	assert.Equal(t, 50, cfg.Discovery.MaxPageSize)
	assert.Equal(t, "offerfeed_sid", cfg.Session.CookieName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.False(t, cfg.Auth.RequireAPIKey)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, constants.DefaultPageSize, cfg.Discovery.PageSize)
	assert.Equal(t, constants.MaxPageSize, cfg.Discovery.MaxPageSize)
	assert.Equal(t, constants.DefaultFeedLimit, cfg.Discovery.SubscribedLimit)
	assert.Equal(t, constants.AllCategories, cfg.Discovery.AllCategories)
	assert.Equal(t, constants.NearbyCacheControl, cfg.Discovery.CacheControl)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestDiscoveryDefaults_PageSizeClampedToMax(t *testing.T) {
	d := &DiscoveryConfig{PageSize: 500, MaxPageSize: 40}
	d.applyDefaults()

	assert.Equal(t, 40, d.PageSize)
}
