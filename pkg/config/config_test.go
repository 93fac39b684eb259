package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "mistica-api", cfg.App.Name)
	assert.Equal(t, config.StorageBolt, cfg.Storage.Driver)
	assert.Equal(t, "admin@mistica.com", cfg.Auth.AdminEmail)
	assert.Equal(t, 500*time.Millisecond, cfg.Simulate.WriteDelay)
	assert.Equal(t, time.Second, cfg.Simulate.LoadDelay)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("SIM_WRITE_DELAY_MS", "0")
	t.Setenv("HTTP_DOCS_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Zero(t, cfg.Simulate.WriteDelay)
	assert.True(t, cfg.HTTP.DocsEnabled)
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "mistica", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/mistica?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
