package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  allowed_origins:
    - http://localhost:4000
storage:
  database_path: /tmp/test-vouchers.db
generate:
  start_no: 42
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:4000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/tmp/test-vouchers.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 42, cfg.Generate.StartNo)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_VOUCHER_DB", "/data/app.db")
	path := writeConfig(t, "storage:\n  database_path: ${TEST_VOUCHER_DB}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/app.db", cfg.Storage.DatabasePath)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "vouchers.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 1, cfg.Generate.StartNo)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VOUCHER_PORT", "7070")
	t.Setenv("VOUCHER_DB_PATH", "env.db")
	t.Setenv("VOUCHER_START_NO", "5")
	t.Setenv("VOUCHER_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := LoadFromEnv()

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 5, cfg.Generate.StartNo)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadOrEnvWithPath_FallsBack(t *testing.T) {
	t.Setenv("VOUCHER_DB_PATH", "fallback.db")

	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "fallback.db", cfg.Storage.DatabasePath)
}
