package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PT_ENV", "PT_LOG_LEVEL", "PT_DB_PATH", "PT_HTTP_ADDR"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8088", cfg.HTTPAddr)
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	env := "# local overrides\nPT_LOG_LEVEL=debug\nPT_DB_PATH=\"/tmp/study.db\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Setenv("PT_LOG_LEVEL", "error")
	t.Setenv("PT_ENV", "")
	t.Setenv("PT_HTTP_ADDR", "")
	t.Setenv("PT_DB_PATH", "")
	os.Unsetenv("PT_DB_PATH")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/tmp/study.db", cfg.DBPath)
}

func TestValidate(t *testing.T) {
	ok := Config{Env: "production", LogLevel: "info", HTTPAddr: "localhost:9000"}
	assert.NoError(t, ok.Validate())

	bad := ok
	bad.Env = "staging"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.LogLevel = "verbose"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.HTTPAddr = "0.0.0.0:8088"
	assert.Error(t, bad.Validate())

	bad = ok
	bad.HTTPAddr = "8088"
	assert.Error(t, bad.Validate())
}
