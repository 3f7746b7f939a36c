package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_RequiresPort(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"DATABASE_URL": "postgres://db/app"}))
	assert.ErrorIs(t, err, ErrMissingPort)
}

func TestFromEnv_RejectsBadPort(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"PORT": "http"}))
	assert.Error(t, err)
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{"PORT": "4000"}))
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr())
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.Local)
	assert.True(t, cfg.EnsureSchema)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "breed-registry", cfg.AppName)
}

func TestFromEnv_DatabaseFallbackAndFlags(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":             "4000",
		"DB_DSN":           "postgres://db/app",
		"LOCAL":            "1",
		"DB_ENSURE_SCHEMA": "false",
		"SHUTDOWN_TIMEOUT": "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/app", cfg.DatabaseURL)
	assert.True(t, cfg.Local)
	assert.False(t, cfg.EnsureSchema)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_DatabaseURLWins(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":         "4000",
		"DATABASE_URL": "postgres://primary/app",
		"DB_DSN":       "postgres://other/app",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://primary/app", cfg.DatabaseURL)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=5055\nAPP_NAME=breeds-test\n"), 0o600))

	// t.Setenv registra el restore; Unsetenv deja que godotenv la cargue
	t.Setenv("PORT", "")
	t.Setenv("APP_NAME", "")
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.Unsetenv("APP_NAME"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "5055", cfg.Port)
	assert.Equal(t, "breeds-test", cfg.AppName)
}

func TestLoad_MissingFileIsOK(t *testing.T) {
	t.Setenv("PORT", "4001")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "4001", cfg.Port)
}
