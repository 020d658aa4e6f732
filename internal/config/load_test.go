package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every TODO_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TODO_SERVER_HOST",
		"TODO_SERVER_PORT",
		"TODO_SERVER_LOG_LEVEL",
		"TODO_DATABASE_DRIVER",
		"TODO_DATABASE_PATH",
		"TODO_DATABASE_URL",
		"TODO_DATABASE_MAX_OPEN_CONNS",
	} {
		if value, ok := os.LookupEnv(name); ok {
			require.NoError(t, os.Unsetenv(name))
			t.Cleanup(func() { _ = os.Setenv(name, value) })
		}
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// TestLoadDefaults verifies that with no configuration present the server
// listens on all interfaces at 8080 and uses todo.db.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "todo.db", cfg.Database.Path)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Database.MaxOpenConns)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("TODO_SERVER_PORT", "9090")
	t.Setenv("TODO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODO_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("TODO_DATABASE_MAX_OPEN_CONNS", "2")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	content := "server:\n  port: 7070\ndatabase:\n  path: from-file.db\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o600))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-file.db", cfg.Database.Path)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"TODO_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"TODO_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Unknown driver",
			envVars: map[string]string{"TODO_DATABASE_DRIVER": "mysql"},
		},
		{
			name:    "Postgres without URL",
			envVars: map[string]string{"TODO_DATABASE_DRIVER": "postgres"},
		},
		{
			name:    "Zero pool size",
			envVars: map[string]string{"TODO_DATABASE_MAX_OPEN_CONNS": "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			for name, value := range tc.envVars {
				t.Setenv(name, value)
			}

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
