package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, OutputTable, cfg.View.Output)

	// Subsequent calls return the same instance.
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestSetGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	custom := New()
	custom.Logging.Level = "debug"
	SetGlobalConfig(custom)

	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvHome, "/opt/survivors")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/survivors", dir)

		path, err := DefaultConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/opt/survivors", ConfigFileName), path)
	})

	t.Run("home directory", func(t *testing.T) {
		tmpHome := t.TempDir()
		t.Setenv(EnvHome, "")
		t.Setenv("HOME", tmpHome)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpHome, ".survivors"), dir)
	})
}

func TestEnsureLogDir(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(logDir, "survivors.log")

	require.NoError(t, EnsureLogDir())
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg.Logging.File = ""
	assert.NoError(t, EnsureLogDir())
}
