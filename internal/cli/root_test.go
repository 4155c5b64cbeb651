package cli_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleemora/survivors/internal/cli"
	"github.com/gleemora/survivors/internal/config"
)

func TestNewRootCmd(t *testing.T) {
	cmd := cli.NewRootCmd("1.2.3")

	assert.Equal(t, "survivors", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"list", "config", "version"})
}

func TestVersionCmd(t *testing.T) {
	setupCLITest(t)

	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "survivors test")
	assert.Contains(t, out, "commit:")
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view:\n  page_size: 7\n"), 0600))

	_, err := executeRoot(t, "--config", path, "version")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_WritesLogFile(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvLogLevel, "info")

	_, err := executeRoot(t, "version")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, "logs", "survivors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "command started")
	assert.Contains(t, string(data), `"trace_id"`)
}

func TestConfigInitShowValidate(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "custom", "config.yaml")

	out, err := executeRoot(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at "+path)

	_, err = executeRoot(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeRoot(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeRoot(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	out, err = executeRoot(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "endpoint: https://api.gleemora.com/api/survivor")
	assert.Contains(t, out, "page_size: 5")
}

func TestConfigInit_ForceRepairsInvalidConfig(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("view:\n  page_size: 7\n"), 0600))

	_, err := executeRoot(t, "config", "validate")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	out, err := executeRoot(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at "+path)

	out, err = executeRoot(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigInit_IgnoresInvalidEnvironment(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvPageSize, "7")

	_, err := executeRoot(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, config.ConfigFileName))
}

func TestRoot_FailedCommandClosesLog(t *testing.T) {
	home := setupCLITest(t)
	t.Setenv(config.EnvLogLevel, "debug")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := executeRoot(t, "list", "--endpoint", server.URL, "--plain", "--show-load-errors")
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(home, "logs", "survivors.log"))
	require.NoError(t, err)

	var finished string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, "command finished") {
			finished = line
		}
	}
	require.NotEmpty(t, finished, "failed command must still log its end")
	assert.Contains(t, finished, `"level":"warn"`)
	assert.Contains(t, finished, `"error"`)
}
