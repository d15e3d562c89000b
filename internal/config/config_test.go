package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RNCOURSE_BASE_URL", "RNCOURSE_LOG_CALLS", "RNCOURSE_STYLE", "RNCOURSE_WIDTH"} {
		t.Setenv(k, "")
	}
	// LookupEnv distinguishes unset from empty for the password.
	if v, ok := os.LookupEnv("RNCOURSE_SOLUTION_PASSWORD"); ok {
		require.NoError(t, os.Unsetenv("RNCOURSE_SOLUTION_PASSWORD"))
		t.Cleanup(func() { _ = os.Setenv("RNCOURSE_SOLUTION_PASSWORD", v) })
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://rn.example.com
solution_password: hooks
log_calls: true
style: dark
width: 100
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://rn.example.com", cfg.BaseURL)
	assert.Equal(t, "hooks", cfg.SolutionPassword)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "dark", cfg.Style)
	assert.Equal(t, 100, cfg.Width)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com\nwidth: 60\n"), 0o600))

	t.Setenv("RNCOURSE_BASE_URL", "https://env.example.com")
	t.Setenv("RNCOURSE_SOLUTION_PASSWORD", "from-env")
	t.Setenv("RNCOURSE_WIDTH", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "from-env", cfg.SolutionPassword)
	assert.Equal(t, 60, cfg.Width)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = "neon"
	assert.ErrorContains(t, cfg.Validate(), "unknown style")

	cfg = DefaultConfig()
	cfg.Width = 0
	assert.ErrorContains(t, cfg.Validate(), "width must be positive")

	cfg = DefaultConfig()
	cfg.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--base-url", "https://flag.example.com", "--width", "120", "--log-calls"}))
	assert.Equal(t, "https://flag.example.com", cfg.BaseURL)
	assert.Equal(t, 120, cfg.Width)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "auto", cfg.Style)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv("RNCOURSE_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)
}
