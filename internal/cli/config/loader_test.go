package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		ResetConfig()
	})
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chtemp(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultStorePath(), cfg.StorePath)
	assert.Zero(t, cfg.Width)
	assert.Zero(t, cfg.Height)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_FileDiscovery(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vizr.yaml"),
		[]byte("width: 100\nstore_path: /tmp/custom.db\n"), 0600))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, "/tmp/custom.db", cfg.StorePath)
	assert.Equal(t, "vizr.yaml", GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vizr.yaml"),
		[]byte("width: 100\n"), 0600))
	t.Setenv("VIZR_WIDTH", "120")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
}

func TestLoadConfig_FlagsWinOverEverything(t *testing.T) {
	chtemp(t)
	t.Setenv("VIZR_WIDTH", "120")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", 0, "")
	flags.String("store", "", "")
	require.NoError(t, flags.Parse([]string{"--width", "42", "--store", "/tmp/flag.db"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Width)
	// --store maps onto the store_path key.
	assert.Equal(t, "/tmp/flag.db", cfg.StorePath)
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	chtemp(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("width", 0, "")
	require.NoError(t, flags.Parse(nil))

	t.Setenv("VIZR_WIDTH", "77")
	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Width, "an unset flag must not mask the env var")
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	chtemp(t)
	t.Setenv("VIZR_OUTPUT", "xml")

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	chtemp(t)

	_, err := LoadConfig("does-not-exist.yaml", nil)
	assert.Error(t, err)
}

func TestGetCurrentConfig_FallsBackToDefaults(t *testing.T) {
	ResetConfig()

	cfg := GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultStorePath(), cfg.StorePath)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoggerContext(t *testing.T) {
	logger := NewLogger(true)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))

	// Missing logger degrades to a discard logger rather than nil.
	fallback := GetLogger(context.Background())
	require.NotNil(t, fallback)
	assert.False(t, fallback.Enabled(context.Background(), slog.LevelDebug))
}
