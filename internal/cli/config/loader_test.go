package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultHistoryPath, cfg.HistoryPath)
	assert.Equal(t, DefaultSecret, cfg.SessionSecret)
	assert.Equal(t, DefaultMaxUploadMB, cfg.MaxUploadMB)
	assert.Equal(t, DefaultUniqueLimit, cfg.UniqueLimit)
	assert.True(t, cfg.Watch)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "port: 9090\ndata_dir: uploads\nwatch: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "uploads", cfg.DataDir)
	assert.False(t, cfg.Watch)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultHistoryPath, cfg.HistoryPath)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7070\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: 9090\n"), 0o644))
	t.Setenv("DATACLEANER_PORT", "9191")
	t.Setenv("DATACLEANER_DATA_DIR", "/tmp/csv")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "/tmp/csv", cfg.DataDir)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATACLEANER_PORT", "9191")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", DefaultPort, "")
	flags.String("data-dir", DefaultDataDir, "")
	require.NoError(t, flags.Parse([]string{"--port", "3000"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	// changed flag wins over env; unchanged flag does not mask env
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
}

func TestLoad_BadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [not a number\n"), 0o644))

	_, err := Load("", nil)
	assert.Error(t, err)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := Config{MaxUploadMB: 4}
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes())
}
