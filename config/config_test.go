package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventpath/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvInputDir, "")
	t.Setenv(config.EnvYear, "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultInputDir, cfg.InputDir)
	assert.Equal(t, config.DefaultYear, cfg.Year)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv(config.EnvInputDir, "/srv/aoc")
	t.Setenv(config.EnvYear, "2023")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/aoc", cfg.InputDir)
	assert.Equal(t, 2023, cfg.Year)
}

// TestLoad_DotEnv checks that .env values fill unset variables but never
// override ones already present in the environment.
func TestLoad_DotEnv(t *testing.T) {
	t.Setenv(config.EnvInputDir, "from-env")
	t.Setenv(config.EnvYear, "")
	require.NoError(t, os.Unsetenv(config.EnvYear))

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("AOC_INPUT_DIR=from-file\nAOC_YEAR=2022\n"), 0o644))

	cfg, err := config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.InputDir)
	assert.Equal(t, 2022, cfg.Year)
}

func TestLoad_BadYear(t *testing.T) {
	t.Setenv(config.EnvYear, "twenty")
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
