package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Len(t, cfg.Batches, 3)
	assert.Equal(t, "output", cfg.OutDir)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 600, cfg.CanvasWidth)
	assert.Equal(t, 500, cfg.CanvasHeight)
	assert.Equal(t, "#4A90E2", cfg.Batches[2].Background)
	assert.Len(t, cfg.Batches[2].Shapes, 6)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "labyrinth.yaml", `
out_dir: build/mazes
seed: 42
log_json: true
background_color: "#112233"
batches:
  - name: adventure
    count: 4
    age: 6
    difficulty: medium
    shapes: [triangle, circle]
    style: corridor
    items:
      rule: collect
      count: 4
      marker: "⭐"
  - count: 2
    organic: true
    background_color: "#FFFFFF"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "build/mazes", cfg.OutDir)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, "info", cfg.LogLevel)
	require.Len(t, cfg.Batches, 2)

	adv := cfg.Batches[0]
	assert.Equal(t, "adventure", adv.Name)
	assert.Equal(t, "#112233", adv.Background)
	require.NotNil(t, adv.Items)
	assert.Equal(t, "⭐", adv.Items.Marker)

	p := adv.Params(cfg, 1)
	assert.Equal(t, "circle", p.Shape)
	assert.Equal(t, "corridor", p.Style)
	assert.Equal(t, "collect", p.ItemRule)
	assert.Equal(t, 4, p.ItemCount)
	assert.Equal(t, 600, p.CanvasWidth)

	org := cfg.Batches[1]
	assert.Equal(t, "batch2", org.Name)
	assert.True(t, org.Organic)
	assert.Equal(t, []string{"rect"}, org.Shapes)
	assert.Equal(t, "#FFFFFF", org.Background)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "batches: [oops"))
	assert.Error(t, err)
}

func TestLoad_NoBatchesUsesDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "min.yaml", "seed: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Len(t, cfg.Batches, 3)
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, "test.env", "LABYRINTH_OUT_DIR=from-dotenv\n")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvOutDir, "")
	// godotenv does not override variables that are already present.
	require.NoError(t, os.Unsetenv(EnvOutDir))

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, envFile))
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-dotenv", cfg.OutDir)
}

func TestApplyEnv_MissingFileAndBadSeed(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), "none.env")))

	t.Setenv(EnvSeed, "not-a-number")
	assert.Error(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), "none.env")))
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("LABYRINTH_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnvWithDefault("LABYRINTH_TEST_KEY", "fallback"))
	t.Setenv("LABYRINTH_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvWithDefault("LABYRINTH_TEST_KEY", "fallback"))
}
