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

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "game.toml", `
seed = 7

[gameplay]
spawn_interval = 3.5
max_speed = 20

[render]
max_sprites = 64

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, float32(3.5), cfg.Gameplay.SpawnInterval)
	assert.Equal(t, float32(20), cfg.Gameplay.MaxSpeed)
	assert.Equal(t, 64, cfg.Render.MaxSprites)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// нетронутые поля остаются по умолчанию
	assert.Equal(t, float32(Acceleration), cfg.Gameplay.Acceleration)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, ScreenWidth, cfg.Window.Width)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
window:
  title: test
audio:
  enabled: false
gameplay:
  enemy_health: 25
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Window.Title)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, float32(25), cfg.Gameplay.EnemyHealth)
	assert.Equal(t, MaxSprites, cfg.Render.MaxSprites)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "game.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(writeFile(t, "bad.toml", "[render\nmax_sprites = 1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "zero.toml", "[render]\nmax_sprites = 0\n"))
	assert.ErrorContains(t, err, "max_sprites")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
