package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat — расширение файла конфигурации не поддерживается.
var ErrUnknownFormat = errors.New("unknown config format")

// Config — настройки, которые можно переопределить файлом.
// Значения по умолчанию берутся из констант пакета.
type Config struct {
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Gameplay GameplayConfig `toml:"gameplay" yaml:"gameplay"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`
	Seed     int64          `toml:"seed" yaml:"seed"` // 0 — сид от текущего времени
}

type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

type GameplayConfig struct {
	Acceleration       float32 `toml:"acceleration" yaml:"acceleration"`
	MaxSpeed           float32 `toml:"max_speed" yaml:"max_speed"`
	PlayerThrustFactor float32 `toml:"player_thrust_factor" yaml:"player_thrust_factor"`

	PlayerHealth       float32 `toml:"player_health" yaml:"player_health"`
	PlayerScale        float32 `toml:"player_scale" yaml:"player_scale"`
	PlayerDeceleration float32 `toml:"player_deceleration" yaml:"player_deceleration"`
	WeaponRepeat       float32 `toml:"weapon_repeat" yaml:"weapon_repeat"`

	ProjectileOffset       float32 `toml:"projectile_offset" yaml:"projectile_offset"`
	ProjectileSpeed        float32 `toml:"projectile_speed" yaml:"projectile_speed"`
	ProjectileScale        float32 `toml:"projectile_scale" yaml:"projectile_scale"`
	ProjectileDeceleration float32 `toml:"projectile_deceleration" yaml:"projectile_deceleration"`
	ProjectileSelfDamage   float32 `toml:"projectile_self_damage" yaml:"projectile_self_damage"`
	ProjectileHealth       float32 `toml:"projectile_health" yaml:"projectile_health"`
	ProjectileDamage       float32 `toml:"projectile_damage" yaml:"projectile_damage"`

	EnemyHealth    float32 `toml:"enemy_health" yaml:"enemy_health"`
	EnemyScale     float32 `toml:"enemy_scale" yaml:"enemy_scale"`
	EnemyDamage    float32 `toml:"enemy_damage" yaml:"enemy_damage"`
	SpawnInterval  float32 `toml:"spawn_interval" yaml:"spawn_interval"`
	SpawnRadius    float32 `toml:"spawn_radius" yaml:"spawn_radius"`
	SpawnMinFactor float32 `toml:"spawn_min_factor" yaml:"spawn_min_factor"`
	SpawnMaxFactor float32 `toml:"spawn_max_factor" yaml:"spawn_max_factor"`

	CameraSmoothing float32 `toml:"camera_smoothing" yaml:"camera_smoothing"`
}

type RenderConfig struct {
	MaxSprites int    `toml:"max_sprites" yaml:"max_sprites"`
	ShaderDir  string `toml:"shader_dir" yaml:"shader_dir"` // пусто — встроенные шейдеры
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" или "console"
	Output string `toml:"output" yaml:"output"` // путь к файлу или stderr
}

type AudioConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		Gameplay: GameplayConfig{
			Acceleration:       Acceleration,
			MaxSpeed:           MaxSpeed,
			PlayerThrustFactor: PlayerThrustFactor,

			PlayerHealth:       PlayerHealth,
			PlayerScale:        PlayerScale,
			PlayerDeceleration: PlayerDeceleration,
			WeaponRepeat:       WeaponRepeat,

			ProjectileOffset:       ProjectileOffset,
			ProjectileSpeed:        ProjectileSpeed,
			ProjectileScale:        ProjectileScale,
			ProjectileDeceleration: ProjectileDeceleration,
			ProjectileSelfDamage:   ProjectileSelfDamage,
			ProjectileHealth:       ProjectileHealth,
			ProjectileDamage:       ProjectileDamage,

			EnemyHealth:    EnemyHealth,
			EnemyScale:     EnemyScale,
			EnemyDamage:    EnemyDamage,
			SpawnInterval:  SpawnInterval,
			SpawnRadius:    SpawnRadius,
			SpawnMinFactor: SpawnMinFactor,
			SpawnMaxFactor: SpawnMaxFactor,

			CameraSmoothing: CameraSmoothing,
		},
		Render: RenderConfig{
			MaxSprites: MaxSprites,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// Load читает файл поверх значений по умолчанию. Формат определяется по расширению:
// .toml, .yaml или .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: %w", path, ErrUnknownFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault — как Load, но пустой путь означает конфигурацию по умолчанию.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate проверяет значения, без которых игра не может работать.
func (c *Config) Validate() error {
	if c.Render.MaxSprites <= 0 {
		return fmt.Errorf("render.max_sprites must be positive, got %d", c.Render.MaxSprites)
	}
	if c.Gameplay.SpawnInterval <= 0 {
		return fmt.Errorf("gameplay.spawn_interval must be positive, got %v", c.Gameplay.SpawnInterval)
	}
	if c.Gameplay.SpawnMinFactor > c.Gameplay.SpawnMaxFactor {
		return fmt.Errorf("gameplay.spawn_min_factor %v exceeds spawn_max_factor %v",
			c.Gameplay.SpawnMinFactor, c.Gameplay.SpawnMaxFactor)
	}
	return nil
}
