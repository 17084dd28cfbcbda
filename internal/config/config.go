package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 1024
	WindowTitle  = "mathilda"
	MaxDeltaTime = 0.06

	TimerSmoothFrames   = 20
	TimerReportInterval = 100.0 // мс между обновлениями заголовка окна

	// Движение
	Acceleration       = 20.0
	MaxSpeed           = 16.0
	PlayerThrustFactor = 1.5

	// Игрок
	PlayerHealth       = 10.0
	PlayerScale        = 0.35
	PlayerDeceleration = 1.5
	PlayerStartX       = 0.5
	PlayerStartY       = 0.5
	WeaponRepeat       = 0.2

	// Снаряды
	ProjectileOffset       = 0.8
	ProjectileSpeed        = 10.0
	ProjectileScale        = 0.2
	ProjectileDeceleration = 0.05
	ProjectileSelfDamage   = 1.0 // урон в секунду, то есть ~3 сек жизни
	ProjectileHealth       = 3.0
	ProjectileDamage       = 10.0

	// Враги
	EnemyHealth    = 10.0
	EnemyScale     = 0.5
	EnemyDamage    = 5.0
	SpawnInterval  = 2.0
	SpawnRadius    = 10.0
	SpawnMinFactor = 0.5
	SpawnMaxFactor = 2.0
	EntityDepth    = 10.0 // все игровые объекты лежат в плоскости z=10

	// Камера
	CameraFovy        = 90.0
	CameraNear        = 0.1
	CameraFar         = 100.0
	CameraTargetDepth = 100.0
	CameraSmoothing   = 5.0

	// Рендер
	SpriteCellSize   = 16.0
	MaxSprites       = 1024
	UniformAlignment = 256
)

var (
	BackgroundColor  = color.RGBA{25, 51, 76, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PauseDimColor    = color.RGBA{0, 0, 0, 140}
	HealthFullColor  = color.RGBA{50, 100, 255, 255}
	HealthLowColor   = color.RGBA{220, 60, 60, 255}
	HealthEmptyColor = color.RGBA{0, 0, 0, 255}

	PlayerColor     = mgl32.Vec4{0.1, 0.4, 1.0, 0.0}
	ProjectileColor = mgl32.Vec4{0.1, 0.4, 1.0, 0.0}
	EnemyColor      = mgl32.Vec4{0.0, 0.0, 0.0, 0.0}

	PlayerCell     = mgl32.Vec2{47, 1}
	ProjectileCell = mgl32.Vec2{1, 1}
	EnemyCells     = []mgl32.Vec2{{46, 2}, {45, 2}, {47, 2}}
)
