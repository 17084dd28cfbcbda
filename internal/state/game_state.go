// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/ui"
	"go-space-shooter/pkg/render/ebitendev"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	universe *app.Universe
	device   *ebitendev.Device
	overlay  *ui.Overlay
	health   *ui.HealthIndicator
	kills    *ui.KillIndicator
	cfg      *config.Config
	logger   *zap.Logger
}

func NewGameState(sm *StateMachine, u *app.Universe, dev *ebitendev.Device, face text.Face, cfg *config.Config, logger *zap.Logger) *GameState {
	kills := ui.NewKillIndicator(float32(cfg.Window.Width)-40, 40, 14)
	u.Events.Subscribe(event.EnemyKilled, kills)
	return &GameState{
		sm:       sm,
		universe: u,
		device:   dev,
		overlay:  ui.NewOverlay(face),
		health:   ui.NewHealthIndicator(16, float32(cfg.Window.Height)-80, face),
		kills:    kills,
		cfg:      cfg,
		logger:   logger,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() {
	syncLatch(g.universe.Input, ebiten.IsFocused(), ebiten.IsKeyPressed)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := g.universe.ReloadRenderer(); err == nil {
			g.logger.Info("renderer reloaded")
		}
	}

	if g.universe.Update() {
		ebiten.SetWindowTitle(g.cfg.Window.Title + " | " + g.universe.Status())
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.device.SetTarget(screen)
	g.universe.Render()
	if !g.universe.HasRenderer() {
		screen.Fill(config.BackgroundColor)
		g.overlay.Banner(screen, "renderer unavailable, press F5 to retry")
	}

	if health, ok := g.universe.PlayerHealth(); ok {
		g.health.Draw(screen, health, g.cfg.Gameplay.PlayerHealth)
	}
	g.kills.Draw(screen, config.HealthLowColor)
	g.overlay.Status(screen, g.universe.Status())
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
