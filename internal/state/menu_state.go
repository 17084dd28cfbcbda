// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/ui"
)

// MenuState — заставка перед игрой
type MenuState struct {
	sm      *StateMachine
	game    *GameState
	overlay *ui.Overlay
}

func NewMenuState(sm *StateMachine, game *GameState) *MenuState {
	return &MenuState{sm: sm, game: game, overlay: game.overlay}
}

func (m *MenuState) Enter() {
	m.game.universe.Timer.SetPaused(true)
}

func (m *MenuState) Update() {
	m.game.universe.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.game)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.overlay.Banner(screen, "Press Space to start")
}

func (m *MenuState) Exit() {
	m.game.universe.Timer.SetPaused(false)
	m.game.universe.Input.Clear()
}
