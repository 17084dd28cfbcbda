// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию и рисует поверх замершего кадра.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {
	u := s.previousState.universe
	u.Input.Clear()
	u.Timer.SetPaused(true)
}

func (s *PauseState) Update() {
	// таймер продолжает считать кадры, но время симуляции стоит
	s.previousState.universe.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.previousState.overlay.Banner(screen, "PAUSED")
}

func (s *PauseState) Exit() {
	s.previousState.universe.Timer.SetPaused(false)
}
