package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-shooter/internal/input"
)

// keymap — какие клавиши ebiten зажимают клавиши игры. Пауза и перезагрузка
// срабатывают по нажатию и в защёлку не попадают.
var keymap = map[input.Key][]ebiten.Key{
	input.KeyUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.KeyRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	input.KeyFire:    {ebiten.KeySpace},
	input.KeyRestart: {ebiten.KeyR},
}

// syncLatch переносит состояние клавиатуры в защёлку. Клавиша игры зажата,
// пока зажата хотя бы одна из её клавиш ebiten.
func syncLatch(latch *input.Latch, focused bool, pressed func(ebiten.Key) bool) {
	latch.SetFocused(focused)
	for key, bound := range keymap {
		down := false
		for _, k := range bound {
			if pressed(k) {
				down = true
				break
			}
		}
		if down {
			latch.Press(key)
		} else {
			latch.Release(key)
		}
	}
}
