package main

import (
	"github.com/gdamore/tcell/v2"

	"go-space-shooter/internal/input"
)

// translate переводит событие терминала в клавишу игры.
func translate(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyF5:
		return input.KeyReload
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.KeyUp
		case 's', 'S':
			return input.KeyDown
		case 'a', 'A':
			return input.KeyLeft
		case 'd', 'D':
			return input.KeyRight
		case ' ':
			return input.KeyFire
		case 'r', 'R':
			return input.KeyRestart
		case 'p', 'P':
			return input.KeyPause
		}
	}
	return input.KeyUnknown
}

// autoRelease отпускает клавиши сам: терминал присылает только нажатия
// и автоповтор, событий отпускания нет. Клавиша считается зажатой,
// пока автоповтор приходит чаще, чем раз в hold кадров.
type autoRelease struct {
	hold int
	ttl  map[input.Key]int
}

func newAutoRelease(hold int) *autoRelease {
	if hold < 1 {
		hold = 1
	}
	return &autoRelease{hold: hold, ttl: make(map[input.Key]int)}
}

func (a *autoRelease) press(latch *input.Latch, k input.Key) {
	latch.Press(k)
	if latch.Held(k) {
		a.ttl[k] = a.hold
	}
}

// tick вызывается раз в кадр после Update.
func (a *autoRelease) tick(latch *input.Latch) {
	for k, left := range a.ttl {
		left--
		if left <= 0 {
			latch.Release(k)
			delete(a.ttl, k)
			continue
		}
		a.ttl[k] = left
	}
}

func (a *autoRelease) clear() {
	clear(a.ttl)
}
