// internal/system/frame.go
package system

import (
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/utils"
)

// Frame — всё, что системы получают от внешнего мира за один кадр.
// Системы не читают глобального состояния: время, клавиши и рандом приходят отсюда,
// а начисленные очки уходят обратно через ScoreDelta.
type Frame struct {
	Delta float32     // Шаг симуляции, сек
	Now   float32     // Время жизни симуляции, сек
	Keys  []input.Key // Зажатые клавиши, упорядоченные
	Rng   *utils.PRNGService

	Events *event.Dispatcher // может быть nil

	ScoreDelta int // Сколько очков заработано за кадр
}

func (f *Frame) dispatch(t event.EventType, data interface{}) {
	if f.Events == nil {
		return
	}
	f.Events.Dispatch(event.Event{Type: t, Data: data})
}
