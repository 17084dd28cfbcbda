// internal/input/latch.go
package input

import "sort"

// Key — логическая клавиша игры. Фронтенды сами переводят свои коды клавиш в Key.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyRestart
	KeyPause
	KeyReload
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyFire:    "fire",
	KeyRestart: "restart",
	KeyPause:   "pause",
	KeyReload:  "reload",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Latch хранит множество зажатых клавиш между кадрами.
// Пока окно не в фокусе, нажатия игнорируются.
type Latch struct {
	held    map[Key]struct{}
	focused bool
}

func NewLatch() *Latch {
	return &Latch{
		held:    make(map[Key]struct{}, 8),
		focused: true,
	}
}

// Press отмечает клавишу как зажатую.
func (l *Latch) Press(k Key) {
	if !l.focused || k == KeyUnknown {
		return
	}
	l.held[k] = struct{}{}
}

// Release отпускает клавишу. Отпускание работает и без фокуса.
func (l *Latch) Release(k Key) {
	delete(l.held, k)
}

// Held проверяет, зажата ли клавиша.
func (l *Latch) Held(k Key) bool {
	_, ok := l.held[k]
	return ok
}

// Keys возвращает зажатые клавиши по возрастанию кода, чтобы системы
// обрабатывали их в одном и том же порядке каждый кадр.
func (l *Latch) Keys() []Key {
	keys := make([]Key, 0, len(l.held))
	for k := range l.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clear отпускает все клавиши.
func (l *Latch) Clear() {
	clear(l.held)
}

// SetFocused переключает фокус окна. Потеря фокуса отпускает всё,
// иначе клавиша, отпущенная вне окна, осталась бы зажатой навсегда.
func (l *Latch) SetFocused(focused bool) {
	l.focused = focused
	if !focused {
		l.Clear()
	}
}

// Focused сообщает, принимает ли защёлка нажатия.
func (l *Latch) Focused() bool {
	return l.focused
}
