// internal/timer/timer.go
package timer

import "time"

// Timer считает длительность кадра, время жизни симуляции и сглаженное
// время кадра для диагностики (заголовок окна, оверлей).
//
// Delta и Lifetime измеряются в секундах, FrameTime и FrameTimeSmooth в миллисекундах.
type Timer struct {
	now  func() time.Time
	last time.Time

	delta    float32
	maxDelta float32
	lifetime float32
	paused   bool

	frameTime       float32
	frameTimeSmooth float32

	window      []float32
	head        int
	filled      int
	interval    float32
	accumulated float32
}

// New создаёт таймер. smoothCount — размер окна сглаживания в кадрах,
// interval — как часто (в мс) Update сообщает о готовом сглаженном значении.
// now может быть nil, тогда используется time.Now.
func New(smoothCount int, interval float32, now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	if smoothCount < 1 {
		smoothCount = 1
	}
	return &Timer{
		now:      now,
		last:     now(),
		window:   make([]float32, smoothCount),
		interval: interval,
	}
}

// SetMaxDelta ограничивает шаг симуляции сверху (в секундах). 0 — без ограничения.
// Время кадра для диагностики не ограничивается.
func (t *Timer) SetMaxDelta(d float32) {
	t.maxDelta = d
}

// Update снимает показания часов. Возвращает true, когда накопилось interval
// миллисекунд и FrameTimeSmooth пересчитан.
func (t *Timer) Update() bool {
	current := t.now()
	elapsed := current.Sub(t.last)
	if elapsed < 0 {
		elapsed = 0
	}
	t.last = current

	t.frameTime = float32(elapsed.Microseconds()) / 1000
	t.delta = t.frameTime / 1000
	if t.maxDelta > 0 && t.delta > t.maxDelta {
		t.delta = t.maxDelta
	}
	if t.paused {
		t.delta = 0
	}
	t.lifetime += t.delta

	t.window[t.head] = t.frameTime
	t.head = (t.head + 1) % len(t.window)
	if t.filled < len(t.window) {
		t.filled++
	}

	t.accumulated += t.frameTime
	if t.accumulated < t.interval {
		return false
	}
	var sum float32
	for i := 0; i < t.filled; i++ {
		sum += t.window[i]
	}
	t.frameTimeSmooth = sum / float32(t.filled)
	t.accumulated -= t.interval
	if t.interval <= 0 {
		t.accumulated = 0
	}
	return true
}

// Delta — шаг симуляции последнего кадра в секундах. На паузе 0.
func (t *Timer) Delta() float32 { return t.delta }

// Lifetime — суммарное время симуляции с последнего сброса, в секундах.
func (t *Timer) Lifetime() float32 { return t.lifetime }

// FrameTime — реальная длительность последнего кадра, мс.
func (t *Timer) FrameTime() float32 { return t.frameTime }

// FrameTimeSmooth — среднее по окну, мс. Обновляется раз в interval.
func (t *Timer) FrameTimeSmooth() float32 { return t.frameTimeSmooth }

// FPS по последнему кадру.
func (t *Timer) FPS() float32 { return fps(t.frameTime) }

// FPSSmooth по сглаженному времени кадра.
func (t *Timer) FPSSmooth() float32 { return fps(t.frameTimeSmooth) }

func fps(ms float32) float32 {
	if ms <= 0 {
		return 0
	}
	return 1000 / ms
}

// SetPaused останавливает время симуляции. Время кадра продолжает считаться.
func (t *Timer) SetPaused(paused bool) { t.paused = paused }

// Paused сообщает, стоит ли таймер на паузе.
func (t *Timer) Paused() bool { return t.paused }

// ResetLifetime обнуляет время жизни симуляции (рестарт игры).
func (t *Timer) ResetLifetime() {
	t.lifetime = 0
}
