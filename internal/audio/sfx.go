// internal/audio/sfx.go
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"go-space-shooter/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Sfx озвучивает игровые события. Если звуковое устройство не открылось,
// игра продолжается молча.
type Sfx struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *zap.Logger
}

func New(logger *zap.Logger) *Sfx {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sfx{mixer: &beep.Mixer{}, logger: logger}
}

// Init открывает звуковое устройство.
func (s *Sfx) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Subscribe подписывает звуки на события диспетчера.
func (s *Sfx) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.ProjectileFired, event.EnemyKilled, event.PlayerDied, event.WorldReset} {
		d.Subscribe(t, s)
	}
}

func (s *Sfx) OnEvent(e event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	streamer := Effect(e.Type)
	if streamer == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close глушит всё, что ещё играет.
func (s *Sfx) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Effect строит короткий звук для события или nil, если событие беззвучное.
// Каждый вызов возвращает новый конечный поток.
func Effect(t event.EventType) beep.Streamer {
	switch t {
	case event.ProjectileFired:
		return tone(880, 40*time.Millisecond, -2)
	case event.EnemyKilled:
		return beep.Take(sampleRate.N(120*time.Millisecond), newNoiseBurst(sampleRate.N(120*time.Millisecond)))
	case event.PlayerDied:
		return beep.Seq(
			tone(220, 150*time.Millisecond, -1),
			tone(110, 300*time.Millisecond, -1),
		)
	case event.WorldReset:
		return beep.Seq(
			tone(440, 60*time.Millisecond, -2),
			tone(660, 60*time.Millisecond, -2),
		)
	}
	return nil
}

func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &effects.Volume{Streamer: beep.Take(sampleRate.N(d), sine), Base: 2, Volume: volume}
}

// noiseBurst — белый шум с линейным затуханием.
type noiseBurst struct {
	length int
	pos    int
}

func newNoiseBurst(length int) *noiseBurst {
	return &noiseBurst{length: length}
}

func (n *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	if n.pos >= n.length {
		return 0, false
	}
	i := 0
	for ; i < len(samples) && n.pos < n.length; i++ {
		env := 1 - float64(n.pos)/float64(n.length)
		v := (rand.Float64()*2 - 1) * 0.3 * env * env
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return i, true
}

func (n *noiseBurst) Err() error { return nil }

// peak — максимальная амплитуда потока; нужна тестам.
func peak(s beep.Streamer) (float64, int) {
	buf := make([][2]float64, 512)
	max, total := 0.0, 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			max = math.Max(max, math.Max(math.Abs(buf[i][0]), math.Abs(buf[i][1])))
		}
		total += n
		if !ok {
			return max, total
		}
	}
}
