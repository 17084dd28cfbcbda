// internal/app/universe.go
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/session"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/timer"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/render"
)

// RendererFactory строит рендер заново: при старте и по клавише перезагрузки.
type RendererFactory func() (*render.Renderer, error)

// Universe владеет всем состоянием игры. Все методы вызываются из одной горутины.
type Universe struct {
	ECS     *entity.ECS
	Timer   *timer.Timer
	Input   *input.Latch
	Session *session.Session
	Events  *event.Dispatcher
	Rng     *utils.PRNGService

	cfg      *config.Config
	pipeline *system.Pipeline
	logger   *zap.Logger

	renderer    *render.Renderer
	newRenderer RendererFactory
	lastStats   render.FrameStats

	Player types.EntityID
}

// NewUniverse собирает мир и сразу наполняет его стартовыми сущностями.
func NewUniverse(
	cfg *config.Config,
	ecs *entity.ECS,
	clock *timer.Timer,
	latch *input.Latch,
	sess *session.Session,
	events *event.Dispatcher,
	rng *utils.PRNGService,
	logger *zap.Logger,
) *Universe {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &Universe{
		ECS:      ecs,
		Timer:    clock,
		Input:    latch,
		Session:  sess,
		Events:   events,
		Rng:      rng,
		cfg:      cfg,
		pipeline: system.NewPipeline(ecs, cfg.Gameplay, logger.Named("systems")),
		logger:   logger,
	}
	u.Player = Populate(ecs, cfg.Gameplay)
	logger.Info("universe ready",
		zap.String("session", sess.ID.String()),
		zap.Strings("systems", u.pipeline.Names()))
	return u
}

// NewTimer — таймер с окном сглаживания и ограничением шага из конфигурации.
func NewTimer() *timer.Timer {
	t := timer.New(config.TimerSmoothFrames, config.TimerReportInterval, time.Now)
	t.SetMaxDelta(config.MaxDeltaTime)
	return t
}

// NewRng — генератор случайных чисел с сидом из конфигурации.
func NewRng(cfg *config.Config) *utils.PRNGService {
	return utils.NewPRNGService(cfg.Seed)
}

// Update продвигает симуляцию на один кадр. Возвращает true, если
// сглаженная статистика таймера обновилась и заголовок стоит перерисовать.
func (u *Universe) Update() bool {
	report := u.Timer.Update()
	if u.Input.Held(input.KeyRestart) {
		u.Reset()
		return report
	}
	if u.Timer.Paused() {
		return report
	}
	frame := &system.Frame{
		Delta:  u.Timer.Delta(),
		Now:    u.Timer.Lifetime(),
		Keys:   u.Input.Keys(),
		Rng:    u.Rng,
		Events: u.Events,
	}
	u.pipeline.Run(frame)
	u.Session.Add(frame.ScoreDelta)
	return report
}

// Reset очищает мир и начинает игру заново.
func (u *Universe) Reset() {
	u.ECS.Clear()
	u.Player = Populate(u.ECS, u.cfg.Gameplay)
	u.Session.Clear()
	u.Timer.ResetLifetime()
	u.Input.Clear()
	u.logger.Info("world reset", zap.String("session", u.Session.ID.String()))
	if u.Events != nil {
		u.Events.Dispatch(event.Event{Type: event.WorldReset, Data: event.WorldResetData{Session: u.Session.ID}})
	}
}

// TogglePause ставит симуляцию на паузу или снимает с неё.
func (u *Universe) TogglePause() bool {
	paused := !u.Timer.Paused()
	u.Timer.SetPaused(paused)
	return paused
}

// AttachRenderer запоминает фабрику и пытается построить рендер.
// Ошибка не фатальна: симуляция идёт и без рендера.
func (u *Universe) AttachRenderer(factory RendererFactory) error {
	u.newRenderer = factory
	return u.ReloadRenderer()
}

// ReloadRenderer строит рендер заново. При ошибке остаётся прежний рендер, если он был.
func (u *Universe) ReloadRenderer() error {
	if u.newRenderer == nil {
		return nil
	}
	r, err := u.newRenderer()
	if err != nil {
		u.logger.Error("renderer init failed", zap.Error(err), zap.Bool("keeping_previous", u.renderer != nil))
		return err
	}
	u.renderer = r
	return nil
}

// HasRenderer сообщает, готов ли рендер.
func (u *Universe) HasRenderer() bool {
	return u.renderer != nil
}

// Render рисует текущее состояние. Без рендера или камеры кадр пропускается.
func (u *Universe) Render() render.FrameStats {
	if u.renderer == nil {
		u.lastStats = render.FrameStats{Skipped: true}
		return u.lastStats
	}
	// интерфейс без значения, а не типизированный nil
	var cam render.Camera
	if c := system.ActiveCamera(u.ECS); c != nil {
		cam = c
	}
	u.lastStats = u.renderer.Render(cam, system.NewDrawables(u.ECS))
	return u.lastStats
}

// LastStats — статистика последнего Render.
func (u *Universe) LastStats() render.FrameStats {
	return u.lastStats
}

// Status — строка для заголовка окна.
func (u *Universe) Status() string {
	status := fmt.Sprintf("%s | entities %d | fps %.0f (%.2f ms)",
		system.Status(u.ECS, u.Session.Score),
		u.ECS.Count(),
		u.Timer.FPSSmooth(),
		u.Timer.FrameTimeSmooth())
	if u.Timer.Paused() {
		status += " | paused"
	}
	return status
}

// PlayerHealth — здоровье игрока, если он ещё жив.
func (u *Universe) PlayerHealth() (float32, bool) {
	life, ok := u.ECS.Lives.Get(u.Player)
	if !ok {
		return 0, false
	}
	return life.Health, true
}
