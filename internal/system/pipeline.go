// internal/system/pipeline.go
package system

import (
	"go.uber.org/zap"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
)

// System — шаг симуляции.
type System interface {
	Update(f *Frame)
}

type stage struct {
	name   string
	system System
}

// Pipeline выполняет системы в фиксированном порядке. Более поздние системы
// видят изменения более ранних в том же кадре, поэтому порядок менять нельзя.
type Pipeline struct {
	stages []stage
	logger *zap.Logger
}

func NewPipeline(ecs *entity.ECS, cfg config.GameplayConfig, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		logger: logger,
		stages: []stage{
			{"input", NewInputSystem(ecs, cfg)},
			{"spawn", NewSpawnSystem(ecs, cfg)},
			{"contactdamage", NewContactDamageSystem(ecs)},
			{"enemyai", NewEnemyAISystem(ecs, cfg)},
			{"selfdamage", NewSelfDamageSystem(ecs)},
			{"death", NewDeathSystem(ecs)},
			{"camera", NewCameraSystem(ecs, cfg)},
			{"physics", NewPhysicsSystem(ecs)},
		},
	}
}

// Run прогоняет один кадр.
func (p *Pipeline) Run(f *Frame) {
	for _, s := range p.stages {
		s.system.Update(f)
	}
	if f.ScoreDelta > 0 {
		p.logger.Debug("score gained", zap.Int("points", f.ScoreDelta), zap.Float32("now", f.Now))
	}
}

// Names — имена систем в порядке выполнения.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}
