// internal/system/camera.go
package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

// CameraSystem ведёт камеру за сущностью. Чем дальше камера от цели,
// тем быстрее она догоняет.
type CameraSystem struct {
	ecs *entity.ECS
	cfg config.GameplayConfig
}

func NewCameraSystem(ecs *entity.ECS, cfg config.GameplayConfig) *CameraSystem {
	return &CameraSystem{ecs: ecs, cfg: cfg}
}

func (s *CameraSystem) Update(f *Frame) {
	entity.Each2(s.ecs.Cameras, s.ecs.CameraFollows, func(_ types.EntityID, cam *component.Camera, follow *component.CameraFollow) {
		tr, ok := s.ecs.Transforms.Get(follow.Entity)
		if !ok {
			return
		}
		p := tr.Position
		cam.Target = mgl32.Vec3{p.X(), p.Y(), config.CameraTargetDepth}
		goal := mgl32.Vec3{p.X(), p.Y(), 0}

		t := float32(1)
		if s.cfg.CameraSmoothing > 0 {
			t = utils.Clamp(cam.Eye.Sub(goal).Len()/s.cfg.CameraSmoothing*f.Delta, 0, 1)
		}
		cam.Eye = lerpVec3(cam.Eye, goal, t)
	})
}
