// internal/system/render.go
package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/entity"
	"go-space-shooter/pkg/render"
)

// Drawables отдаёт рендеру все сущности с Transform и Sprite в порядке их появления.
// Пока идёт отрисовка, хранилище не должно структурно меняться.
type Drawables struct {
	cursor *entity.Cursor2[component.Transform, component.Sprite]
}

func NewDrawables(ecs *entity.ECS) *Drawables {
	return &Drawables{cursor: entity.NewCursor2(ecs.Transforms, ecs.Sprites)}
}

func (d *Drawables) Next() (render.Sprite, bool) {
	_, tr, sp, ok := d.cursor.Next()
	if !ok {
		return render.Sprite{}, false
	}
	return render.Sprite{
		Position: tr.Position,
		Size:     tr.Scale,
		Rotation: tr.Rotation,
		Color:    sp.Color,
		Cell:     sp.Cell,
	}, true
}

// ActiveCamera возвращает первую камеру хранилища или nil.
func ActiveCamera(ecs *entity.ECS) *component.Camera {
	ids := ecs.Cameras.IDs()
	if len(ids) == 0 {
		return nil
	}
	cam, _ := ecs.Cameras.Get(ids[0])
	return cam
}
