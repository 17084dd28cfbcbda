// internal/system/state.go
package system

import (
	"fmt"

	"go-space-shooter/internal/entity"
)

// Status — строка состояния для заголовка окна и оверлея.
func Status(ecs *entity.ECS, score int) string {
	if ecs.Players.Len() > 0 {
		return fmt.Sprintf("Score: %d", score)
	}
	return fmt.Sprintf("Score: %d - DEAD! Press R to Restart", score)
}
