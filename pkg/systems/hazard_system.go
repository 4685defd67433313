package systems

import (
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
)

// HazardSystem 火球与弹球的运动
type HazardSystem struct{}

// NewHazardSystem 创建场景实体系统
func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

// Update 火球下落，越过底边后销毁；弹球碰到墙壁时对应轴速度取反
func (s *HazardSystem) Update(w *game.GameWorld) {
	em := w.EntityManager
	width, height := w.Config.Screen.Width, w.Config.Screen.Height

	for _, id := range em.Group(components.GroupFireballs) {
		fireball, ok := ecs.GetComponent[*components.FireballComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		pos.Y += fireball.Speed
		if col.Top(pos) > height {
			em.DestroyEntity(id)
		}
	}

	for _, id := range em.Group(components.GroupBouncingBalls) {
		ball, ok := ecs.GetComponent[*components.BouncingBallComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		pos.X += ball.SpeedX
		pos.Y += ball.SpeedY
		if col.Left(pos) < 0 || col.Right(pos) > width {
			ball.SpeedX = -ball.SpeedX
		}
		if col.Top(pos) < 0 || col.Bottom(pos) > height {
			ball.SpeedY = -ball.SpeedY
		}
	}
}
