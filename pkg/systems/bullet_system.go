package systems

import (
	"math"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
)

// BulletSystem 推进所有子弹并回收离屏子弹
type BulletSystem struct{}

// NewBulletSystem 创建子弹系统
func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

// Update 按速度和角度移动子弹，碰撞盒完全离开画面时销毁
func (s *BulletSystem) Update(w *game.GameWorld) {
	em := w.EntityManager
	width, height := w.Config.Screen.Width, w.Config.Screen.Height

	for _, id := range ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.CollisionComponent](em) {

		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		pos.Y += bullet.Speed * math.Cos(bullet.Angle)
		pos.X += bullet.Speed * math.Sin(bullet.Angle)

		if outOfBounds(pos, col, width, height) {
			em.DestroyEntity(id)
		}
	}
}
