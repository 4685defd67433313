package systems

import (
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
)

// EnemySystem 敌机下落与循环
type EnemySystem struct{}

// NewEnemySystem 创建敌机系统
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Update 移动敌机
// 越过底边，或左右越界超过 WrapMargin 时，敌机回到顶部重新随机位置和下落速度（水平漂移保留）
func (s *EnemySystem) Update(w *game.GameWorld) {
	em := w.EntityManager
	cfg := w.Config

	for _, id := range em.Group(components.GroupEnemies) {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		pos.Y += enemy.SpeedY
		pos.X += enemy.SpeedX

		if col.Top(pos) > cfg.Screen.Height ||
			col.Left(pos) < -cfg.Enemy.WrapMargin ||
			col.Right(pos) > cfg.Screen.Width+cfg.Enemy.WrapMargin {
			pos.X, pos.Y = entities.RandomEnemySpawnPoint(w)
			enemy.SpeedY = entities.RandomEnemySpeedY(w)
		}
	}
}
