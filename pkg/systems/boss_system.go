package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
)

// BossSystem 头目移动、弹幕与受伤
type BossSystem struct{}

// NewBossSystem 创建头目系统
func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

// Update 水平往返移动，射击间隔已过时按当前弹幕等级开火
func (s *BossSystem) Update(w *game.GameWorld) {
	boss, ok := w.Boss()
	if !ok {
		return
	}
	em := w.EntityManager
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, w.BossID)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, w.BossID)

	pos.X += boss.SpeedX
	if col.Left(pos) < 0 || col.Right(pos) > w.Config.Screen.Width {
		boss.SpeedX = -boss.SpeedX
	}

	if w.Now-boss.LastShot > boss.ShootDelay {
		s.fire(w, boss, pos, col)
		boss.LastShot = w.Now
	}
}

// fire 从头目底边向下发射一轮弹幕
func (s *BossSystem) fire(w *game.GameWorld, boss *components.BossComponent, pos *components.PositionComponent, col *components.CollisionComponent) {
	for _, offset := range w.Config.BossBulletOffsets(boss.BulletLevel) {
		entities.NewBullet(w, entities.BulletParams{
			X:      pos.X + offset,
			Edge:   col.Bottom(pos),
			Speed:  w.Config.Boss.BulletSpeed,
			Source: components.BulletFromBoss,
		})
	}
}

// TakeDamage 扣除头目生命值并按阈值提升弹幕等级
// 等级只增不减，返回生命值是否已降到 0 以下（含 0）
func (s *BossSystem) TakeDamage(w *game.GameWorld, damage int) bool {
	boss, ok := w.Boss()
	if !ok {
		return false
	}
	boss.Health -= damage

	if level := w.Config.BossLevelForHealth(boss.Health); level > boss.BulletLevel {
		boss.BulletLevel = level
		log.Printf("[BossSystem] Bullet level raised to %d (health %d)", level, boss.Health)
	}
	return boss.Health <= 0
}
