package systems

import (
	"log"
	"math"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// CollisionSystem 碰撞结算
//
// 普通阶段的结算顺序固定：
//  1. 玩家/僚机子弹 × 敌机（电磁子弹触发连锁闪电）
//  2. 火球 × 敌机（双方销毁）
//  3. 弹球 × 敌机（只销毁敌机）
//  4. 无人机子弹 × 敌机（只销毁敌机，子弹穿透）
//  5. 无人机 × 敌机（只销毁敌机）
//  6. 玩家 × 敌机
//
// 每个被击毁的敌机都会立即补充一架新敌机，场上敌机数量保持不变。
type CollisionSystem struct {
	player      *PlayerSystem
	boss        *BossSystem
	progression *ProgressionSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(player *PlayerSystem, boss *BossSystem, progression *ProgressionSystem) *CollisionSystem {
	return &CollisionSystem{
		player:      player,
		boss:        boss,
		progression: progression,
	}
}

// UpdatePlaying 普通阶段的碰撞结算
func (s *CollisionSystem) UpdatePlaying(w *game.GameWorld) {
	s.resolveBulletHits(w)
	s.resolveFireballHits(w)
	s.resolveEnemyOnlyHits(w, components.GroupBouncingBalls)
	s.resolveEnemyOnlyHits(w, components.GroupDroneBullets)
	s.resolveEnemyOnlyHits(w, components.GroupDrones)
	s.resolvePlayerHits(w)
}

// UpdateBossFight 头目阶段的碰撞结算
func (s *CollisionSystem) UpdateBossFight(w *game.GameWorld) {
	if !w.BossAlive() {
		return
	}
	em := w.EntityManager

	// 玩家、僚机与无人机的子弹每颗造成 1 点伤害并消失
	for _, group := range []ecs.GroupName{components.GroupPlayerBullets, components.GroupDroneBullets} {
		for _, bulletID := range em.Group(group) {
			if !entitiesOverlap(em, bulletID, w.BossID) {
				continue
			}
			em.DestroyEntity(bulletID)
			if s.boss.TakeDamage(w, 1) {
				s.defeatBoss(w)
				return
			}
		}
	}

	for _, bulletID := range em.Group(components.GroupBossBullets) {
		if !entitiesOverlap(em, bulletID, w.PlayerID) {
			continue
		}
		em.DestroyEntity(bulletID)
		if s.player.TakeDamage(w) && s.playerOutOfLives(w) {
			w.SetState(types.StatePlayerDefeated)
			return
		}
	}
}

// defeatBoss 头目被击败：进入胜利状态并清除全部实体
func (s *CollisionSystem) defeatBoss(w *game.GameWorld) {
	log.Printf("[CollisionSystem] Boss defeated at %dms, final score %d", w.Now, w.Score)
	w.SetState(types.StateBossDefeated)
	w.EntityManager.DestroyAll()
	w.BossID = 0
}

// bulletHit 一架被子弹命中的敌机
type bulletHit struct {
	x, y            float64
	electromagnetic bool
}

// resolveBulletHits 玩家/僚机子弹 × 敌机
//
// 先配对：每颗子弹最多消耗一次，一架敌机被多颗子弹同时命中时这些子弹全部消失，
// 所有命中的子弹和敌机在结算前一起销毁。
// 再逐架结算：计分、连锁闪电、补充敌机、检查分数阈值。
// 连锁闪电只波及结算时仍存活的敌机，本帧被直接命中的敌机不会被重复计分。
func (s *CollisionSystem) resolveBulletHits(w *game.GameWorld) {
	em := w.EntityManager
	bullets := em.Group(components.GroupPlayerBullets)
	if len(bullets) == 0 {
		return
	}

	var hits []bulletHit
	for _, enemyID := range em.Group(components.GroupEnemies) {
		hit := bulletHit{}
		matched := false
		for _, bulletID := range bullets {
			if !entitiesOverlap(em, bulletID, enemyID) {
				continue
			}
			if bullet, ok := ecs.GetComponent[*components.BulletComponent](em, bulletID); ok && bullet.IsElectromagnetic {
				hit.electromagnetic = true
			}
			em.DestroyEntity(bulletID)
			matched = true
		}
		if !matched {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemyID)
		hit.x, hit.y = pos.X, pos.Y
		hits = append(hits, hit)
		em.DestroyEntity(enemyID)
	}

	for _, hit := range hits {
		w.AddScore(w.Config.Progression.ScorePerKill)
		if hit.electromagnetic {
			s.chainLightning(w, hit.x, hit.y)
		}
		entities.NewEnemy(w)

		s.progression.CheckThresholds(w)
	}
}

// chainLightning 以 (x, y) 为中心，击毁距离小于半径的所有敌机
// 只传递一跳：被闪电击毁的敌机不会继续触发闪电
func (s *CollisionSystem) chainLightning(w *game.GameWorld, x, y float64) {
	em := w.EntityManager
	radius := w.Config.Electromagnetic.Radius

	victims := 0
	for _, id := range em.Group(components.GroupEnemies) {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if math.Hypot(pos.X-x, pos.Y-y) < radius {
			s.destroyEnemy(w, id, true)
			entities.NewEnemy(w)
			victims++
		}
	}
	if victims > 0 {
		log.Printf("[CollisionSystem] Chain lightning destroyed %d enemies", victims)
	}
}

// resolveFireballHits 火球 × 敌机，双方都被销毁
func (s *CollisionSystem) resolveFireballHits(w *game.GameWorld) {
	em := w.EntityManager
	fireballs := em.Group(components.GroupFireballs)
	if len(fireballs) == 0 {
		return
	}

	for _, enemyID := range em.Group(components.GroupEnemies) {
		hit := false
		for _, fireballID := range fireballs {
			if entitiesOverlap(em, fireballID, enemyID) {
				em.DestroyEntity(fireballID)
				hit = true
			}
		}
		if hit {
			s.destroyEnemy(w, enemyID, true)
			entities.NewEnemy(w)
			s.progression.CheckThresholds(w)
		}
	}
}

// resolveEnemyOnlyHits 指定分组 × 敌机，只销毁敌机
func (s *CollisionSystem) resolveEnemyOnlyHits(w *game.GameWorld, group ecs.GroupName) {
	em := w.EntityManager
	hitters := em.Group(group)
	if len(hitters) == 0 {
		return
	}

	for _, enemyID := range em.Group(components.GroupEnemies) {
		for _, hitterID := range hitters {
			if entitiesOverlap(em, hitterID, enemyID) {
				s.destroyEnemy(w, enemyID, true)
				entities.NewEnemy(w)
				s.progression.CheckThresholds(w)
				break
			}
		}
	}
}

// resolvePlayerHits 玩家 × 敌机：敌机销毁（不计分），玩家受伤
func (s *CollisionSystem) resolvePlayerHits(w *game.GameWorld) {
	em := w.EntityManager
	if !em.IsAlive(w.PlayerID) {
		return
	}

	for _, enemyID := range em.Group(components.GroupEnemies) {
		if !entitiesOverlap(em, w.PlayerID, enemyID) {
			continue
		}
		s.destroyEnemy(w, enemyID, false)
		entities.NewEnemy(w)

		if s.player.TakeDamage(w) && s.playerOutOfLives(w) {
			w.SetState(types.StatePlayerDefeated)
			return
		}
	}
}

// destroyEnemy 销毁敌机，scored 为 true 时加分
func (s *CollisionSystem) destroyEnemy(w *game.GameWorld, id ecs.EntityID, scored bool) {
	if !w.EntityManager.IsAlive(id) {
		return
	}
	w.EntityManager.DestroyEntity(id)
	if scored {
		w.AddScore(w.Config.Progression.ScorePerKill)
	}
}

func (s *CollisionSystem) playerOutOfLives(w *game.GameWorld) bool {
	p, ok := w.Player()
	return !ok || p.Lives <= 0
}
