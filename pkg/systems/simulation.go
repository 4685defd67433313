package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// Simulation 按顶层状态驱动各个系统，每次调用 Step 推进一帧
//
// 帧内顺序：
//  1. 技能菜单打开时处理点击
//  2. 普通阶段：检查头目战触发（触发后本帧结束）、生成、实体更新、碰撞
//  3. 头目阶段：实体更新、碰撞
//  4. 回收本帧销毁的实体
//
// 技能菜单、胜利和失败状态下不更新任何实体。
type Simulation struct {
	Player      *PlayerSystem
	Bullets     *BulletSystem
	Enemies     *EnemySystem
	Boss        *BossSystem
	Drones      *DroneSystem
	Hazards     *HazardSystem
	Spawn       *SpawnSystem
	Skills      *SkillSelectionSystem
	Progression *ProgressionSystem
	Collision   *CollisionSystem
}

// NewSimulation 创建并连接所有系统
func NewSimulation() *Simulation {
	player := NewPlayerSystem()
	boss := NewBossSystem()
	skills := NewSkillSelectionSystem(player)
	progression := NewProgressionSystem(player, skills)

	return &Simulation{
		Player:      player,
		Bullets:     NewBulletSystem(),
		Enemies:     NewEnemySystem(),
		Boss:        boss,
		Drones:      NewDroneSystem(),
		Hazards:     NewHazardSystem(),
		Spawn:       NewSpawnSystem(),
		Skills:      skills,
		Progression: progression,
		Collision:   NewCollisionSystem(player, boss, progression),
	}
}

// Start 生成玩家和初始敌机
func (s *Simulation) Start(w *game.GameWorld) {
	entities.NewPlayer(w)
	for i := 0; i < w.Config.Spawn.InitialEnemyCount; i++ {
		entities.NewEnemy(w)
	}
	log.Printf("[Simulation] Started with %d enemies", w.Config.Spawn.InitialEnemyCount)
}

// Step 以 now 作为本帧时间推进一帧
func (s *Simulation) Step(w *game.GameWorld, now int64, input game.InputState) {
	w.Now = now

	if w.State == types.StateSkillSelection {
		s.Skills.HandleClicks(w, input.Clicks)
	}

	if w.State.Simulates() {
		if w.State == types.StateBossFight {
			s.stepBossFight(w, input)
		} else {
			s.stepPlaying(w, input)
		}
	}

	w.EntityManager.RemoveMarkedEntities()

	if w.ShouldLogSummary() {
		s.logSummary(w)
	}
}

func (s *Simulation) stepPlaying(w *game.GameWorld, input game.InputState) {
	if s.Progression.CheckBossTrigger(w) {
		return
	}
	s.Spawn.Update(w)
	s.updateEntities(w, input)
	s.Collision.UpdatePlaying(w)
}

func (s *Simulation) stepBossFight(w *game.GameWorld, input game.InputState) {
	s.updateEntities(w, input)
	s.Collision.UpdateBossFight(w)
}

// updateEntities 子弹先移动，本帧新发射的子弹从下一帧开始移动
func (s *Simulation) updateEntities(w *game.GameWorld, input game.InputState) {
	s.Bullets.Update(w)
	s.Enemies.Update(w)
	s.Hazards.Update(w)
	s.Boss.Update(w)
	s.Player.Update(w, input)
	s.Drones.Update(w)
}

func (s *Simulation) logSummary(w *game.GameWorld) {
	em := w.EntityManager
	lives, level := 0, 0
	if p, ok := w.Player(); ok {
		lives, level = p.Lives, p.WeaponLevel
	}
	bullets := em.GroupSize(components.GroupPlayerBullets) +
		em.GroupSize(components.GroupDroneBullets) +
		em.GroupSize(components.GroupBossBullets)

	log.Printf("[Simulation] t=%dms state=%s score=%d lives=%d weapon=%d enemies=%d bullets=%d fireballs=%d balls=%d drones=%d",
		w.Now, w.State, w.Score, lives, level,
		em.GroupSize(components.GroupEnemies), bullets,
		em.GroupSize(components.GroupFireballs),
		em.GroupSize(components.GroupBouncingBalls),
		em.GroupSize(components.GroupDrones))
}
