package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// ProgressionSystem 分数阈值奖励与头目战触发
//
// 四条阈值（升级、加命、僚机、技能）各自独立：分数达到阈值时发放奖励，
// 阈值增加一个步长。一次加分跨过多个阈值时每个阈值各发放一次。
type ProgressionSystem struct {
	player *PlayerSystem
	skills *SkillSelectionSystem
}

// NewProgressionSystem 创建进度系统
func NewProgressionSystem(player *PlayerSystem, skills *SkillSelectionSystem) *ProgressionSystem {
	return &ProgressionSystem{
		player: player,
		skills: skills,
	}
}

// CheckThresholds 检查并发放所有已跨过的阈值奖励
func (s *ProgressionSystem) CheckThresholds(w *game.GameWorld) {
	cfg := w.Config.Progression

	for w.Score >= w.NextUpgradeScore {
		s.player.UpgradeWeapon(w)
		w.NextUpgradeScore += cfg.ScoreForUpgrade
	}

	for w.Score >= w.NextLifeScore {
		s.player.AddLife(w)
		w.NextLifeScore += cfg.ScoreForLife
	}

	for w.Score >= w.NextWingmanScore {
		s.player.AddWingman(w)
		w.NextWingmanScore += cfg.ScoreForWingman
	}

	for w.Score >= w.NextSkillScore {
		// 菜单已经打开时只推进阈值，不重复打开
		if w.State == types.StatePlaying {
			s.skills.Open(w)
		}
		w.NextSkillScore += cfg.ScoreForSkill
	}
}

// CheckBossTrigger 分数达到头目战分数且没有头目时开始头目战
// 清除敌机、玩家方子弹、火球和弹球，僚机与无人机保留。返回是否触发
func (s *ProgressionSystem) CheckBossTrigger(w *game.GameWorld) bool {
	if w.Score < w.Config.Progression.BossFightScore || w.BossAlive() {
		return false
	}

	em := w.EntityManager
	cleared := 0
	for _, group := range bossClearedGroups {
		for _, id := range em.Group(group) {
			em.DestroyEntity(id)
			cleared++
		}
	}

	entities.NewBoss(w)
	w.SetState(types.StateBossFight)
	log.Printf("[ProgressionSystem] Boss fight started at score %d, cleared %d entities", w.Score, cleared)
	return true
}

// bossClearedGroups 头目战开始时清空的分组
var bossClearedGroups = []ecs.GroupName{
	components.GroupEnemies,
	components.GroupPlayerBullets,
	components.GroupDroneBullets,
	components.GroupFireballs,
	components.GroupBouncingBalls,
}
