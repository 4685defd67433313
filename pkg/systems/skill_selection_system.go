package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// SkillSelectionSystem 技能选择菜单
//
// 打开时从全部技能中不重复地随机抽取若干个生成按钮，游戏暂停；
// 点中某个按钮后应用对应技能、销毁按钮并回到普通阶段。
// 点在按钮之外的点击被忽略，菜单保持打开。
type SkillSelectionSystem struct {
	player *PlayerSystem
}

// NewSkillSelectionSystem 创建技能选择系统
func NewSkillSelectionSystem(player *PlayerSystem) *SkillSelectionSystem {
	return &SkillSelectionSystem{player: player}
}

// Open 抽取技能并打开菜单
func (s *SkillSelectionSystem) Open(w *game.GameWorld) {
	s.clearButtons(w)

	all := types.AllSkills()
	count := min(w.Config.Progression.SkillOfferCount, len(all))
	perm := w.Rand.Perm(len(all))

	w.SkillOffer = make([]types.SkillType, 0, count)
	for i := 0; i < count; i++ {
		skill := all[perm[i]]
		w.SkillOffer = append(w.SkillOffer, skill)
		entities.NewSkillButton(w, i, skill)
	}

	w.SetState(types.StateSkillSelection)
	log.Printf("[SkillSelectionSystem] Offering skills %v", w.SkillOffer)
}

// HandleClicks 处理本帧的点击，返回是否选中了技能
// 同一帧内只有第一个命中按钮的点击生效
func (s *SkillSelectionSystem) HandleClicks(w *game.GameWorld, clicks []game.Point) bool {
	if w.State != types.StateSkillSelection {
		return false
	}
	em := w.EntityManager

	for _, click := range clicks {
		for _, id := range em.Group(components.GroupSkillButtons) {
			button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
			if !ok || !button.Contains(click.X, click.Y) {
				continue
			}
			s.Select(w, button.Skill)
			return true
		}
	}
	return false
}

// Select 应用技能并关闭菜单
func (s *SkillSelectionSystem) Select(w *game.GameWorld, skill types.SkillType) {
	w.SelectedSkills[skill] = true

	if skill.IsPassive() {
		// 由生成系统根据 SelectedSkills 解锁
		log.Printf("[SkillSelectionSystem] Unlocked %s", skill)
	} else {
		s.activate(w, skill)
		log.Printf("[SkillSelectionSystem] Selected %s", skill)
	}
	s.clearButtons(w)
	w.SkillOffer = nil
	w.SetState(types.StatePlaying)
}

// activate 立即作用于玩家的技能
func (s *SkillSelectionSystem) activate(w *game.GameWorld, skill types.SkillType) {
	switch skill {
	case types.SkillShield:
		s.player.ActivateShield(w)
	case types.SkillSplitShot:
		s.player.ActivateSplitShot(w)
	case types.SkillDrone:
		s.player.ActivateDrone(w)
	case types.SkillElectromagneticWave:
		s.player.ActivateElectromagneticWave(w)
	}
}

func (s *SkillSelectionSystem) clearButtons(w *game.GameWorld) {
	em := w.EntityManager
	for _, id := range em.Group(components.GroupSkillButtons) {
		em.DestroyEntity(id)
	}
}
