package entities

import (
	"fmt"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// NewSkillButton 创建技能选择按钮
// 按钮纵向排列在屏幕中部，index 从 0 开始，标签为 "1. 说明"
func NewSkillButton(w *game.GameWorld, index int, skill types.SkillType) ecs.EntityID {
	cfg := w.Config
	menu := cfg.SkillMenu
	em := w.EntityManager

	x := cfg.Screen.Width/2 - menu.ButtonWidth/2
	y := cfg.Screen.Height/2 + menu.StartOffsetY + float64(index)*(menu.ButtonHeight+menu.ButtonSpacing)

	id := em.CreateEntity()
	em.AddComponent(id, &components.ButtonComponent{
		X:      x,
		Y:      y,
		Width:  menu.ButtonWidth,
		Height: menu.ButtonHeight,
		Label:  fmt.Sprintf("%d. %s", index+1, skill.Description()),
		Index:  index,
		Skill:  skill,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:   types.LayerOverlay,
		Width:   menu.ButtonWidth,
		Height:  menu.ButtonHeight,
		Visible: true,
	})
	em.AddToGroup(id, components.GroupSkillButtons)
	return id
}
