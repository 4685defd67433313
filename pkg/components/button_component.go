package components

import "github.com/decker502/bullethell/pkg/types"

// ButtonComponent 技能选择按钮
// X/Y 为左上角坐标
type ButtonComponent struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Label  string
	Index  int // 在本轮选项中的序号（从 0 开始）
	Skill  types.SkillType
}

// Contains 点是否严格位于按钮矩形内部（边界不算）
func (b *ButtonComponent) Contains(px, py float64) bool {
	return px > b.X && px < b.X+b.Width &&
		py > b.Y && py < b.Y+b.Height
}
