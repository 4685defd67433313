// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// SkillType 定义技能选择菜单中可选的技能
type SkillType int

const (
	// SkillUnknown 未知技能
	SkillUnknown SkillType = iota
	// SkillFireball 火球：定期从屏幕顶部落下的火球
	SkillFireball
	// SkillSplitShot 分裂射击：玩家子弹分裂，持续 10 秒
	SkillSplitShot
	// SkillBouncingBall 弹球：最多 5 个，每 30 秒生成一个
	SkillBouncingBall
	// SkillDrone 无人机：环绕玩家并射击
	SkillDrone
	// SkillShield 护盾：无敌 10 秒
	SkillShield
	// SkillElectromagneticWave 电磁波：子弹附带连锁闪电
	SkillElectromagneticWave
)

// AllSkills 返回所有可供抽取的技能（固定顺序）
func AllSkills() []SkillType {
	return []SkillType{
		SkillFireball,
		SkillSplitShot,
		SkillBouncingBall,
		SkillDrone,
		SkillShield,
		SkillElectromagneticWave,
	}
}

// String 返回技能的显示名称
func (s SkillType) String() string {
	switch s {
	case SkillFireball:
		return "Fireball"
	case SkillSplitShot:
		return "Split Shot"
	case SkillBouncingBall:
		return "Bouncing Ball"
	case SkillDrone:
		return "Drone"
	case SkillShield:
		return "Shield"
	case SkillElectromagneticWave:
		return "Electromagnetic Wave"
	default:
		return "Unknown"
	}
}

// Description 返回技能菜单中显示的说明文字
func (s SkillType) Description() string {
	switch s {
	case SkillFireball:
		return "Fireball (randomly spawns on screen every few seconds)"
	case SkillSplitShot:
		return "Split Shot (player bullets split, lasts 10s)"
	case SkillBouncingBall:
		return "Bouncing Ball (max 5, one generated every 30s)"
	case SkillDrone:
		return "Drone (shoots in a circle)"
	case SkillShield:
		return "Shield (player invincible, lasts 10s)"
	case SkillElectromagneticWave:
		return "Electromagnetic Wave (bullets with chain lightning)"
	default:
		return ""
	}
}

// IsPassive 被动技能选中后不直接作用于玩家，而是解锁定期生成的场景实体
func (s SkillType) IsPassive() bool {
	return s == SkillFireball || s == SkillBouncingBall
}
