package types

// GameStateType 顶层游戏状态
type GameStateType int

const (
	// StatePlaying 正常游戏中
	StatePlaying GameStateType = iota
	// StateSkillSelection 技能选择菜单（模拟暂停）
	StateSkillSelection
	// StateBossFight 头目战
	StateBossFight
	// StateBossDefeated 头目被击败（终止状态）
	StateBossDefeated
	// StatePlayerDefeated 玩家生命归零（终止状态）
	StatePlayerDefeated
)

// String 返回状态名称，用于日志
func (s GameStateType) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateSkillSelection:
		return "SkillSelection"
	case StateBossFight:
		return "BossFight"
	case StateBossDefeated:
		return "BossDefeated"
	case StatePlayerDefeated:
		return "PlayerDefeated"
	default:
		return "Unknown"
	}
}

// IsTerminal 终止状态不再接受任何输入与模拟
func (s GameStateType) IsTerminal() bool {
	return s == StateBossDefeated || s == StatePlayerDefeated
}

// Simulates 只有 Playing 和 BossFight 运行实体模拟，移动输入也只在这两个状态生效
func (s GameStateType) Simulates() bool {
	return s == StatePlaying || s == StateBossFight
}
