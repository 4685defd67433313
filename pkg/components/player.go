package components

import "github.com/decker502/bullethell/pkg/ecs"

// PlayerComponent 玩家飞船状态
// 所有时间字段为游戏开始后的毫秒数
type PlayerComponent struct {
	Speed       float64 // 每帧水平移动像素
	Lives       int
	WeaponLevel int   // [1, MaxWeaponLevel]
	ShootDelay  int64 // 随升级递减，不低于下限
	LastShot    int64

	// 无敌与闪烁（受击无敌和护盾共用同一个计时器）
	IsInvincible        bool
	InvincibleStartTime int64
	IsVisible           bool
	LastFlashTime       int64

	// 技能
	HasSplitShot           bool
	SplitShotEndTime       int64
	HasElectromagneticWave bool // 激活后永久有效

	// 僚机与无人机，按加入顺序排列
	Wingmen []ecs.EntityID
	Drones  []ecs.EntityID
}

// WingmanCount 当前僚机数量
func (p *PlayerComponent) WingmanCount() int {
	return len(p.Wingmen)
}

// DroneCount 当前无人机数量
func (p *PlayerComponent) DroneCount() int {
	return len(p.Drones)
}
