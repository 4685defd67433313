package components

import "github.com/decker502/bullethell/pkg/ecs"

// DroneComponent 环绕玩家飞行的无人机
type DroneComponent struct {
	Owner    ecs.EntityID // 环绕的玩家实体
	Angle    float64      // 当前环绕角（弧度）
	LastShot int64
}
