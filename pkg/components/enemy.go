package components

// EnemyComponent 敌机
type EnemyComponent struct {
	SpeedX float64 // 水平漂移，重生时保留
	SpeedY float64 // 下落速度，重生时重新随机
}
