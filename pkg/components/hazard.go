package components

// FireballComponent 火球：匀速下落，越过底边后销毁
type FireballComponent struct {
	Speed float64
}

// BouncingBallComponent 弹球：在四面墙之间无损反弹，不会被碰撞销毁
type BouncingBallComponent struct {
	SpeedX float64
	SpeedY float64
}
