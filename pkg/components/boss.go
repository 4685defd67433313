package components

// BossComponent 头目
type BossComponent struct {
	Health      int
	SpeedX      float64 // 碰墙时取反
	ShootDelay  int64
	LastShot    int64
	BulletLevel int // [1,5]，只增不减
}
