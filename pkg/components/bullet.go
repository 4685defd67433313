package components

// BulletSource 子弹发射者
type BulletSource int

const (
	BulletFromPlayer BulletSource = iota
	BulletFromWingman
	BulletFromDrone
	BulletFromBoss
)

// BulletComponent 子弹
// 每帧 Y += Speed*cos(Angle)，X += Speed*sin(Angle)：角度为零时沿竖直方向飞行
type BulletComponent struct {
	Speed             float64 // 负值向上，正值向下
	Angle             float64 // 弧度
	IsElectromagnetic bool    // 击杀时触发连锁闪电
	Source            BulletSource
}
