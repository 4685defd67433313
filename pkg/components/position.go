package components

// PositionComponent 实体中心点坐标（屏幕坐标，像素）
type PositionComponent struct {
	X float64
	Y float64
}
