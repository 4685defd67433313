package components

// CollisionComponent 定义实体的轴对齐碰撞盒
// 碰撞盒以 PositionComponent 为中心
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Left 碰撞盒左边界
func (c *CollisionComponent) Left(pos *PositionComponent) float64 { return pos.X - c.Width/2 }

// Right 碰撞盒右边界
func (c *CollisionComponent) Right(pos *PositionComponent) float64 { return pos.X + c.Width/2 }

// Top 碰撞盒上边界
func (c *CollisionComponent) Top(pos *PositionComponent) float64 { return pos.Y - c.Height/2 }

// Bottom 碰撞盒下边界
func (c *CollisionComponent) Bottom(pos *PositionComponent) float64 { return pos.Y + c.Height/2 }
