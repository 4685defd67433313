package systems

import (
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
)

// checkAABBCollision 检查两个碰撞盒是否重叠
// 碰撞盒中心对齐实体位置，边界刚好接触也算碰撞
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	// 任一轴上没有重叠，则没有碰撞
	return col1.Right(pos1) >= col2.Left(pos2) &&
		col1.Left(pos1) <= col2.Right(pos2) &&
		col1.Bottom(pos1) >= col2.Top(pos2) &&
		col1.Top(pos1) <= col2.Bottom(pos2)
}

// entitiesOverlap 两个存活实体的碰撞盒是否重叠
// 任一实体已销毁或缺少位置/碰撞组件时返回 false
func entitiesOverlap(em *ecs.EntityManager, a, b ecs.EntityID) bool {
	if !em.IsAlive(a) || !em.IsAlive(b) {
		return false
	}
	pos1, ok := ecs.GetComponent[*components.PositionComponent](em, a)
	if !ok {
		return false
	}
	col1, ok := ecs.GetComponent[*components.CollisionComponent](em, a)
	if !ok {
		return false
	}
	pos2, ok := ecs.GetComponent[*components.PositionComponent](em, b)
	if !ok {
		return false
	}
	col2, ok := ecs.GetComponent[*components.CollisionComponent](em, b)
	if !ok {
		return false
	}
	return checkAABBCollision(pos1, col1, pos2, col2)
}

// outOfBounds 碰撞盒是否完全离开画面
func outOfBounds(pos *components.PositionComponent, col *components.CollisionComponent, width, height float64) bool {
	return col.Bottom(pos) < 0 || col.Top(pos) > height || col.Left(pos) > width || col.Right(pos) < 0
}
