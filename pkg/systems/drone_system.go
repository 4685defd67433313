package systems

import (
	"math"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
)

// DroneSystem 无人机环绕与射击
type DroneSystem struct{}

// NewDroneSystem 创建无人机系统
func NewDroneSystem() *DroneSystem {
	return &DroneSystem{}
}

// Update 每帧推进环绕角并跟随主人，冷却结束后向上开火
func (s *DroneSystem) Update(w *game.GameWorld) {
	em := w.EntityManager
	cfg := w.Config.Drone

	for _, id := range em.Group(components.GroupDrones) {
		drone, ok := ecs.GetComponent[*components.DroneComponent](em, id)
		if !ok {
			continue
		}
		ownerPos, ok := ecs.GetComponent[*components.PositionComponent](em, drone.Owner)
		if !ok || !em.IsAlive(drone.Owner) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)

		drone.Angle += cfg.OrbitSpeed
		pos.X = ownerPos.X + cfg.Radius*math.Cos(drone.Angle)
		pos.Y = ownerPos.Y + cfg.Radius*math.Sin(drone.Angle)

		if w.Now-drone.LastShot > cfg.ShootCooldown {
			entities.NewBullet(w, entities.BulletParams{
				X:      pos.X,
				Edge:   col.Top(pos),
				Speed:  cfg.BulletSpeed,
				Source: components.BulletFromDrone,
			})
			drone.LastShot = w.Now
		}
	}
}
