package entities

import (
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// NewFireball 在屏幕顶部随机水平位置创建火球
func NewFireball(w *game.GameWorld) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager
	size := cfg.Fireball.Size

	left := float64(w.RandRange(0, int(cfg.Screen.Width-size)))

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: left + size/2, Y: size / 2})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.FireballComponent{
		Speed: float64(w.RandRange(cfg.Fireball.MinSpeed, cfg.Fireball.MaxSpeed)),
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerWorld,
		Width:    size,
		Height:   size,
		Fallback: ColorOrange,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupFireballs)
	return id
}

// NewBouncingBall 在屏幕内部随机位置创建弹球，两个轴的速度各自随机取正负
func NewBouncingBall(w *game.GameWorld) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager
	size := cfg.BouncingBall.Size
	margin := int(cfg.BouncingBall.SpawnMargin)

	x := float64(w.RandRange(margin, int(cfg.Screen.Width)-margin))
	y := float64(w.RandRange(margin, int(cfg.Screen.Height)-margin))

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.BouncingBallComponent{
		SpeedX: randomSign(w) * cfg.BouncingBall.Speed,
		SpeedY: randomSign(w) * cfg.BouncingBall.Speed,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerWorld,
		ImageKey: ImageBouncingBall,
		Width:    size,
		Height:   size,
		Fallback: ColorYellow,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupBouncingBalls)
	return id
}

func randomSign(w *game.GameWorld) float64 {
	if w.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}
