package entities

import (
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// BulletParams 子弹参数
type BulletParams struct {
	X                 float64 // 中心 X
	Edge              float64 // 发射边：向上飞的子弹以底边对齐，向下飞的子弹同样以底边对齐发射者边缘
	Speed             float64
	Angle             float64
	IsElectromagnetic bool
	Source            components.BulletSource
}

// NewBullet 创建子弹实体，并按发射者登记到对应集合
//
// 玩家与僚机子弹进入 GroupPlayerBullets，无人机子弹进入 GroupDroneBullets，
// 头目子弹进入 GroupBossBullets。
func NewBullet(w *game.GameWorld, p BulletParams) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: p.X,
		Y: p.Edge - cfg.Bullet.Height/2,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Bullet.Width,
		Height: cfg.Bullet.Height,
	})
	em.AddComponent(id, &components.BulletComponent{
		Speed:             p.Speed,
		Angle:             p.Angle,
		IsElectromagnetic: p.IsElectromagnetic,
		Source:            p.Source,
	})

	fallback := ColorWhite
	if p.IsElectromagnetic {
		fallback = ColorBlue
	}
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerWorld,
		Width:    cfg.Bullet.Width,
		Height:   cfg.Bullet.Height,
		Fallback: fallback,
		Visible:  true,
	})

	switch p.Source {
	case components.BulletFromDrone:
		em.AddToGroup(id, components.GroupDroneBullets)
	case components.BulletFromBoss:
		em.AddToGroup(id, components.GroupBossBullets)
	default:
		em.AddToGroup(id, components.GroupPlayerBullets)
	}
	return id
}
