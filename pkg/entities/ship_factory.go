package entities

import (
	"log"
	"math"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// NewPlayer 创建玩家飞船并记录到 w.PlayerID
// 初始位置：水平居中，底边距屏幕底部 BottomMargin
func NewPlayer(w *game.GameWorld) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Screen.Height - cfg.Player.BottomMargin - cfg.Player.Height/2,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Speed:       cfg.Player.Speed,
		Lives:       cfg.Player.InitialLives,
		WeaponLevel: 1,
		ShootDelay:  cfg.Player.ShootDelay,
		IsVisible:   true,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerPlayerGroup,
		ImageKey: ImagePlayer,
		Width:    cfg.Player.Width,
		Height:   cfg.Player.Height,
		Fallback: ColorBlue,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupPlayer)

	w.PlayerID = id
	return id
}

// NewEnemy 在可见区域上方随机位置创建敌机
func NewEnemy(w *game.GameWorld) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	id := em.CreateEntity()
	x, y := RandomEnemySpawnPoint(w)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Enemy.Width,
		Height: cfg.Enemy.Height,
	})
	em.AddComponent(id, &components.EnemyComponent{
		SpeedX: float64(w.RandRange(cfg.Enemy.MinSpeedX, cfg.Enemy.MaxSpeedX)),
		SpeedY: RandomEnemySpeedY(w),
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerWorld,
		ImageKey: ImageEnemy,
		Width:    cfg.Enemy.Width,
		Height:   cfg.Enemy.Height,
		Fallback: ColorRed,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupEnemies)
	return id
}

// RandomEnemySpawnPoint 敌机生成点（中心坐标）
// 左边界在 [0, W-w)，上边界在 [SpawnMinY, SpawnMaxY)
func RandomEnemySpawnPoint(w *game.GameWorld) (float64, float64) {
	cfg := w.Config
	left := float64(w.RandRange(0, int(cfg.Screen.Width-cfg.Enemy.Width)))
	top := float64(w.RandRange(cfg.Enemy.SpawnMinY, cfg.Enemy.SpawnMaxY))
	return left + cfg.Enemy.Width/2, top + cfg.Enemy.Height/2
}

// RandomEnemySpeedY 敌机下落速度
func RandomEnemySpeedY(w *game.GameWorld) float64 {
	return float64(w.RandRange(w.Config.Enemy.MinSpeedY, w.Config.Enemy.MaxSpeedY))
}

// NewBoss 创建头目并记录到 w.BossID
// 初始位置：水平居中，上边界在 Top
func NewBoss(w *game.GameWorld) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Screen.Width / 2,
		Y: cfg.Boss.Top + cfg.Boss.Height/2,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Boss.Width,
		Height: cfg.Boss.Height,
	})
	em.AddComponent(id, &components.BossComponent{
		Health:      cfg.Boss.Health,
		SpeedX:      cfg.Boss.SpeedX,
		ShootDelay:  cfg.Boss.ShootDelay,
		LastShot:    0, // 冷却从开局算起，出场后第一次更新即开火
		BulletLevel: 1,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerWorld,
		ImageKey: ImageBoss,
		Width:    cfg.Boss.Width,
		Height:   cfg.Boss.Height,
		Fallback: ColorPurple,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupBoss)

	w.BossID = id
	log.Printf("[BossFactory] Boss %d spawned with health %d", id, cfg.Boss.Health)
	return id
}

// NewWingman 在指定位置创建僚机
// 位置随后由玩家系统按编队表重算
func NewWingman(w *game.GameWorld, x, y float64) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Wingman.Width,
		Height: cfg.Wingman.Height,
	})
	em.AddComponent(id, &components.WingmanComponent{})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerPlayerGroup,
		ImageKey: ImageWingman,
		Width:    cfg.Wingman.Width,
		Height:   cfg.Wingman.Height,
		Fallback: ColorWhite,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupWingmen)
	return id
}

// NewDrone 创建环绕 owner 的无人机，初始角度在 [0, 2π) 内随机
func NewDrone(w *game.GameWorld, owner ecs.EntityID) ecs.EntityID {
	cfg := w.Config
	em := w.EntityManager

	angle := w.Rand.Float64() * 2 * math.Pi
	x, y := 0.0, 0.0
	if ownerPos, ok := ecs.GetComponent[*components.PositionComponent](em, owner); ok {
		x = ownerPos.X + cfg.Drone.Radius*math.Cos(angle)
		y = ownerPos.Y + cfg.Drone.Radius*math.Sin(angle)
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Drone.Width,
		Height: cfg.Drone.Height,
	})
	em.AddComponent(id, &components.DroneComponent{
		Owner: owner,
		Angle: angle,
	})
	em.AddComponent(id, &components.SpriteComponent{
		Layer:    types.LayerPlayerGroup,
		ImageKey: ImageDrone,
		Width:    cfg.Drone.Width,
		Height:   cfg.Drone.Height,
		Fallback: ColorCyan,
		Visible:  true,
	})
	em.AddToGroup(id, components.GroupDrones)
	return id
}
