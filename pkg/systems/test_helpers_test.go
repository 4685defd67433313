package systems

import (
	"testing"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/config"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
)

// newTestWorld 创建使用默认配置和固定种子的空世界
func newTestWorld(t *testing.T) *game.GameWorld {
	t.Helper()
	return game.NewGameWorld(config.DefaultGameConfig(), 42)
}

// newTestWorldWithPlayer 创建带玩家的世界，玩家位于 (400, 565)
func newTestWorldWithPlayer(t *testing.T) (*game.GameWorld, *components.PlayerComponent) {
	t.Helper()
	w := newTestWorld(t)
	entities.NewPlayer(w)
	p, ok := w.Player()
	if !ok {
		t.Fatal("player should exist after NewPlayer")
	}
	return w, p
}

// placeEnemy 在指定中心位置放置一架静止的敌机
func placeEnemy(t *testing.T, w *game.GameWorld, x, y float64) ecs.EntityID {
	t.Helper()
	id := entities.NewEnemy(w)
	pos := positionOf(t, w, id)
	pos.X, pos.Y = x, y
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.EntityManager, id)
	enemy.SpeedX, enemy.SpeedY = 0, 0
	return id
}

// placeBullet 在指定中心位置放置一颗向上飞的子弹
func placeBullet(t *testing.T, w *game.GameWorld, x, y float64, source components.BulletSource, electromagnetic bool) ecs.EntityID {
	t.Helper()
	return entities.NewBullet(w, entities.BulletParams{
		X:                 x,
		Edge:              y + w.Config.Bullet.Height/2,
		Speed:             w.Config.Player.BulletSpeed,
		IsElectromagnetic: electromagnetic,
		Source:            source,
	})
}

func positionOf(t *testing.T, w *game.GameWorld, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EntityManager, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}

func approxEqual(a, b float64) bool {
	const epsilon = 1e-9
	d := a - b
	return d < epsilon && d > -epsilon
}
