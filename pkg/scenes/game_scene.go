package scenes

import (
	"log"

	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/render"
	"github.com/decker502/bullethell/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 一局游戏
//
// 每次 Update 读取一次输入，以时钟的当前时间推进一帧模拟；
// Draw 只读取世界状态进行绘制。
type GameScene struct {
	world    *game.GameWorld
	sim      *systems.Simulation
	renderer *render.RenderSystem
	clock    game.Clock
	input    InputSource
}

// NewGameScene 创建游戏场景并生成初始实体
func NewGameScene(world *game.GameWorld, renderer *render.RenderSystem, clock game.Clock, input InputSource) *GameScene {
	sim := systems.NewSimulation()
	sim.Start(world)

	return &GameScene{
		world:    world,
		sim:      sim,
		renderer: renderer,
		clock:    clock,
		input:    input,
	}
}

// Update 推进一帧
// 收到退出请求时返回 ebiten.Termination
func (s *GameScene) Update(deltaTime float64) error {
	input := s.input.Read()
	if input.Quit {
		log.Printf("[GameScene] Quit requested at %dms, score %d", s.world.Now, s.world.Score)
		return ebiten.Termination
	}

	s.sim.Step(s.world, s.clock.Now(), input)
	return nil
}

// Draw 绘制当前世界
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.renderer != nil {
		s.renderer.Draw(screen, s.world)
	}
}

// World 返回场景持有的世界
func (s *GameScene) World() *game.GameWorld {
	return s.world
}
