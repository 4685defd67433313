package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景，各自负责更新与绘制
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上次更新的秒数
	// 返回 ebiten.Termination 时结束主循环
	Update(deltaTime float64) error

	// Draw 绘制场景到 screen
	Draw(screen *ebiten.Image)
}
