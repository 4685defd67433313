package entities

import "image/color"

// 资源缺失时的占位颜色
var (
	ColorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorRed    = color.RGBA{R: 255, A: 255}
	ColorBlue   = color.RGBA{B: 255, A: 255}
	ColorYellow = color.RGBA{R: 255, G: 255, A: 255}
	ColorOrange = color.RGBA{R: 255, G: 165, A: 255}
	ColorCyan   = color.RGBA{G: 255, B: 255, A: 255}
	ColorPurple = color.RGBA{R: 128, B: 128, A: 255}
)

// 图片资源名，与 ResourceManager 中的键一致
const (
	ImagePlayer       = "player"
	ImageEnemy        = "enemy"
	ImageBoss         = "boss"
	ImageWingman      = "wingman"
	ImageDrone        = "drone"
	ImageBouncingBall = "bouncing_ball"
)
