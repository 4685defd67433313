package components

import (
	"image/color"

	"github.com/decker502/bullethell/pkg/types"
)

// SpriteComponent 渲染数据
// ImageKey 对应资源管理器中的图片名，图片缺失时以 Fallback 颜色绘制 Width×Height 的方块
type SpriteComponent struct {
	Layer    types.RenderLayer
	ImageKey string
	Width    float64
	Height   float64
	Fallback color.RGBA
	Visible  bool // 无敌闪烁时由玩家系统切换
}
