// Package render 把 GameWorld 绘制到 ebiten 画面
//
// 渲染只读取世界状态，不修改任何组件。
package render

import (
	"image/color"

	"github.com/decker502/bullethell/pkg/assets"
	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBlack     = color.RGBA{A: 255}
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorRed       = color.RGBA{R: 255, A: 255}
	colorGreen     = color.RGBA{G: 255, A: 255}
	colorYellow    = color.RGBA{R: 255, G: 255, A: 255}
	colorGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorDim       = color.RGBA{A: 150}
)

// basicfont 字号较小，状态栏与标题放大绘制；按钮说明较长，保持原尺寸
const (
	textScale   = 2
	buttonScale = 1
)

// RenderSystem 按层级绘制所有实体、状态栏和技能菜单
type RenderSystem struct {
	rm   *assets.ResourceManager
	face *text.GoXFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(rm *assets.ResourceManager) *RenderSystem {
	return &RenderSystem{
		rm:   rm,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, w *game.GameWorld) {
	screen.Fill(colorBlack)

	if msg, clr, ended := EndMessage(w.State); ended {
		s.drawText(screen, msg, w.Config.Screen.Width/2, w.Config.Screen.Height/2, clr, textScale, true, true)
		return
	}

	for _, layer := range types.RenderLayers() {
		if layer == types.LayerOverlay {
			s.drawOverlay(screen, w)
			continue
		}
		s.drawLayer(screen, w, layer)
	}
}

// drawOverlay 界面层：HUD 文字，技能菜单打开时再叠加遮罩和按钮
func (s *RenderSystem) drawOverlay(screen *ebiten.Image, w *game.GameWorld) {
	for _, line := range HUDLines(w) {
		s.drawText(screen, line.Text, line.X, line.Y, line.Color, textScale, line.Centered, false)
	}

	if w.State == types.StateSkillSelection {
		s.drawSkillMenu(screen, w)
	}
}

// drawLayer 绘制一个层级中所有可见实体
// 有图片时按精灵尺寸缩放绘制，否则绘制占位矩形
func (s *RenderSystem) drawLayer(screen *ebiten.Image, w *game.GameWorld, layer types.RenderLayer) {
	em := w.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](em) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		if sprite.Layer != layer || !sprite.Visible {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		left := pos.X - sprite.Width/2
		top := pos.Y - sprite.Height/2

		if img := s.rm.LoadImage(sprite.ImageKey); img != nil {
			bounds := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sprite.Width/float64(bounds.Dx()), sprite.Height/float64(bounds.Dy()))
			op.GeoM.Translate(left, top)
			screen.DrawImage(img, op)
			continue
		}
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(sprite.Width), float32(sprite.Height), sprite.Fallback, false)
	}
}

// drawSkillMenu 半透明遮罩、标题和技能按钮
func (s *RenderSystem) drawSkillMenu(screen *ebiten.Image, w *game.GameWorld) {
	width, height := w.Config.Screen.Width, w.Config.Screen.Height
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), colorDim, false)
	s.drawText(screen, "Choose a Skill:", width/2, height/2-150, colorGreen, textScale, true, true)

	em := w.EntityManager
	for _, id := range em.Group(components.GroupSkillButtons) {
		button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
		if !ok {
			continue
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok && (sprite.Layer != types.LayerOverlay || !sprite.Visible) {
			continue
		}
		x, y := float32(button.X), float32(button.Y)
		bw, bh := float32(button.Width), float32(button.Height)
		vector.DrawFilledRect(screen, x-2, y-2, bw+4, bh+4, colorLightGray, false)
		vector.DrawFilledRect(screen, x, y, bw, bh, colorGray, false)
		s.drawText(screen, button.Label, button.X+button.Width/2, button.Y+button.Height/2, colorWhite, buttonScale, true, true)
	}
}

// drawText 按 scale 倍绘制文字
// centerX 为 true 时 x 为水平中心，centerY 为 true 时 y 为垂直中心
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color, scale float64, centerX, centerY bool) {
	tw, th := text.Measure(str, s.face, 0)
	tw *= scale
	th *= scale
	if centerX {
		x -= tw / 2
	}
	if centerY {
		y -= th / 2
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
