package scenes

import (
	"github.com/decker502/bullethell/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 每帧提供一次输入快照
type InputSource interface {
	Read() game.InputState
}

// EbitenInput 从键盘、鼠标和触摸屏读取输入
//
// 方向键控制左右移动，Esc 退出，鼠标左键或触摸按下产生一次点击。
// 触摸屏上按住左半屏左移，按住右半屏右移。
type EbitenInput struct {
	screenWidth float64
	touchIDs    []ebiten.TouchID
}

// NewEbitenInput 创建输入源，screenWidth 为逻辑画面宽度
func NewEbitenInput(screenWidth float64) *EbitenInput {
	return &EbitenInput{screenWidth: screenWidth}
}

// Read 读取本帧输入
func (in *EbitenInput) Read() game.InputState {
	state := game.InputState{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		state.Clicks = append(state.Clicks, game.Point{X: float64(x), Y: float64(y)})
	}

	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		state.Clicks = append(state.Clicks, game.Point{X: float64(x), Y: float64(y)})
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		if float64(x) < in.screenWidth/2 {
			state.MoveLeft = true
		} else {
			state.MoveRight = true
		}
	}
	return state
}
