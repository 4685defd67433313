package render

import (
	"fmt"
	"image/color"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// HUD 文字布局
const (
	hudLeft        = 10
	hudTop         = 10
	hudLineSpacing = 40
)

// HUDLine 一行状态文字
type HUDLine struct {
	Text     string
	X, Y     float64
	Color    color.RGBA
	Centered bool // 为 true 时 X 为水平中心
}

// HUDLines 生成当前帧的状态文字
// 头目被击败或玩家失败后不显示状态栏
func HUDLines(w *game.GameWorld) []HUDLine {
	if w.State.IsTerminal() {
		return nil
	}
	p, ok := w.Player()
	if !ok {
		return nil
	}

	slot := func(i int) float64 { return hudTop + float64(i)*hudLineSpacing }
	lines := []HUDLine{
		{Text: fmt.Sprintf("Score: %d", w.Score), X: hudLeft, Y: slot(0), Color: colorWhite},
		{Text: fmt.Sprintf("Lives: %d", p.Lives), X: hudLeft, Y: slot(1), Color: colorWhite},
		{Text: fmt.Sprintf("Time: %ds", w.Now/1000), X: hudLeft, Y: slot(2), Color: colorWhite},
	}

	switch w.State {
	case types.StatePlaying:
		lines = append(lines, HUDLine{
			Text:  fmt.Sprintf("Enemies: %d", w.EntityManager.GroupSize(components.GroupEnemies)),
			X:     hudLeft,
			Y:     slot(3),
			Color: colorWhite,
		})
	case types.StateBossFight:
		if boss, ok := w.Boss(); ok {
			lines = append(lines, HUDLine{
				Text:     fmt.Sprintf("Boss Health: %d", boss.Health),
				X:        w.Config.Screen.Width / 2,
				Y:        hudTop,
				Color:    colorRed,
				Centered: true,
			})
		}
	}

	lines = append(lines,
		HUDLine{Text: fmt.Sprintf("Weapon Level: %d", p.WeaponLevel), X: hudLeft, Y: slot(4), Color: colorYellow},
		HUDLine{Text: fmt.Sprintf("Next Upgrade: %d", w.NextUpgradeScore), X: hudLeft, Y: slot(5), Color: colorYellow},
		HUDLine{Text: fmt.Sprintf("Next Life: %d", w.NextLifeScore), X: hudLeft, Y: slot(6), Color: colorYellow},
		HUDLine{Text: fmt.Sprintf("Wingmen: %d", p.WingmanCount()), X: hudLeft, Y: slot(7), Color: colorYellow},
		HUDLine{Text: fmt.Sprintf("Drones: %d", p.DroneCount()), X: hudLeft, Y: slot(8), Color: colorYellow},
	)
	return lines
}

// EndMessage 结束画面文字，未结束时返回 false
func EndMessage(state types.GameStateType) (string, color.RGBA, bool) {
	switch state {
	case types.StateBossDefeated:
		return "END GAME GG!", colorGreen, true
	case types.StatePlayerDefeated:
		return "GAME OVER", colorRed, true
	}
	return "", color.RGBA{}, false
}
