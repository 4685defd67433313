// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"
	"time"

	"github.com/decker502/bullethell/pkg/assets"
	"github.com/decker502/bullethell/pkg/config"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/render"
	"github.com/decker502/bullethell/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 游戏配置文件；以 "data/" 开头时从嵌入资源读取，否则从磁盘读取，为空使用默认配置文件
	ConfigPath string
	// ImageDir 图片目录，为空使用 assets.DefaultImageDir
	ImageDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	gameConfig   *config.GameConfig
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Starting with seed %d", seed)

	resourceManager := assets.NewResourceManager(cfg.ImageDir)
	resourceManager.Preload(
		entities.ImagePlayer,
		entities.ImageEnemy,
		entities.ImageBoss,
		entities.ImageWingman,
		entities.ImageDrone,
		entities.ImageBouncingBall,
	)

	world := game.NewGameWorld(gameConfig, seed)
	gameScene := scenes.NewGameScene(
		world,
		render.NewRenderSystem(resourceManager),
		game.NewRealClock(),
		scenes.NewEbitenInput(gameConfig.Screen.Width),
	)

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
	}, nil
}

// LoadConfig 按路径加载游戏配置
func LoadConfig(path string) (*config.GameConfig, error) {
	switch {
	case path == "":
		return config.LoadGameConfig(config.DefaultGameConfigPath)
	case strings.HasPrefix(path, "data/"):
		return config.LoadGameConfig(path)
	default:
		return config.LoadGameConfigFile(path)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，返回 ebiten.Termination 时结束主循环
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(a.gameConfig.Screen.TPS)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右两边填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.Screen.Width), int(a.gameConfig.Screen.Height)
}

// GameConfig 返回当前使用的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}
