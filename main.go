package main

import (
	"flag"
	"log"

	"github.com/decker502/bullethell/pkg/app"
	"github.com/decker502/bullethell/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	configPath = flag.String("config", "", "游戏配置文件（data/ 开头为嵌入文件，否则为磁盘路径）")
	imageDir   = flag.String("images", "", "图片目录（默认 assets/images）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		ImageDir:   *imageDir,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle("Bullet Hell")
	ebiten.SetTPS(cfg.Screen.TPS)

	// Update 返回 ebiten.Termination 时 RunGame 返回 nil
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
