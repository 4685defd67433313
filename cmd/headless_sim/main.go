// headless_sim 在无窗口环境下运行一局游戏模拟
//
// 使用固定种子和脚本化输入（左右往返移动）推进指定帧数，
// 结束后打印分数、生命、状态等汇总信息，用于回归对比和平衡性调参。
//
// 用法:
//
//	go run ./cmd/headless_sim --seed=42 --ticks=3600
//	go run ./cmd/headless_sim --config=data/game.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/config"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/systems"
	"github.com/decker502/bullethell/pkg/types"
)

var (
	seed       = flag.Int64("seed", 42, "随机种子")
	ticks      = flag.Int("ticks", 3600, "模拟帧数")
	configPath = flag.String("config", "", "游戏配置文件路径（为空使用内置默认值）")
	sweepTicks = flag.Int("sweep", 120, "左右往返一次的帧数")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// Summary 一次模拟的结果
type Summary struct {
	Ticks       int
	ElapsedMs   int64
	State       types.GameStateType
	Score       int
	Lives       int
	WeaponLevel int
	Wingmen     int
	Skills      int
	BossHealth  int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("错误: 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	s := run(cfg, *seed, *ticks, *sweepTicks)
	printSummary(os.Stdout, *seed, s)
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfigFile(path)
}

// run 推进模拟直到帧数用完或进入结束状态
//
// 技能菜单打开时自动点击第一个按钮，保证模拟不会卡在暂停状态。
func run(cfg *config.GameConfig, seed int64, ticks, sweep int) Summary {
	world := game.NewGameWorld(cfg, seed)
	sim := systems.NewSimulation()
	sim.Start(world)

	clock := game.NewManualClock(0)
	step := game.TickDuration(cfg.Screen.TPS)

	n := 0
	for ; n < ticks; n++ {
		if world.State == types.StatePlayerDefeated || world.State == types.StateBossDefeated {
			break
		}
		clock.Advance(step)
		sim.Step(world, clock.Now(), scriptedInput(world, n, sweep))
	}

	return summarize(world, n, clock.Now())
}

// scriptedInput 前半周期向左、后半周期向右
func scriptedInput(w *game.GameWorld, tick, sweep int) game.InputState {
	if w.State == types.StateSkillSelection {
		return game.InputState{Clicks: []game.Point{firstButtonCenter(w)}}
	}
	if sweep <= 0 {
		return game.InputState{}
	}
	if tick%sweep < sweep/2 {
		return game.InputState{MoveLeft: true}
	}
	return game.InputState{MoveRight: true}
}

func firstButtonCenter(w *game.GameWorld) game.Point {
	for _, id := range w.EntityManager.Group(components.GroupSkillButtons) {
		btn, ok := ecs.GetComponent[*components.ButtonComponent](w.EntityManager, id)
		if ok && btn.Index == 0 {
			return game.Point{X: btn.X + btn.Width/2, Y: btn.Y + btn.Height/2}
		}
	}
	return game.Point{}
}

func summarize(w *game.GameWorld, n int, elapsed int64) Summary {
	s := Summary{
		Ticks:     n,
		ElapsedMs: elapsed,
		State:     w.State,
		Score:     w.Score,
		Skills:    len(w.SelectedSkills),
	}
	if p, ok := w.Player(); ok {
		s.Lives = p.Lives
		s.WeaponLevel = p.WeaponLevel
		s.Wingmen = len(p.Wingmen)
	}
	if b, ok := w.Boss(); ok {
		s.BossHealth = b.Health
	}
	return s
}

func printSummary(out io.Writer, seed int64, s Summary) {
	fmt.Fprintln(out, "=== 模拟结果 ===")
	fmt.Fprintf(out, "种子:       %d\n", seed)
	fmt.Fprintf(out, "帧数:       %d (%.1fs)\n", s.Ticks, float64(s.ElapsedMs)/1000)
	fmt.Fprintf(out, "状态:       %s\n", s.State)
	fmt.Fprintf(out, "分数:       %d\n", s.Score)
	fmt.Fprintf(out, "生命:       %d\n", s.Lives)
	fmt.Fprintf(out, "武器等级:   %d\n", s.WeaponLevel)
	fmt.Fprintf(out, "僚机:       %d\n", s.Wingmen)
	fmt.Fprintf(out, "已选技能:   %d\n", s.Skills)
	if s.State == types.StateBossFight {
		fmt.Fprintf(out, "头目血量:   %d\n", s.BossHealth)
	}
}
