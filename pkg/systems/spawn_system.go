package systems

import (
	"log"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

// SpawnSystem 普通阶段的生成节奏
//   - 敌机按生成间隔补充，间隔每个难度周期缩短一档，不低于下限
//   - 选择过火球技能后，按冷却生成火球
//   - 选择过弹球技能后，按间隔生成弹球，场上最多 MaxBouncingBalls 个
type SpawnSystem struct{}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Update 检查所有生成计时器
func (s *SpawnSystem) Update(w *game.GameWorld) {
	cfg := w.Config.Spawn
	em := w.EntityManager

	if w.Now-w.LastEnemySpawn > w.EnemySpawnInterval {
		entities.NewEnemy(w)
		w.LastEnemySpawn = w.Now
	}

	if w.Now-w.LastDifficultyIncrease > cfg.DifficultyIncreaseInterval {
		next := max(cfg.MinEnemySpawnInterval, w.EnemySpawnInterval-cfg.SpawnIntervalStep)
		if next != w.EnemySpawnInterval {
			log.Printf("[SpawnSystem] Enemy spawn interval %dms -> %dms", w.EnemySpawnInterval, next)
		}
		w.EnemySpawnInterval = next
		w.LastDifficultyIncrease = w.Now
	}

	if w.SelectedSkills[types.SkillFireball] && w.Now-w.LastFireballSpawn > cfg.FireballCooldown {
		entities.NewFireball(w)
		w.LastFireballSpawn = w.Now
	}

	if w.SelectedSkills[types.SkillBouncingBall] &&
		w.Now-w.LastBouncingBallSpawn > cfg.BouncingBallInterval &&
		em.GroupSize(components.GroupBouncingBalls) < cfg.MaxBouncingBalls {
		entities.NewBouncingBall(w)
		w.LastBouncingBallSpawn = w.Now
	}
}
