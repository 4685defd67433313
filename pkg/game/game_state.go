package game

import (
	"log"
	"math/rand"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/config"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/types"
)

// GameWorld 一局游戏的全部可变状态
//
// 由主循环持有，每帧以参数形式传给各个系统。
// 系统之间不共享任何包级变量，测试可以直接构造一个世界快照。
type GameWorld struct {
	Config        *config.GameConfig
	EntityManager *ecs.EntityManager
	Rand          *rand.Rand

	State types.GameStateType

	// Now 本帧开始时的时间戳（游戏开始后的毫秒数）
	// 本帧内所有冷却判断都使用这一个值
	Now int64

	Score            int
	NextUpgradeScore int
	NextLifeScore    int
	NextWingmanScore int
	NextSkillScore   int

	// 生成节奏
	EnemySpawnInterval     int64
	LastEnemySpawn         int64
	LastDifficultyIncrease int64
	LastFireballSpawn      int64
	LastBouncingBallSpawn  int64

	// SelectedSkills 曾经被选中过的技能（持久标记，被动技能据此解锁）
	SelectedSkills map[types.SkillType]bool
	// SkillOffer 当前技能菜单中的选项，菜单关闭后清空
	SkillOffer []types.SkillType

	PlayerID ecs.EntityID
	BossID   ecs.EntityID // 0 表示没有头目

	lastSummaryLog int64
}

// NewGameWorld 创建初始世界（尚未生成任何实体）
func NewGameWorld(cfg *config.GameConfig, seed int64) *GameWorld {
	return &GameWorld{
		Config:             cfg,
		EntityManager:      ecs.NewEntityManager(),
		Rand:               rand.New(rand.NewSource(seed)),
		State:              types.StatePlaying,
		NextUpgradeScore:   cfg.Progression.ScoreForUpgrade,
		NextLifeScore:      cfg.Progression.ScoreForLife,
		NextWingmanScore:   cfg.Progression.ScoreForWingman,
		NextSkillScore:     cfg.Progression.ScoreForSkill,
		EnemySpawnInterval: cfg.Spawn.EnemySpawnInterval,
		SelectedSkills:     make(map[types.SkillType]bool),
	}
}

// SetState 切换顶层状态并记录日志
func (w *GameWorld) SetState(next types.GameStateType) {
	if w.State == next {
		return
	}
	log.Printf("[GameWorld] State %s -> %s (score=%d, t=%dms)", w.State, next, w.Score, w.Now)
	w.State = next
}

// Player 返回玩家组件；玩家已被清除时返回 false
func (w *GameWorld) Player() (*components.PlayerComponent, bool) {
	if !w.EntityManager.IsAlive(w.PlayerID) {
		return nil, false
	}
	return ecs.GetComponent[*components.PlayerComponent](w.EntityManager, w.PlayerID)
}

// Boss 返回头目组件；不存在时返回 false
func (w *GameWorld) Boss() (*components.BossComponent, bool) {
	if w.BossID == 0 || !w.EntityManager.IsAlive(w.BossID) {
		return nil, false
	}
	return ecs.GetComponent[*components.BossComponent](w.EntityManager, w.BossID)
}

// BossAlive 当前是否有存活的头目
func (w *GameWorld) BossAlive() bool {
	_, ok := w.Boss()
	return ok
}

// AddScore 增加分数
func (w *GameWorld) AddScore(points int) {
	w.Score += points
}

// RandRange 返回 [min, max) 内的随机整数，区间为空时返回 min
func (w *GameWorld) RandRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.Rand.Intn(max-min)
}

// ShouldLogSummary 每秒最多返回一次 true，用于周期性统计日志
func (w *GameWorld) ShouldLogSummary() bool {
	if w.Now-w.lastSummaryLog < 1000 {
		return false
	}
	w.lastSummaryLog = w.Now
	return true
}
