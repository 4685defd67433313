package config

import (
	"fmt"
	"os"

	"github.com/decker502/bullethell/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入的默认配置文件路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏全部固定参数
// 所有时间单位为毫秒，所有距离单位为像素，速度单位为像素/帧
type GameConfig struct {
	Screen          ScreenConfig          `yaml:"screen"`
	Spawn           SpawnConfig           `yaml:"spawn"`
	Progression     ProgressionConfig     `yaml:"progression"`
	Player          PlayerConfig          `yaml:"player"`
	Wingman         WingmanConfig         `yaml:"wingman"`
	Drone           DroneConfig           `yaml:"drone"`
	Enemy           EnemyConfig           `yaml:"enemy"`
	Boss            BossConfig            `yaml:"boss"`
	Bullet          BulletConfig          `yaml:"bullet"`
	Fireball        FireballConfig        `yaml:"fireball"`
	BouncingBall    BouncingBallConfig    `yaml:"bouncingBall"`
	Electromagnetic ElectromagneticConfig `yaml:"electromagnetic"`
	SkillMenu       SkillMenuConfig       `yaml:"skillMenu"`
}

// ScreenConfig 窗口与逻辑画面
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	TPS    int     `yaml:"tps"` // 每秒逻辑帧数
}

// SpawnConfig 敌机与被动场景实体的生成节奏
type SpawnConfig struct {
	InitialEnemyCount          int   `yaml:"initialEnemyCount"`
	EnemySpawnInterval         int64 `yaml:"enemySpawnInterval"`         // 初始生成间隔
	MinEnemySpawnInterval      int64 `yaml:"minEnemySpawnInterval"`      // 生成间隔下限
	SpawnIntervalStep          int64 `yaml:"spawnIntervalStep"`          // 每次难度提升减少的间隔
	DifficultyIncreaseInterval int64 `yaml:"difficultyIncreaseInterval"` // 难度提升周期
	FireballCooldown           int64 `yaml:"fireballCooldown"`
	BouncingBallInterval       int64 `yaml:"bouncingBallInterval"`
	MaxBouncingBalls           int   `yaml:"maxBouncingBalls"`
}

// ProgressionConfig 分数阈值
type ProgressionConfig struct {
	ScorePerKill    int `yaml:"scorePerKill"`
	ScoreForUpgrade int `yaml:"scoreForUpgrade"`
	ScoreForLife    int `yaml:"scoreForLife"`
	ScoreForWingman int `yaml:"scoreForWingman"`
	ScoreForSkill   int `yaml:"scoreForSkill"`
	BossFightScore  int `yaml:"bossFightScore"`
	SkillOfferCount int `yaml:"skillOfferCount"` // 每轮提供的技能数
}

// PlayerConfig 玩家飞船
type PlayerConfig struct {
	Width             float64           `yaml:"width"`
	Height            float64           `yaml:"height"`
	BottomMargin      float64           `yaml:"bottomMargin"` // 飞船底边距屏幕底部的距离
	Speed             float64           `yaml:"speed"`
	InitialLives      int               `yaml:"initialLives"`
	MaxWeaponLevel    int               `yaml:"maxWeaponLevel"`
	MaxBulletsPerShot int               `yaml:"maxBulletsPerShot"`
	ShootDelay        int64             `yaml:"shootDelay"`
	ShootDelayStep    int64             `yaml:"shootDelayStep"`
	MinShootDelay     int64             `yaml:"minShootDelay"`
	InvincibleTime    int64             `yaml:"invincibleTime"`
	FlashInterval     int64             `yaml:"flashInterval"`
	ShieldDuration    int64             `yaml:"shieldDuration"`
	SplitShotDuration int64             `yaml:"splitShotDuration"`
	MaxWingmen        int               `yaml:"maxWingmen"`
	BulletSpeed       float64           `yaml:"bulletSpeed"`
	SplitBulletSpeed  float64           `yaml:"splitBulletSpeed"`
	SplitAngle        float64           `yaml:"splitAngle"`  // 分裂子弹偏转角（弧度）
	SplitSpread       float64           `yaml:"splitSpread"` // 分裂子弹相对主子弹的水平偏移
	BulletOffsets     map[int][]float64 `yaml:"bulletOffsets"`
}

// WingmanConfig 僚机
type WingmanConfig struct {
	Width         float64                 `yaml:"width"`
	Height        float64                 `yaml:"height"`
	BulletOffsets map[int][]float64       `yaml:"bulletOffsets"`
	Formations    map[int][]FormationSlot `yaml:"formations"` // 僚机数量 -> 各僚机相对玩家中心的位置
}

// FormationSlot 编队中一个僚机相对玩家中心的偏移
type FormationSlot struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DroneConfig 无人机
type DroneConfig struct {
	Count         int     `yaml:"count"` // 每次激活生成的数量
	Radius        float64 `yaml:"radius"`
	OrbitSpeed    float64 `yaml:"orbitSpeed"` // 弧度/帧
	ShootCooldown int64   `yaml:"shootCooldown"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BulletSpeed   float64 `yaml:"bulletSpeed"`
}

// EnemyConfig 敌机
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SpawnMinY  int     `yaml:"spawnMinY"` // 顶边生成范围 [min, max)
	SpawnMaxY  int     `yaml:"spawnMaxY"`
	MinSpeedY  int     `yaml:"minSpeedY"` // 垂直速度范围 [min, max)
	MaxSpeedY  int     `yaml:"maxSpeedY"`
	MinSpeedX  int     `yaml:"minSpeedX"` // 水平漂移范围 [min, max)
	MaxSpeedX  int     `yaml:"maxSpeedX"`
	WrapMargin float64 `yaml:"wrapMargin"` // 左右越界判定余量
}

// BossConfig 头目
type BossConfig struct {
	Width           float64           `yaml:"width"`
	Height          float64           `yaml:"height"`
	Top             float64           `yaml:"top"`
	Health          int               `yaml:"health"`
	SpeedX          float64           `yaml:"speedX"`
	ShootDelay      int64             `yaml:"shootDelay"`
	BulletSpeed     float64           `yaml:"bulletSpeed"`
	BulletOffsets   map[int][]float64 `yaml:"bulletOffsets"`
	LevelThresholds []int             `yaml:"levelThresholds"` // 降序，生命值不高于第 i 个阈值时弹幕等级至少为 i+2
}

// BulletConfig 子弹尺寸
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FireballConfig 火球
type FireballConfig struct {
	Size     float64 `yaml:"size"`
	MinSpeed int     `yaml:"minSpeed"` // [min, max)
	MaxSpeed int     `yaml:"maxSpeed"`
}

// BouncingBallConfig 弹球
type BouncingBallConfig struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`
	SpawnMargin float64 `yaml:"spawnMargin"`
}

// ElectromagneticConfig 电磁波连锁闪电
type ElectromagneticConfig struct {
	Radius float64 `yaml:"radius"`
}

// SkillMenuConfig 技能选择按钮布局
type SkillMenuConfig struct {
	ButtonWidth   float64 `yaml:"buttonWidth"`
	ButtonHeight  float64 `yaml:"buttonHeight"`
	ButtonSpacing float64 `yaml:"buttonSpacing"`
	StartOffsetY  float64 `yaml:"startOffsetY"` // 第一个按钮顶边相对屏幕中线的偏移
}

// LoadGameConfig 从嵌入的数据文件加载游戏配置
// 文件中未出现的字段保留 DefaultGameConfig 的值
//
// 参数：
//
//	filepath - 以 "data/" 开头的嵌入路径
//
// 返回：
//
//	*GameConfig - 解析并验证后的配置
//	error - 读取、解析或验证失败
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}
	return parseGameConfig(filepath, data)
}

// LoadGameConfigFile 从磁盘加载游戏配置（命令行 --config 覆盖时使用）
func LoadGameConfigFile(filepath string) (*GameConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}
	return parseGameConfig(filepath, data)
}

func parseGameConfig(filepath string, data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML from %s: %w", filepath, err)
	}

	if err := validateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", filepath, err)
	}

	return config, nil
}

// validateGameConfig 验证配置的完整性和合法性
func validateGameConfig(c *GameConfig) error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TPS <= 0 {
		return fmt.Errorf("screen.tps must be positive, got %d", c.Screen.TPS)
	}

	if c.Spawn.MinEnemySpawnInterval <= 0 {
		return fmt.Errorf("spawn.minEnemySpawnInterval must be positive, got %d", c.Spawn.MinEnemySpawnInterval)
	}
	if c.Spawn.EnemySpawnInterval < c.Spawn.MinEnemySpawnInterval {
		return fmt.Errorf("spawn.enemySpawnInterval (%d) must not be below minEnemySpawnInterval (%d)",
			c.Spawn.EnemySpawnInterval, c.Spawn.MinEnemySpawnInterval)
	}
	if c.Spawn.MaxBouncingBalls < 0 {
		return fmt.Errorf("spawn.maxBouncingBalls cannot be negative, got %d", c.Spawn.MaxBouncingBalls)
	}

	p := c.Progression
	for name, v := range map[string]int{
		"scorePerKill":    p.ScorePerKill,
		"scoreForUpgrade": p.ScoreForUpgrade,
		"scoreForLife":    p.ScoreForLife,
		"scoreForWingman": p.ScoreForWingman,
		"scoreForSkill":   p.ScoreForSkill,
		"bossFightScore":  p.BossFightScore,
	} {
		if v <= 0 {
			return fmt.Errorf("progression.%s must be positive, got %d", name, v)
		}
	}
	if p.SkillOfferCount < 1 || p.SkillOfferCount > 6 {
		return fmt.Errorf("progression.skillOfferCount must be in [1,6], got %d", p.SkillOfferCount)
	}

	if c.Player.MaxWeaponLevel < 1 {
		return fmt.Errorf("player.maxWeaponLevel must be at least 1, got %d", c.Player.MaxWeaponLevel)
	}
	if c.Player.MaxBulletsPerShot < 1 {
		return fmt.Errorf("player.maxBulletsPerShot must be at least 1, got %d", c.Player.MaxBulletsPerShot)
	}
	if c.Player.MinShootDelay <= 0 || c.Player.ShootDelay < c.Player.MinShootDelay {
		return fmt.Errorf("player.shootDelay (%d) must be >= minShootDelay (%d) > 0",
			c.Player.ShootDelay, c.Player.MinShootDelay)
	}
	if c.Player.InitialLives < 1 {
		return fmt.Errorf("player.initialLives must be at least 1, got %d", c.Player.InitialLives)
	}
	if c.Player.MaxWingmen < 0 {
		return fmt.Errorf("player.maxWingmen cannot be negative, got %d", c.Player.MaxWingmen)
	}
	for n := 1; n <= c.Player.MaxWingmen; n++ {
		if len(c.Wingman.Formations[n]) != n {
			return fmt.Errorf("wingman.formations[%d] must have %d slots, got %d", n, n, len(c.Wingman.Formations[n]))
		}
	}

	if c.Enemy.SpawnMaxY <= c.Enemy.SpawnMinY {
		return fmt.Errorf("enemy spawn Y range is empty: [%d, %d)", c.Enemy.SpawnMinY, c.Enemy.SpawnMaxY)
	}
	if c.Enemy.MaxSpeedY <= c.Enemy.MinSpeedY || c.Enemy.MaxSpeedX <= c.Enemy.MinSpeedX {
		return fmt.Errorf("enemy speed ranges must be non-empty")
	}
	if c.Enemy.Width <= 0 || c.Enemy.Width >= c.Screen.Width {
		return fmt.Errorf("enemy.width must be in (0, screen.width), got %v", c.Enemy.Width)
	}

	if c.Boss.Health <= 0 {
		return fmt.Errorf("boss.health must be positive, got %d", c.Boss.Health)
	}
	for i := 1; i < len(c.Boss.LevelThresholds); i++ {
		if c.Boss.LevelThresholds[i] >= c.Boss.LevelThresholds[i-1] {
			return fmt.Errorf("boss.levelThresholds must be strictly descending")
		}
	}

	if c.Fireball.MaxSpeed <= c.Fireball.MinSpeed {
		return fmt.Errorf("fireball speed range is empty: [%d, %d)", c.Fireball.MinSpeed, c.Fireball.MaxSpeed)
	}
	if c.Drone.Count < 0 {
		return fmt.Errorf("drone.count cannot be negative, got %d", c.Drone.Count)
	}

	return nil
}
