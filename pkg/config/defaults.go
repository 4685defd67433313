package config

// DefaultGameConfig 返回内置的默认配置
// 与 data/game.yaml 的内容保持一致，测试直接使用此配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			TPS:    60,
		},
		Spawn: SpawnConfig{
			InitialEnemyCount:          8,
			EnemySpawnInterval:         2000,
			MinEnemySpawnInterval:      500,
			SpawnIntervalStep:          100,
			DifficultyIncreaseInterval: 10000,
			FireballCooldown:           3000,
			BouncingBallInterval:       30000,
			MaxBouncingBalls:           5,
		},
		Progression: ProgressionConfig{
			ScorePerKill:    10,
			ScoreForUpgrade: 100,
			ScoreForLife:    500,
			ScoreForWingman: 1000,
			ScoreForSkill:   3000,
			BossFightScore:  100000,
			SkillOfferCount: 3,
		},
		Player: PlayerConfig{
			Width:             50,
			Height:            50,
			BottomMargin:      10,
			Speed:             5,
			InitialLives:      3,
			MaxWeaponLevel:    10,
			MaxBulletsPerShot: 5,
			ShootDelay:        200,
			ShootDelayStep:    20,
			MinShootDelay:     100,
			InvincibleTime:    5000,
			FlashInterval:     100,
			ShieldDuration:    10000,
			SplitShotDuration: 10000,
			MaxWingmen:        3,
			BulletSpeed:       -10,
			SplitBulletSpeed:  -8,
			SplitAngle:        0.2,
			SplitSpread:       5,
			BulletOffsets: map[int][]float64{
				1: {0},
				2: {-10, 10},
				3: {-15, 0, 15},
				4: {-20, -7, 7, 20},
				5: {-25, -12, 0, 12, 25},
			},
		},
		Wingman: WingmanConfig{
			Width:  40,
			Height: 40,
			BulletOffsets: map[int][]float64{
				1: {0},
				2: {-5, 5},
				3: {-10, 0, 10},
			},
			Formations: map[int][]FormationSlot{
				1: {{X: -40, Y: 0}},
				2: {{X: -40, Y: 0}, {X: 40, Y: 0}},
				3: {{X: -60, Y: 0}, {X: 0, Y: -40}, {X: 60, Y: 0}},
			},
		},
		Drone: DroneConfig{
			Count:         3,
			Radius:        70,
			OrbitSpeed:    0.05,
			ShootCooldown: 500,
			Width:         20,
			Height:        20,
			BulletSpeed:   -7,
		},
		Enemy: EnemyConfig{
			Width:      40,
			Height:     40,
			SpawnMinY:  -100,
			SpawnMaxY:  -40,
			MinSpeedY:  1,
			MaxSpeedY:  4,
			MinSpeedX:  -2,
			MaxSpeedX:  2,
			WrapMargin: 25,
		},
		Boss: BossConfig{
			Width:       150,
			Height:      150,
			Top:         50,
			Health:      500000,
			SpeedX:      2,
			ShootDelay:  500,
			BulletSpeed: 7,
			BulletOffsets: map[int][]float64{
				1: {0},
				2: {-20, 20},
				3: {-30, 0, 30},
				4: {-40, -15, 15, 40},
				5: {-50, -25, 0, 25, 50},
			},
			LevelThresholds: []int{400000, 300000, 200000, 100000},
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 10,
		},
		Fireball: FireballConfig{
			Size:     20,
			MinSpeed: 3,
			MaxSpeed: 7,
		},
		BouncingBall: BouncingBallConfig{
			Size:        15,
			Speed:       3,
			SpawnMargin: 50,
		},
		Electromagnetic: ElectromagneticConfig{
			Radius: 100,
		},
		SkillMenu: SkillMenuConfig{
			ButtonWidth:   400,
			ButtonHeight:  50,
			ButtonSpacing: 10,
			StartOffsetY:  -50,
		},
	}
}
