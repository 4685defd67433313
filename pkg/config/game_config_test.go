package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/bullethell/pkg/embedded"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	if err := validateGameConfig(DefaultGameConfig()); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

// TestShippedConfigMatchesDefault 嵌入的 data/game.yaml 必须与代码内默认值一致
func TestShippedConfigMatchesDefault(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("Failed to read data/game.yaml: %v", err)
	}

	embedded.Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: data},
	})

	loaded, err := LoadGameConfig(DefaultGameConfigPath)
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}

	if !reflect.DeepEqual(loaded, DefaultGameConfig()) {
		t.Errorf("data/game.yaml differs from DefaultGameConfig()\nloaded: %+v\ndefault: %+v", loaded, DefaultGameConfig())
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("部分覆盖保留默认值", func(t *testing.T) {
		content := `
boss:
  health: 1000
progression:
  bossFightScore: 500
`
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadGameConfigFile(path)
		if err != nil {
			t.Fatalf("LoadGameConfigFile failed: %v", err)
		}
		if cfg.Boss.Health != 1000 {
			t.Errorf("boss.health: expected 1000, got %d", cfg.Boss.Health)
		}
		if cfg.Progression.BossFightScore != 500 {
			t.Errorf("bossFightScore: expected 500, got %d", cfg.Progression.BossFightScore)
		}
		if cfg.Player.ShootDelay != 200 {
			t.Errorf("player.shootDelay should keep default 200, got %d", cfg.Player.ShootDelay)
		}
		if len(cfg.Player.BulletOffsets[5]) != 5 {
			t.Errorf("player.bulletOffsets should keep default table")
		}
	})

	t.Run("YAML 语法错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("boss: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadGameConfigFile(path); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := LoadGameConfigFile(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("Expected read error")
		}
	})
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"屏幕尺寸为零", func(c *GameConfig) { c.Screen.Width = 0 }, "screen size"},
		{"生成间隔低于下限", func(c *GameConfig) { c.Spawn.EnemySpawnInterval = 100 }, "enemySpawnInterval"},
		{"分数阈值为零", func(c *GameConfig) { c.Progression.ScoreForSkill = 0 }, "scoreForSkill"},
		{"技能数量越界", func(c *GameConfig) { c.Progression.SkillOfferCount = 7 }, "skillOfferCount"},
		{"射击间隔低于下限", func(c *GameConfig) { c.Player.ShootDelay = 50 }, "shootDelay"},
		{"编队缺少位置", func(c *GameConfig) { c.Wingman.Formations[3] = c.Wingman.Formations[2] }, "formations[3]"},
		{"头目阈值非降序", func(c *GameConfig) { c.Boss.LevelThresholds = []int{100, 200} }, "descending"},
		{"火球速度范围为空", func(c *GameConfig) { c.Fireball.MaxSpeed = c.Fireball.MinSpeed }, "fireball"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			err := validateGameConfig(cfg)
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
