package config

import (
	"reflect"
	"testing"
)

func TestPlayerBulletOffsets(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		count int
		want  []float64
	}{
		{1, []float64{0}},
		{2, []float64{-10, 10}},
		{3, []float64{-15, 0, 15}},
		{4, []float64{-20, -7, 7, 20}},
		{5, []float64{-25, -12, 0, 12, 25}},
		{0, []float64{0}}, // 表外回退
		{6, []float64{0}},
	}

	for _, tt := range tests {
		got := cfg.PlayerBulletOffsets(tt.count)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PlayerBulletOffsets(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestWingmanBulletOffsetsFallback(t *testing.T) {
	cfg := DefaultGameConfig()

	if got := cfg.WingmanBulletOffsets(3); !reflect.DeepEqual(got, []float64{-10, 0, 10}) {
		t.Errorf("WingmanBulletOffsets(3) = %v", got)
	}
	// 一个僚机分到 5 发时表中没有，回退为单发居中
	if got := cfg.WingmanBulletOffsets(5); !reflect.DeepEqual(got, []float64{0}) {
		t.Errorf("WingmanBulletOffsets(5) = %v, want [0]", got)
	}
}

func TestBossLevelForHealth(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		health int
		want   int
	}{
		{500000, 1},
		{400001, 1},
		{400000, 2},
		{300001, 2},
		{300000, 3},
		{200000, 4},
		{100001, 4},
		{100000, 5},
		{1, 5},
		{0, 5},
		{-3, 5},
	}

	for _, tt := range tests {
		if got := cfg.BossLevelForHealth(tt.health); got != tt.want {
			t.Errorf("BossLevelForHealth(%d) = %d, want %d", tt.health, got, tt.want)
		}
	}
}

func TestWingmanFormation(t *testing.T) {
	cfg := DefaultGameConfig()

	if slots := cfg.WingmanFormation(3); len(slots) != 3 || slots[1] != (FormationSlot{X: 0, Y: -40}) {
		t.Errorf("formation for 3 wingmen should put the second one behind the player, got %v", slots)
	}
	if slots := cfg.WingmanFormation(4); slots != nil {
		t.Errorf("formation for 4 wingmen should be nil, got %v", slots)
	}
}
