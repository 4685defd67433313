package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/ecs"
	"github.com/decker502/bullethell/pkg/game"
)

func TestDistributeFirepower(t *testing.T) {
	tests := []struct {
		name    string
		excess  int
		wingmen int
		want    []int
	}{
		{"没有僚机", 3, 0, nil},
		{"没有多余火力", 0, 2, []int{0, 0}},
		{"一发给第一个僚机", 1, 3, []int{1, 0, 0}},
		{"平均分配", 4, 2, []int{2, 2}},
		{"余数按顺序分配", 5, 3, []int{2, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeFirepower(tt.excess, tt.wingmen)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DistributeFirepower(%d, %d) = %v, want %v", tt.excess, tt.wingmen, got, tt.want)
			}
		})
	}
}

func TestPlayerSystem_ShootCooldown(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()
	em := w.EntityManager

	w.Now = 1000
	if !ps.Shoot(w) {
		t.Fatal("player should fire when cooldown has elapsed")
	}
	if p.LastShot != 1000 {
		t.Errorf("LastShot = %d, want 1000", p.LastShot)
	}
	if got := em.GroupSize(components.GroupPlayerBullets); got != 1 {
		t.Errorf("expected 1 bullet, got %d", got)
	}

	w.Now = 1200
	if ps.Shoot(w) {
		t.Error("player should not fire when exactly ShootDelay has elapsed")
	}

	w.Now = 1201
	if !ps.Shoot(w) {
		t.Error("player should fire once more than ShootDelay has elapsed")
	}
	if got := em.GroupSize(components.GroupPlayerBullets); got != 2 {
		t.Errorf("expected 2 bullets, got %d", got)
	}
}

func TestPlayerSystem_ShootBulletCount(t *testing.T) {
	tests := []struct {
		name        string
		weaponLevel int
		wingmen     int
		splitShot   bool
		want        int
	}{
		{"一级", 1, 0, false, 1},
		{"三级", 3, 0, false, 3},
		{"超出上限且没有僚机", 8, 0, false, 5},
		{"五级分裂", 5, 0, true, 15},
		{"七级两个僚机", 7, 2, false, 7},
		{"满级三个僚机", 10, 3, false, 10},
		{"满级一个僚机（表外数量回退为单发）", 10, 1, false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p := newTestWorldWithPlayer(t)
			ps := NewPlayerSystem()
			for i := 0; i < tt.wingmen; i++ {
				ps.AddWingman(w)
			}
			p.WeaponLevel = tt.weaponLevel
			p.HasSplitShot = tt.splitShot

			w.Now = 1000
			ps.Shoot(w)

			if got := w.EntityManager.GroupSize(components.GroupPlayerBullets); got != tt.want {
				t.Errorf("bullets = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlayerSystem_SplitShotPattern(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()
	em := w.EntityManager
	p.HasSplitShot = true

	w.Now = 1000
	ps.Shoot(w)

	bullets := em.Group(components.GroupPlayerBullets)
	if len(bullets) != 3 {
		t.Fatalf("expected 3 bullets, got %d", len(bullets))
	}

	type shot struct{ x, speed, angle float64 }
	want := []shot{
		{400, -10, 0},
		{395, -8, -0.2},
		{405, -8, 0.2},
	}
	for i, id := range bullets {
		pos := positionOf(t, w, id)
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		if pos.X != want[i].x || bullet.Speed != want[i].speed || bullet.Angle != want[i].angle {
			t.Errorf("bullet %d = (x=%v, speed=%v, angle=%v), want %+v", i, pos.X, bullet.Speed, bullet.Angle, want[i])
		}
		// 底边与玩家顶边对齐
		if pos.Y != 540-5 {
			t.Errorf("bullet %d Y = %v, want 535", i, pos.Y)
		}
	}
}

func TestPlayerSystem_ElectromagneticBullets(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()
	em := w.EntityManager
	ps.AddWingman(w)
	ps.ActivateElectromagneticWave(w)
	p.WeaponLevel = 7

	w.Now = 1000
	ps.Shoot(w)

	bullets := em.Group(components.GroupPlayerBullets)
	if len(bullets) != 7 {
		t.Fatalf("expected 7 bullets, got %d", len(bullets))
	}
	wingmanShots := 0
	for _, id := range bullets {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
		if !bullet.IsElectromagnetic {
			t.Errorf("bullet %d should carry the electromagnetic marker", id)
		}
		if bullet.Source == components.BulletFromWingman {
			wingmanShots++
		}
	}
	if wingmanShots != 2 {
		t.Errorf("wingman bullets = %d, want 2", wingmanShots)
	}
}

func TestPlayerSystem_Movement(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		input game.InputState
		want  float64
	}{
		{"左移", 400, game.InputState{MoveLeft: true}, 395},
		{"右移", 400, game.InputState{MoveRight: true}, 405},
		{"同时按下", 400, game.InputState{MoveLeft: true, MoveRight: true}, 400},
		{"贴住左边", 25, game.InputState{MoveLeft: true}, 25},
		{"贴住右边", 775, game.InputState{MoveRight: true}, 775},
		{"靠近左边时夹紧", 27, game.InputState{MoveLeft: true}, 25},
		{"靠近右边时夹紧", 773, game.InputState{MoveRight: true}, 775},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorldWithPlayer(t)
			ps := NewPlayerSystem()
			pos := positionOf(t, w, w.PlayerID)
			pos.X = tt.start

			ps.Update(w, tt.input)

			if pos.X != tt.want {
				t.Errorf("X = %v, want %v", pos.X, tt.want)
			}
		})
	}
}

func TestPlayerSystem_TakeDamageInvincibility(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()

	w.Now = 1000
	if !ps.TakeDamage(w) {
		t.Fatal("first hit should take effect")
	}
	if p.Lives != 2 || !p.IsInvincible {
		t.Fatalf("after hit: lives=%d invincible=%v", p.Lives, p.IsInvincible)
	}

	w.Now = 1500
	if ps.TakeDamage(w) {
		t.Error("hit while invincible should be ignored")
	}
	if p.Lives != 2 {
		t.Errorf("lives = %d, want 2", p.Lives)
	}

	w.Now = 6000
	ps.Update(w, game.InputState{})
	if !p.IsInvincible {
		t.Error("invincibility should last through exactly InvincibleTime")
	}

	w.Now = 6001
	ps.Update(w, game.InputState{})
	if p.IsInvincible || !p.IsVisible {
		t.Errorf("invincibility should end at 6001: invincible=%v visible=%v", p.IsInvincible, p.IsVisible)
	}
}

func TestPlayerSystem_Flash(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.EntityManager, w.PlayerID)

	w.Now = 1000
	ps.TakeDamage(w)

	steps := []struct {
		now     int64
		visible bool
	}{
		{1050, false},
		{1100, false},
		{1151, true},
		{1200, true},
		{1252, false},
	}
	for _, step := range steps {
		w.Now = step.now
		ps.Update(w, game.InputState{})
		if p.IsVisible != step.visible {
			t.Errorf("t=%d: visible = %v, want %v", step.now, p.IsVisible, step.visible)
		}
		if sprite.Visible != p.IsVisible {
			t.Errorf("t=%d: sprite visibility not synced", step.now)
		}
	}
}

func TestPlayerSystem_ShieldDuration(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()

	w.Now = 1000
	ps.ActivateShield(w)
	if !p.IsInvincible {
		t.Fatal("shield should make the player invincible immediately")
	}

	w.Now = 5000
	if ps.TakeDamage(w) {
		t.Error("shielded player should not take damage")
	}

	w.Now = 11000
	ps.Update(w, game.InputState{})
	if !p.IsInvincible {
		t.Error("shield should still be active at T+10000")
	}

	w.Now = 11001
	ps.Update(w, game.InputState{})
	if p.IsInvincible {
		t.Error("shield should end after T+10000")
	}
}

func TestPlayerSystem_UpgradeWeapon(t *testing.T) {
	tests := []struct {
		upgrades  int
		wantLevel int
		wantDelay int64
	}{
		{1, 2, 180},
		{3, 4, 140},
		{5, 6, 100},
		{9, 10, 100},
		{15, 10, 100},
	}

	for _, tt := range tests {
		w, p := newTestWorldWithPlayer(t)
		ps := NewPlayerSystem()
		for i := 0; i < tt.upgrades; i++ {
			ps.UpgradeWeapon(w)
		}
		if p.WeaponLevel != tt.wantLevel || p.ShootDelay != tt.wantDelay {
			t.Errorf("%d upgrades: level=%d delay=%d, want level=%d delay=%d",
				tt.upgrades, p.WeaponLevel, p.ShootDelay, tt.wantLevel, tt.wantDelay)
		}
	}
}

func TestPlayerSystem_WingmanFormation(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()

	for i := 0; i < 3; i++ {
		if !ps.AddWingman(w) {
			t.Fatalf("wingman %d should be accepted", i+1)
		}
	}
	if ps.AddWingman(w) {
		t.Error("fourth wingman should be rejected")
	}
	if p.WingmanCount() != 3 {
		t.Fatalf("wingmen = %d, want 3", p.WingmanCount())
	}

	ps.UpdateFormation(w)

	want := [][2]float64{{340, 565}, {400, 525}, {460, 565}}
	for i, id := range p.Wingmen {
		pos := positionOf(t, w, id)
		if pos.X != want[i][0] || pos.Y != want[i][1] {
			t.Errorf("wingman %d at (%v, %v), want %v", i, pos.X, pos.Y, want[i])
		}
	}
}

func TestPlayerSystem_SplitShotExpiry(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()

	w.Now = 1000
	ps.ActivateSplitShot(w)

	w.Now = 11000
	ps.Update(w, game.InputState{})
	if !p.HasSplitShot {
		t.Error("split shot should still be active at its end time")
	}

	w.Now = 11001
	ps.Update(w, game.InputState{})
	if p.HasSplitShot {
		t.Error("split shot should expire after its end time")
	}
}

func TestPlayerSystem_ActivateDrone(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	ps := NewPlayerSystem()

	ps.ActivateDrone(w)
	ps.ActivateDrone(w)

	if p.DroneCount() != 6 {
		t.Errorf("drones = %d, want 6", p.DroneCount())
	}
	if got := w.EntityManager.GroupSize(components.GroupDrones); got != 6 {
		t.Errorf("drone group size = %d, want 6", got)
	}
}

func TestPlayerSystem_AddLife(t *testing.T) {
	w, p := newTestWorldWithPlayer(t)
	NewPlayerSystem().AddLife(w)
	if p.Lives != 4 {
		t.Errorf("lives = %d, want 4", p.Lives)
	}
}
