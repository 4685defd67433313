package systems

import (
	"testing"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/entities"
	"github.com/decker502/bullethell/pkg/types"
)

func TestSpawnSystem_EnemyInterval(t *testing.T) {
	w := newTestWorld(t)
	em := w.EntityManager
	ss := NewSpawnSystem()

	w.Now = 2000
	ss.Update(w)
	if got := em.GroupSize(components.GroupEnemies); got != 0 {
		t.Fatalf("no enemy should spawn at exactly the interval, got %d", got)
	}

	w.Now = 2001
	ss.Update(w)
	if got := em.GroupSize(components.GroupEnemies); got != 1 {
		t.Errorf("enemies = %d, want 1", got)
	}
	if w.LastEnemySpawn != 2001 {
		t.Errorf("LastEnemySpawn = %d, want 2001", w.LastEnemySpawn)
	}
}

func TestSpawnSystem_DifficultyRamp(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		want  int64
	}{
		{"初始间隔", 2000, 1900},
		{"接近下限", 550, 500},
		{"已到下限", 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.EnemySpawnInterval = tt.start

			w.Now = 10001
			NewSpawnSystem().Update(w)

			if w.EnemySpawnInterval != tt.want {
				t.Errorf("interval = %d, want %d", w.EnemySpawnInterval, tt.want)
			}
			if w.LastDifficultyIncrease != 10001 {
				t.Errorf("LastDifficultyIncrease = %d, want 10001", w.LastDifficultyIncrease)
			}
		})
	}
}

func TestSpawnSystem_Fireball(t *testing.T) {
	w := newTestWorld(t)
	em := w.EntityManager
	ss := NewSpawnSystem()

	w.Now = 3001
	ss.Update(w)
	if got := em.GroupSize(components.GroupFireballs); got != 0 {
		t.Fatalf("fireballs should not spawn before the skill is selected, got %d", got)
	}

	w.SelectedSkills[types.SkillFireball] = true
	ss.Update(w)
	if got := em.GroupSize(components.GroupFireballs); got != 1 {
		t.Errorf("fireballs = %d, want 1", got)
	}

	w.Now = 6001
	ss.Update(w)
	if got := em.GroupSize(components.GroupFireballs); got != 1 {
		t.Errorf("fireball cooldown not respected, got %d", got)
	}
}

func TestSpawnSystem_BouncingBallCap(t *testing.T) {
	w := newTestWorld(t)
	em := w.EntityManager
	ss := NewSpawnSystem()
	w.SelectedSkills[types.SkillBouncingBall] = true

	w.Now = 30001
	ss.Update(w)
	if got := em.GroupSize(components.GroupBouncingBalls); got != 1 {
		t.Fatalf("bouncing balls = %d, want 1", got)
	}

	for em.GroupSize(components.GroupBouncingBalls) < 5 {
		entities.NewBouncingBall(w)
	}
	w.Now = 60002
	ss.Update(w)
	if got := em.GroupSize(components.GroupBouncingBalls); got != 5 {
		t.Errorf("bouncing balls should be capped at 5, got %d", got)
	}
}
