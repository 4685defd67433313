package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/bullethell/pkg/components"
	"github.com/decker502/bullethell/pkg/config"
	"github.com/decker502/bullethell/pkg/game"
	"github.com/decker502/bullethell/pkg/types"
)

func newStartedSimulation(t *testing.T, seed int64) (*Simulation, *game.GameWorld) {
	t.Helper()
	w := game.NewGameWorld(config.DefaultGameConfig(), seed)
	sim := NewSimulation()
	sim.Start(w)
	return sim, w
}

// enemySnapshot 记录所有敌机的位置
func enemySnapshot(t *testing.T, w *game.GameWorld) [][2]float64 {
	t.Helper()
	var out [][2]float64
	for _, id := range w.EntityManager.Group(components.GroupEnemies) {
		pos := positionOf(t, w, id)
		out = append(out, [2]float64{pos.X, pos.Y})
	}
	return out
}

func TestSimulation_Start(t *testing.T) {
	_, w := newStartedSimulation(t, 1)
	em := w.EntityManager

	if _, ok := w.Player(); !ok {
		t.Fatal("player should exist")
	}
	if got := em.GroupSize(components.GroupEnemies); got != 8 {
		t.Errorf("initial enemies = %d, want 8", got)
	}
	if w.State != types.StatePlaying || w.Score != 0 {
		t.Errorf("state=%s score=%d, want Playing and 0", w.State, w.Score)
	}
}

func TestSimulation_FrozenStates(t *testing.T) {
	states := []types.GameStateType{
		types.StateSkillSelection,
		types.StateBossDefeated,
		types.StatePlayerDefeated,
	}

	for _, state := range states {
		t.Run(state.String(), func(t *testing.T) {
			sim, w := newStartedSimulation(t, 1)
			w.State = state
			before := enemySnapshot(t, w)

			sim.Step(w, 5000, game.InputState{MoveLeft: true})

			if after := enemySnapshot(t, w); !reflect.DeepEqual(before, after) {
				t.Error("entities should not move while the simulation is paused")
			}
			if got := w.EntityManager.GroupSize(components.GroupPlayerBullets); got != 0 {
				t.Errorf("player should not fire while paused, got %d bullets", got)
			}
		})
	}
}

func TestSimulation_SkillSelectionResumesSameTick(t *testing.T) {
	sim, w := newStartedSimulation(t, 3)
	sim.Skills.Open(w)
	offer := w.SkillOffer[0]

	sim.Step(w, 1000, game.InputState{Clicks: []game.Point{{X: 400, Y: 275}}})

	if w.State != types.StatePlaying {
		t.Fatalf("state = %s, want Playing", w.State)
	}
	if !w.SelectedSkills[offer] {
		t.Errorf("skill %s should be selected", offer)
	}
	if got := w.EntityManager.GroupSize(components.GroupPlayerBullets); got == 0 {
		t.Error("the playing tick should run right after the selection")
	}
}

func TestSimulation_BossTriggerEndsTick(t *testing.T) {
	sim, w := newStartedSimulation(t, 1)
	em := w.EntityManager
	w.Score = 100000

	sim.Step(w, 1000, game.InputState{})

	if w.State != types.StateBossFight {
		t.Fatalf("state = %s, want BossFight", w.State)
	}
	if got := em.GroupSize(components.GroupEnemies); got != 0 {
		t.Errorf("enemies should be cleared, got %d", got)
	}
	if got := em.GroupSize(components.GroupPlayerBullets); got != 0 {
		t.Errorf("no shots should be fired on the transition tick, got %d", got)
	}
	pos := positionOf(t, w, w.BossID)
	if pos.X != 400 || pos.Y != 125 {
		t.Errorf("boss should not move on its spawn tick, at (%v, %v)", pos.X, pos.Y)
	}

	sim.Step(w, 1016, game.InputState{})
	if pos.X != 402 {
		t.Errorf("boss X = %v after one tick, want 402", pos.X)
	}
	if got := em.GroupSize(components.GroupBossBullets); got != 1 {
		t.Errorf("boss should open fire on its first update, got %d bullets", got)
	}
	if got := em.GroupSize(components.GroupEnemies); got != 0 {
		t.Errorf("no enemies should spawn during the boss fight, got %d", got)
	}
}

func TestSimulation_RemovesDestroyedEntities(t *testing.T) {
	sim, w := newStartedSimulation(t, 1)
	em := w.EntityManager

	bullet := placeBullet(t, w, 400, 3, components.BulletFromPlayer, false)
	sim.Step(w, 100, game.InputState{})

	if em.IsAlive(bullet) {
		t.Error("off-screen bullet should be removed")
	}
	for _, id := range em.AllEntities() {
		if id == bullet {
			t.Error("removed bullet should not be listed")
		}
	}
}

func TestSimulation_Deterministic(t *testing.T) {
	run := func() (int, [][2]float64, int) {
		sim, w := newStartedSimulation(t, 99)
		tick := game.TickDuration(w.Config.Screen.TPS)
		for i := int64(1); i <= 1200; i++ {
			input := game.InputState{MoveLeft: i%200 < 100, MoveRight: i%200 >= 100}
			sim.Step(w, i*tick, input)
		}
		p, _ := w.Player()
		lives := 0
		if p != nil {
			lives = p.Lives
		}
		return w.Score, enemySnapshot(t, w), lives
	}

	score1, enemies1, lives1 := run()
	score2, enemies2, lives2 := run()

	if score1 != score2 || lives1 != lives2 || !reflect.DeepEqual(enemies1, enemies2) {
		t.Errorf("same seed should reproduce the same run: score %d/%d lives %d/%d", score1, score2, lives1, lives2)
	}
}
