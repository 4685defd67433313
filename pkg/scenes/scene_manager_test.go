package scenes

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	err          error
}

func (m *MockScene) Update(deltaTime float64) error {
	m.updateCalled = true
	m.deltaTime = deltaTime
	return m.err
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene initially")
	}
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	if err := sm.Update(deltaTime); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerUpdatePropagatesError(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{err: ebiten.Termination})

	if err := sm.Update(1.0 / 60.0); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Update(1.0 / 60.0); err != nil {
		t.Errorf("Update without a scene should be a no-op, got %v", err)
	}
	sm.Draw(nil)
}
