package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	// Create a dummy screen image
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	// Don't set any scene, currentScene should be nil
	sm.Draw(screen) // Should not panic
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	// Switch to scene1
	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	// Switch to scene2
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// TestSceneManagerLoadStage 测试通过工厂切换关卡
func TestSceneManagerLoadStage(t *testing.T) {
	sm := NewSceneManager()

	if sm.LoadStage("data/stages/a.stage.yaml") {
		t.Error("未设置工厂时 LoadStage 应失败")
	}

	var requested string
	created := &MockScene{}
	sm.SetSceneFactory(func(stagePath string) Scene {
		requested = stagePath
		if stagePath == "bad" {
			return nil
		}
		return created
	})

	if !sm.LoadStage("data/stages/a.stage.yaml") {
		t.Fatal("LoadStage 应成功")
	}
	if requested != "data/stages/a.stage.yaml" {
		t.Errorf("工厂收到的路径 = %q", requested)
	}
	if sm.GetCurrentScene() != created {
		t.Error("应切换到工厂创建的场景")
	}

	if sm.LoadStage("bad") {
		t.Error("工厂返回 nil 时 LoadStage 应失败")
	}
	if sm.GetCurrentScene() != created {
		t.Error("失败时不应改变当前场景")
	}
}

// savingScene 实现 Saveable 的测试场景
type savingScene struct {
	MockScene
	saved bool
}

func (s *savingScene) SaveOnExit() bool {
	s.saved = true
	return true
}

// TestSceneManagerSaveOnExit 测试退出保存
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	sm.SaveOnExit() // 没有场景时不应 panic

	sm.SwitchTo(&MockScene{})
	sm.SaveOnExit() // 不实现 Saveable 的场景被忽略

	scene := &savingScene{}
	sm.SwitchTo(scene)
	sm.SaveOnExit()
	if !scene.saved {
		t.Error("应调用 SaveOnExit")
	}
}
