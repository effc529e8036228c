package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按关卡文件路径创建场景，避免 game 与 scenes 循环依赖
type SceneFactory func(stagePath string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadStage 通过工厂创建并切换到指定关卡的场景
// 返回是否切换成功
func (sm *SceneManager) LoadStage(stagePath string) bool {
	log.Printf("[SceneManager] 加载关卡: %s", stagePath)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(stagePath)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建关卡场景: %s", stagePath)
		return false
	}

	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 成功切换到关卡: %s", stagePath)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 让当前场景在退出前保存状态
func (sm *SceneManager) SaveOnExit() {
	if s, ok := sm.currentScene.(Saveable); ok {
		if !s.SaveOnExit() {
			log.Printf("[SceneManager] Warning: scene failed to save on exit")
		}
	}
}
