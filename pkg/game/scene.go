package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（如关卡开场、战斗）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间更新场景逻辑
	// deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
type Saveable interface {
	// SaveOnExit 退出时保存
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
