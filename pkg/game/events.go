package game

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// ArrivalEvent 导弹到达目标点
type ArrivalEvent struct {
	ID      ecs.EntityID
	Missile components.MissileComponent // 到达时的导弹数据副本（实体已移除）
	Enemy   bool
}

// ExplosionEvent 请求在某处生成爆炸
type ExplosionEvent struct {
	Position  utils.Vec2
	Owner     components.ExplosionOwner
	Mode      components.ExplosionMode
	Remaining int // 连锁爆炸的后续次数，仅 ModeChained 有效
}

// DestroyedEvent 坦克或城市被摧毁
type DestroyedEvent struct {
	ID   ecs.EntityID
	Kind components.EntityKind
}

// ScoreGainedEvent 一次爆炸结束后计入总分
type ScoreGainedEvent struct {
	Previous int
	Current  int
}

// WaveCompletedEvent 波次完成，Wave 为新的波次号
type WaveCompletedEvent struct {
	Wave int
}

// TickEvents 一帧内各阶段之间传递的事件
//
// 在同一帧内生产和消费，下一帧开始时清空。
// Simulation.Update 返回的指针只在下一次 Update 之前有效。
type TickEvents struct {
	Arrivals      []ArrivalEvent
	Explosions    []ExplosionEvent
	Destroyed     []DestroyedEvent
	ScoreGained   []ScoreGainedEvent
	WaveCompleted []WaveCompletedEvent
	Defeat        bool // 本帧进入失败状态

	explosionsSpawned int // Explosions 中已生成实体的数量
}

// Clear 清空所有事件，复用底层数组
func (e *TickEvents) Clear() {
	e.Arrivals = e.Arrivals[:0]
	e.Explosions = e.Explosions[:0]
	e.Destroyed = e.Destroyed[:0]
	e.ScoreGained = e.ScoreGained[:0]
	e.WaveCompleted = e.WaveCompleted[:0]
	e.Defeat = false
	e.explosionsSpawned = 0
}

// PendingExplosions 返回尚未生成实体的爆炸事件，并标记为已处理
// Explosions 本身保留全部事件，供调用方查看本帧发生了哪些爆炸
func (e *TickEvents) PendingExplosions() []ExplosionEvent {
	pending := e.Explosions[e.explosionsSpawned:]
	e.explosionsSpawned = len(e.Explosions)
	return pending
}
