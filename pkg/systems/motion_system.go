package systems

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// MotionSystem 导弹/UFO 运动系统
//
// 以恒定速度向目标点移动。剩余距离不超过本帧位移时视为到达：
// 停在目标点，导弹发出一次到达事件后移除，UFO 直接移除（不爆炸）
type MotionSystem struct {
	entityManager *components.World
	events        *game.TickEvents
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *components.World, events *game.TickEvents) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		events:        events,
	}
}

// Update 移动所有导弹和 UFO
func (s *MotionSystem) Update(deltaTime float64) {
	for id, e := range s.entityManager.All() {
		switch {
		case e.Missile != nil:
			pos, arrived := utils.MoveTowards(e.Position, e.Missile.Destination, e.Missile.Speed*deltaTime)
			e.Position = pos
			if arrived {
				s.events.Arrivals = append(s.events.Arrivals, game.ArrivalEvent{
					ID:      id,
					Missile: *e.Missile,
					Enemy:   e.Enemy,
				})
				s.entityManager.DestroyEntity(id)
			}

		case e.Ufo != nil:
			pos, arrived := utils.MoveTowards(e.Position, e.Ufo.Destination, e.Ufo.Speed*deltaTime)
			e.Position = pos
			if arrived {
				s.entityManager.DestroyEntity(id)
			}
		}
	}
}
