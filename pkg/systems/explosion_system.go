package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
)

// ExplosionSystem 把本帧排队的爆炸事件变成爆炸实体
// 一帧内会被调用多次，每次只处理上次之后新增的事件
type ExplosionSystem struct {
	entityManager *components.World
	events        *game.TickEvents
}

// NewExplosionSystem 创建爆炸生成系统
func NewExplosionSystem(em *components.World, events *game.TickEvents) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
		events:        events,
	}
}

// Update 生成待处理的爆炸
func (s *ExplosionSystem) Update(deltaTime float64) {
	for _, ev := range s.events.PendingExplosions() {
		id := entities.NewExplosion(s.entityManager, ev.Position, ev.Owner, ev.Mode, ev.Remaining)
		if ev.Mode == components.ModeChained {
			log.Printf("[ExplosionSystem] Chained explosion %d (%s) at (%.1f, %.1f), remaining=%d",
				id, ev.Owner, ev.Position.X, ev.Position.Y, ev.Remaining)
		}
	}
}
