package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// ArrivalSystem 处理本帧的导弹到达事件
//
//   - 玩家导弹：移除同 LockID 的目标锁定标记，在目标点引发玩家爆炸
//   - 敌方导弹：在目标点引发敌方爆炸；落点直接命中坦克时坦克立即被摧毁，爆炸升级为连锁
type ArrivalSystem struct {
	entityManager *components.World
	events        *game.TickEvents
}

// NewArrivalSystem 创建到达处理系统
func NewArrivalSystem(em *components.World, events *game.TickEvents) *ArrivalSystem {
	return &ArrivalSystem{
		entityManager: em,
		events:        events,
	}
}

// Update 消费本帧的到达事件
func (s *ArrivalSystem) Update(deltaTime float64) {
	for _, arrival := range s.events.Arrivals {
		dest := arrival.Missile.Destination
		if !arrival.Enemy {
			s.removeTargetLocks(arrival.Missile.LockID)
			s.queueExplosion(dest, components.OwnerPlayer, components.ModeSingle, 0)
			continue
		}

		if s.directTankHit(dest) {
			s.queueExplosion(dest, components.OwnerEnemy, components.ModeChained, config.TankChainCount)
			continue
		}
		s.queueExplosion(dest, components.OwnerEnemy, components.ModeSingle, 0)
	}
}

// removeTargetLocks 移除同 LockID 的目标锁定标记，已不存在时什么也不做
func (s *ArrivalSystem) removeTargetLocks(lockID uint64) {
	for id, e := range s.entityManager.All() {
		if e.TargetLock != nil && e.TargetLock.LockID == lockID {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// directTankHit 落点是否直接命中坦克，命中时摧毁坦克并发出摧毁事件
func (s *ArrivalSystem) directTankHit(dest utils.Vec2) bool {
	tankID, tank := MustTank(s.entityManager)
	if tank.Health.IsDestroyed() {
		return false
	}
	if utils.Distance(dest, tank.Position) > config.TankBodyRadius {
		return false
	}

	tank.Health.Damage(tank.Health.CurrentHealth)
	s.events.Destroyed = append(s.events.Destroyed, game.DestroyedEvent{ID: tankID, Kind: components.KindTank})
	log.Printf("[ArrivalSystem] Direct hit on tank %d at (%.1f, %.1f)", tankID, dest.X, dest.Y)
	return true
}

func (s *ArrivalSystem) queueExplosion(pos utils.Vec2, owner components.ExplosionOwner, mode components.ExplosionMode, remaining int) {
	s.events.Explosions = append(s.events.Explosions, game.ExplosionEvent{
		Position:  pos,
		Owner:     owner,
		Mode:      mode,
		Remaining: remaining,
	})
}
