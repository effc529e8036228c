package entities

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// NewEnemyMissile 创建敌方导弹实体
// 敌方导弹从 origin 以恒定速度飞向地面上的 dest，可被玩家爆炸引爆
//
// 参数:
//   - em: 实体存储
//   - origin: 发射点（屏幕顶部、分裂点或 UFO 位置）
//   - dest: 目标点
//   - speed: 速度（像素/秒），按波次由关卡配置计算
//   - fromSplit: 是否由分裂产生（分裂产生的导弹不再分裂）
//
// 返回:
//   - ecs.EntityID: 创建的导弹实体ID
func NewEnemyMissile(em *components.World, origin, dest utils.Vec2, speed float64, fromSplit bool) ecs.EntityID {
	return em.CreateEntity(&components.Entity{
		Kind:       components.KindMissile,
		Position:   origin,
		Enemy:      true,
		Engulfable: true,
		Explodable: true,
		Missile: &components.MissileComponent{
			Origin:      origin,
			Destination: dest,
			Speed:       speed,
			FromSplit:   fromSplit,
		},
	})
}

// NewPlayerMissile 创建玩家反导导弹实体
// 玩家导弹不可被吞没，到达后在目标点引发玩家爆炸，并移除同 lockID 的目标锁定标记
func NewPlayerMissile(em *components.World, origin, dest utils.Vec2, lockID uint64) ecs.EntityID {
	id := em.CreateEntity(&components.Entity{
		Kind:     components.KindMissile,
		Position: origin,
		Missile: &components.MissileComponent{
			Origin:      origin,
			Destination: dest,
			LockID:      lockID,
			Speed:       config.PlayerMissileSpeed,
		},
	})
	log.Printf("[MissileFactory] Player missile %d -> (%.1f, %.1f), lock=%d", id, dest.X, dest.Y, lockID)
	return id
}

// NewTargetLock 创建目标锁定标记
func NewTargetLock(em *components.World, pos utils.Vec2, lockID uint64) ecs.EntityID {
	return em.CreateEntity(&components.Entity{
		Kind:       components.KindTargetLock,
		Position:   pos,
		TargetLock: &components.TargetLockComponent{LockID: lockID},
	})
}

// NewUfo 创建 UFO 实体
// UFO 水平飞越屏幕，飞行途中按投弹计时器判定是否投下导弹
func NewUfo(em *components.World, origin, dest utils.Vec2, speed float64) ecs.EntityID {
	return em.CreateEntity(&components.Entity{
		Kind:       components.KindUfo,
		Position:   origin,
		Enemy:      true,
		Engulfable: true,
		Explodable: true,
		Ufo: &components.UfoComponent{
			Destination: dest,
			Speed:       speed,
			BombTimer:   components.NewTimer(config.BombDropIntervalSecs, components.TimerRepeating),
		},
	})
}
