package entities

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// NewExplosion 创建爆炸实体
//
// 爆炸带有火焰步进器（吞没判定）和动画步进器（视觉），
// 火焰步进结束后 Flame 被移除，动画播放完后实体被移除。
//
// 参数:
//   - em: 实体存储
//   - pos: 爆炸中心
//   - owner: 归属，决定吞没哪些目标
//   - mode: 单次或连锁
//   - remaining: 连锁爆炸的后续次数，mode 为 ModeSingle 时忽略
func NewExplosion(em *components.World, pos utils.Vec2, owner components.ExplosionOwner, mode components.ExplosionMode, remaining int) ecs.EntityID {
	explosion := &components.ExplosionComponent{
		Owner: owner,
		Mode:  mode,
	}
	if mode == components.ModeChained {
		explosion.Chain = components.NewChainState(remaining)
	}

	return em.CreateEntity(&components.Entity{
		Kind:      components.KindExplosion,
		Position:  pos,
		Explosion: explosion,
		Flame:     components.NewFlameStepper(),
		Animation: components.NewAnimationStepper(),
	})
}
