package systems

import (
	"github.com/decker502/invasion/pkg/components"
)

// AnimationSystem 爆炸动画系统
// 按固定间隔推进动画帧；动画播放完、火焰结束且不再有待触发的连锁时移除爆炸实体
type AnimationSystem struct {
	entityManager *components.World
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *components.World) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有爆炸动画
func (s *AnimationSystem) Update(deltaTime float64) {
	for id, e := range s.entityManager.All() {
		if e.Animation == nil {
			continue
		}

		anim := e.Animation
		anim.Timer.Tick(deltaTime)
		for n := anim.Timer.TimesFinishedThisTick(); n > 0; n-- {
			if _, ok := anim.Next(); !ok {
				break
			}
		}

		if !anim.IsFinished() || e.Flame != nil {
			continue
		}
		if e.Explosion != nil && e.Explosion.Mode == components.ModeChained {
			continue
		}
		s.entityManager.DestroyEntity(id)
	}
}
