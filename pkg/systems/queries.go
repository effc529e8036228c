package systems

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// MustTank 返回玩家坦克
// 坦克在模拟创建时生成，之后一直存在（被摧毁时只是生命值为 0），找不到说明状态已损坏
func MustTank(em *components.World) (ecs.EntityID, *components.Entity) {
	for id, e := range em.All() {
		if e.Kind == components.KindTank {
			return id, e
		}
	}
	panic("systems: expected exactly one tank entity, found none")
}

// CityCounts 返回城市总数和未被摧毁的数量
func CityCounts(em *components.World) (total, alive int) {
	for _, e := range em.All() {
		if e.Kind != components.KindCity {
			continue
		}
		total++
		if e.Health != nil && !e.Health.IsDestroyed() {
			alive++
		}
	}
	return total, alive
}

// randomGroundTarget 随机取一个地面落点，偏向屏幕中央（两次均匀抽样取平均）
func randomGroundTarget(rng randomSource) utils.Vec2 {
	spread := config.HalfWidth * config.DestinationSpread
	x := (rng.FloatRange(-spread, spread) + rng.FloatRange(-spread, spread)) / 2
	return utils.V2(x, config.GroundY)
}

// randomSource 系统需要的随机数接口，由 game.Random 实现
type randomSource interface {
	FloatRange(lo, hi float64) float64
	IntRange(lo, hi int) int
	Chance(p float64) bool
	Sign() float64
	Pick(n int) int
}
