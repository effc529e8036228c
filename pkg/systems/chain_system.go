package systems

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// ChainSystem 连锁爆炸系统
//
// 连锁爆炸的计时器到时后，若 Remaining > 0，在附近随机偏移处请求一次新爆炸（Remaining 减一），
// 然后自身降级为单次爆炸，不会再次触发。
// 整条连锁由一次次新生成的爆炸实体接力完成，而不是在同一个实体上反复触发。
type ChainSystem struct {
	entityManager *components.World
	events        *game.TickEvents
	rng           randomSource
}

// NewChainSystem 创建连锁爆炸系统
func NewChainSystem(em *components.World, events *game.TickEvents, rng randomSource) *ChainSystem {
	return &ChainSystem{
		entityManager: em,
		events:        events,
		rng:           rng,
	}
}

// Update 推进所有连锁爆炸的计时器
func (s *ChainSystem) Update(deltaTime float64) {
	for _, e := range s.entityManager.All() {
		if e.Explosion == nil || e.Explosion.Mode != components.ModeChained {
			continue
		}

		chain := &e.Explosion.Chain
		chain.Timer.Tick(deltaTime)
		if !chain.Timer.JustFinished() {
			continue
		}

		if chain.Remaining > 0 {
			remaining := chain.Remaining - 1
			mode := components.ModeChained
			if remaining == 0 {
				mode = components.ModeSingle
			}
			offset := utils.V2(
				s.rng.FloatRange(-config.ChainJitter, config.ChainJitter),
				s.rng.FloatRange(-config.ChainJitter, config.ChainJitter),
			)
			s.events.Explosions = append(s.events.Explosions, game.ExplosionEvent{
				Position:  e.Position.Add(offset),
				Owner:     e.Explosion.Owner,
				Mode:      mode,
				Remaining: remaining,
			})
		}

		e.Explosion.Mode = components.ModeSingle
	}
}
