package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
)

// BombDropSystem UFO 投弹系统
// 每架 UFO 带一个投弹计时器，到时以 DropBombChance 概率从 UFO 当前位置投下一枚敌方导弹
type BombDropSystem struct {
	entityManager *components.World
	gameState     *game.GameState
	stage         *config.StageConfig
	rng           randomSource
}

// NewBombDropSystem 创建投弹系统
func NewBombDropSystem(em *components.World, gs *game.GameState, stage *config.StageConfig, rng randomSource) *BombDropSystem {
	return &BombDropSystem{
		entityManager: em,
		gameState:     gs,
		stage:         stage,
		rng:           rng,
	}
}

// Update 推进所有 UFO 的投弹计时器
func (s *BombDropSystem) Update(deltaTime float64) {
	if s.gameState.Phase != game.PhaseSpawning {
		return
	}

	wave := s.gameState.Wave.N
	for id, e := range s.entityManager.All() {
		if e.Ufo == nil {
			continue
		}
		e.Ufo.BombTimer.Tick(deltaTime)
		if !e.Ufo.BombTimer.JustFinished() {
			continue
		}
		if !s.rng.Chance(s.stage.DropBombChance(wave)) {
			continue
		}
		entities.NewEnemyMissile(s.entityManager, e.Position, randomGroundTarget(s.rng), s.stage.MissileSpeed(wave), false)
		log.Printf("[BombDropSystem] Ufo %d dropped a bomb at (%.1f, %.1f)", id, e.Position.X, e.Position.Y)
	}
}
