package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
)

// SplitSystem 导弹分裂系统
// 按分裂间隔随机挑一枚飞行中的敌方导弹，以 SplitChance 概率将其替换为 MaxSplit 枚新导弹
//
// 分裂产生的导弹不计入本波生成配额，也不会再次分裂
type SplitSystem struct {
	entityManager *components.World
	gameState     *game.GameState
	stage         *config.StageConfig
	rng           randomSource
	timer         components.Timer
}

// NewSplitSystem 创建导弹分裂系统
func NewSplitSystem(em *components.World, gs *game.GameState, stage *config.StageConfig, rng randomSource) *SplitSystem {
	return &SplitSystem{
		entityManager: em,
		gameState:     gs,
		stage:         stage,
		rng:           rng,
		timer:         components.NewTimer(stage.SplitInterval(gs.Wave.N), components.TimerRepeating),
	}
}

// Update 推进分裂计时器，到时尝试分裂一枚导弹
func (s *SplitSystem) Update(deltaTime float64) {
	if s.gameState.Phase != game.PhaseSpawning {
		s.timer.Reset()
		return
	}

	s.timer.SetDuration(s.stage.SplitInterval(s.gameState.Wave.N))
	s.timer.Tick(deltaTime)
	if s.timer.JustFinished() {
		s.trySplit()
	}
}

// candidates 可以分裂的导弹：敌方、非分裂产生、高于最低分裂高度
func (s *SplitSystem) candidates() []ecs.EntityID {
	return s.entityManager.Query(func(_ ecs.EntityID, e *components.Entity) bool {
		return e.Kind == components.KindMissile && e.Enemy && e.Missile != nil &&
			!e.Missile.FromSplit && e.Position.Y > config.SplitMinAltitude
	})
}

// trySplit 随机挑一枚导弹尝试分裂，没有候选时什么也不做
func (s *SplitSystem) trySplit() {
	candidates := s.candidates()
	if len(candidates) == 0 {
		return
	}

	wave := s.gameState.Wave.N
	id := candidates[s.rng.Pick(len(candidates))]
	if !s.rng.Chance(s.stage.SplitChance(wave)) {
		return
	}

	children := s.stage.MaxSplit(wave)
	if children <= 0 {
		return
	}

	parent, ok := s.entityManager.GetEntity(id)
	if !ok {
		return
	}
	origin := parent.Position
	speed := parent.Missile.Speed
	s.entityManager.DestroyEntity(id)

	for i := 0; i < children; i++ {
		entities.NewEnemyMissile(s.entityManager, origin, randomGroundTarget(s.rng), speed, true)
	}

	log.Printf("[SplitSystem] Missile %d split into %d at (%.1f, %.1f)", id, children, origin.X, origin.Y)
}
