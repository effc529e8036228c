package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// FlameEngulfSystem 爆炸吞没系统
//
// 每个爆炸的火焰步进器每 FlameStepIntervalSecs 取出下一个半径，
// 在该步内吞没距离不超过半径的目标：
//   - 玩家爆炸：敌方导弹（需可引爆）加 Missile 分，UFO 加 Ufo 分并引发连锁爆炸，连击数加一；
//     离得太近的坦克同样会被炸毁，城市不受影响
//   - 敌方爆炸：坦克和城市扣血，被摧毁时发出摧毁事件，坦克被摧毁时引发连锁爆炸
//   - 无归属爆炸：不吞没任何目标
//
// 半径序列耗尽后把 Combo * Accumulated 计入总分，移除火焰步进器（爆炸动画继续播放）
type FlameEngulfSystem struct {
	entityManager *components.World
	gameState     *game.GameState
	events        *game.TickEvents
}

// NewFlameEngulfSystem 创建爆炸吞没系统
func NewFlameEngulfSystem(em *components.World, gs *game.GameState, events *game.TickEvents) *FlameEngulfSystem {
	return &FlameEngulfSystem{
		entityManager: em,
		gameState:     gs,
		events:        events,
	}
}

// Update 推进所有爆炸的火焰步进器
// 每个爆炸每帧都会处理，某个爆炸本帧没有到步不影响其他爆炸
func (s *FlameEngulfSystem) Update(deltaTime float64) {
	for _, e := range s.entityManager.All() {
		if e.Explosion == nil || e.Flame == nil {
			continue
		}

		e.Flame.Timer.Tick(deltaTime)
		for step := e.Flame.Timer.TimesFinishedThisTick(); step > 0; step-- {
			radius, ok := e.Flame.Next()
			if !ok {
				break
			}
			e.Explosion.Radius = radius
			s.engulf(e)
		}

		if e.Flame.IsFinished() {
			s.finish(e)
		}
	}
}

// engulf 吞没当前半径内的目标
func (s *FlameEngulfSystem) engulf(explosion *components.Entity) {
	switch explosion.Explosion.Owner {
	case components.OwnerPlayer:
		s.engulfEnemies(explosion)
		s.engulfStructures(explosion, false)
	case components.OwnerEnemy:
		s.engulfStructures(explosion, true)
	}
}

// engulfEnemies 玩家爆炸吞没敌方导弹和 UFO
func (s *FlameEngulfSystem) engulfEnemies(explosion *components.Entity) {
	ex := explosion.Explosion
	for id, target := range s.entityManager.All() {
		if !target.Enemy || !target.Engulfable {
			continue
		}
		if utils.Distance(explosion.Position, target.Position) > ex.Radius {
			continue
		}

		switch target.Kind {
		case components.KindMissile:
			if !target.Explodable {
				continue
			}
			s.entityManager.DestroyEntity(id)
			ex.Accumulated += components.ScoringMissile.Points()
			ex.Combo++

		case components.KindUfo:
			s.entityManager.DestroyEntity(id)
			ex.Accumulated += components.ScoringUfo.Points()
			ex.Combo++
			s.events.Explosions = append(s.events.Explosions, game.ExplosionEvent{
				Position:  target.Position,
				Owner:     components.OwnerPlayer,
				Mode:      components.ModeChained,
				Remaining: config.UfoChainCount,
			})
			log.Printf("[FlameEngulfSystem] Ufo %d destroyed at (%.1f, %.1f)", id, target.Position.X, target.Position.Y)
		}
	}
}

// engulfStructures 吞没坦克，withCities 为 true 时也吞没城市
func (s *FlameEngulfSystem) engulfStructures(explosion *components.Entity, withCities bool) {
	radius := explosion.Explosion.Radius
	for id, target := range s.entityManager.All() {
		if target.Enemy || !target.Engulfable || target.Health == nil {
			continue
		}
		if target.Kind == components.KindCity && !withCities {
			continue
		}
		if utils.Distance(explosion.Position, target.Position) > radius {
			continue
		}
		if !target.Health.Damage(1) {
			continue
		}

		s.events.Destroyed = append(s.events.Destroyed, game.DestroyedEvent{ID: id, Kind: target.Kind})
		log.Printf("[FlameEngulfSystem] %s %d destroyed", target.Kind, id)

		if target.Kind == components.KindTank {
			s.events.Explosions = append(s.events.Explosions, game.ExplosionEvent{
				Position:  target.Position,
				Owner:     components.OwnerEnemy,
				Mode:      components.ModeChained,
				Remaining: config.TankChainCount,
			})
		}
	}
}

// finish 结算爆炸得分并移除火焰步进器
func (s *FlameEngulfSystem) finish(explosion *components.Entity) {
	ex := explosion.Explosion
	if points := ex.Combo * ex.Accumulated; points > 0 {
		prev, current := s.gameState.AddScore(points)
		s.events.ScoreGained = append(s.events.ScoreGained, game.ScoreGainedEvent{Previous: prev, Current: current})
		log.Printf("[FlameEngulfSystem] Score +%d (combo=%d x %d), total=%d", points, ex.Combo, ex.Accumulated, current)
	}
	ex.Radius = 0
	explosion.Flame = nil
}
