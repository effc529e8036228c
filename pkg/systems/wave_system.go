package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
)

// WaveSystem 波次/失败状态机
//
// 状态转换：
//   - Spawning → WaveComplete：本波生成配额已满。进入下一波（弹药补满），开始间歇，暂停生成；
//     场上的敌人继续飞行，可以命中城市和坦克
//   - WaveComplete → Spawning：间歇倒计时结束。倒计时只在空中没有敌方导弹时推进，
//     结束时仍在场上的敌方单位（通常是 UFO）被强制引爆（无归属爆炸，不计分）
//   - 任意状态 → Defeat：城市全部被摧毁或坦克被摧毁，每帧检查
//
// Defeat 是终止状态，只能通过重置模拟离开
type WaveSystem struct {
	entityManager *components.World
	gameState     *game.GameState
	stage         *config.StageConfig
	events        *game.TickEvents
}

// NewWaveSystem 创建波次状态机
func NewWaveSystem(em *components.World, gs *game.GameState, stage *config.StageConfig, events *game.TickEvents) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		gameState:     gs,
		stage:         stage,
		events:        events,
	}
}

// Update 检查失败条件并推进波次状态
func (s *WaveSystem) Update(deltaTime float64) {
	gs := s.gameState
	if gs.Phase == game.PhaseDefeat {
		return
	}

	if s.isDefeated() {
		gs.Phase = game.PhaseDefeat
		s.events.Defeat = true
		log.Printf("[WaveSystem] Defeat at wave %d, score %d", gs.Wave.N, gs.Score)
		return
	}

	switch gs.Phase {
	case game.PhaseSpawning:
		if !gs.IsWaveFinished(s.stage) {
			return
		}
		gs.CompleteWave()
		gs.StartWaveTimeout()
		s.events.WaveCompleted = append(s.events.WaveCompleted, game.WaveCompletedEvent{Wave: gs.Wave.N})
		log.Printf("[WaveSystem] Wave complete, next wave %d", gs.Wave.N)

	case game.PhaseWaveComplete:
		gs.Wave.Timeout.Paused = s.enemyMissilesInFlight()
		gs.Wave.Timeout.Tick(deltaTime)
		if !gs.Wave.Timeout.Finished() {
			return
		}
		cleared := s.explodeEnemies()
		gs.Phase = game.PhaseSpawning
		log.Printf("[WaveSystem] Wave %d started (cleared %d enemies)", gs.Wave.N, cleared)
	}
}

// enemyMissilesInFlight 空中是否还有敌方导弹
func (s *WaveSystem) enemyMissilesInFlight() bool {
	for _, e := range s.entityManager.All() {
		if e.Enemy && e.Kind == components.KindMissile {
			return true
		}
	}
	return false
}

// isDefeated 坦克被摧毁或城市全部被摧毁
func (s *WaveSystem) isDefeated() bool {
	_, tank := MustTank(s.entityManager)
	if tank.Health.IsDestroyed() {
		return true
	}
	total, alive := CityCounts(s.entityManager)
	return total > 0 && alive == 0
}

// explodeEnemies 强制引爆场上所有敌方单位，返回引爆数量
func (s *WaveSystem) explodeEnemies() int {
	count := 0
	for id, e := range s.entityManager.All() {
		if !e.Enemy {
			continue
		}
		s.entityManager.DestroyEntity(id)
		s.events.Explosions = append(s.events.Explosions, game.ExplosionEvent{
			Position: e.Position,
			Owner:    components.OwnerNone,
			Mode:     components.ModeSingle,
		})
		count++
	}
	return count
}
