package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// SpawnSystem 敌人生成系统
//
// 职责：
//   - 按生成间隔（随波次缩短）周期性做一次生成决策
//   - 以 UfoChance 概率生成一架 UFO
//   - 生成 [MissileSpawnMin, MissileSpawnMax] 枚敌方导弹
//   - 累加本波生成计数，不超过本波配额
//
// 只在 PhaseSpawning 下工作；其余状态计时器保持归零，恢复生成后重新计时
type SpawnSystem struct {
	entityManager *components.World
	gameState     *game.GameState
	stage         *config.StageConfig
	rng           randomSource
	timer         components.Timer
}

// NewSpawnSystem 创建敌人生成系统
//
// 参数：
//
//	em - 实体存储
//	gs - 游戏状态（读取波次、更新生成计数）
//	stage - 关卡配置
//	rng - 随机数源
func NewSpawnSystem(em *components.World, gs *game.GameState, stage *config.StageConfig, rng randomSource) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		gameState:     gs,
		stage:         stage,
		rng:           rng,
		timer:         components.NewTimer(stage.SpawnInterval(gs.Wave.N), components.TimerRepeating),
	}
}

// Update 推进生成计时器，到时做生成决策
func (s *SpawnSystem) Update(deltaTime float64) {
	if s.gameState.Phase != game.PhaseSpawning {
		s.timer.Reset()
		return
	}

	s.timer.SetDuration(s.stage.SpawnInterval(s.gameState.Wave.N))
	s.timer.Tick(deltaTime)
	for i := 0; i < s.timer.TimesFinishedThisTick(); i++ {
		s.spawnOnce()
	}
}

// spawnOnce 一次生成决策
func (s *SpawnSystem) spawnOnce() {
	wave := s.gameState.Wave.N
	remaining := s.gameState.RemainingSpawns(s.stage)
	if remaining == 0 {
		return
	}

	ufos := 0
	if s.rng.Chance(s.stage.UfoChance(wave)) {
		s.spawnUfo(wave)
		s.gameState.WaveSpawnCount++
		remaining--
		ufos++
	}

	count := s.rng.IntRange(s.stage.MissileSpawnMinAt(wave), s.stage.MissileSpawnMaxAt(wave))
	count = min(count, remaining)
	for i := 0; i < count; i++ {
		s.spawnMissile(wave)
		s.gameState.WaveSpawnCount++
	}

	log.Printf("[SpawnSystem] Spawned %d missiles, %d ufos (wave=%d, count=%d/%d)",
		count, ufos, wave, s.gameState.WaveSpawnCount, s.stage.EnemiesCount(wave))
}

// spawnMissile 在屏幕顶部随机位置生成一枚敌方导弹
func (s *SpawnSystem) spawnMissile(wave int) {
	origin := utils.V2(s.rng.FloatRange(-config.HalfWidth, config.HalfWidth), config.SpawnEdgeY)
	dest := randomGroundTarget(s.rng)
	entities.NewEnemyMissile(s.entityManager, origin, dest, s.stage.MissileSpeed(wave), false)
}

// spawnUfo 在屏幕左侧或右侧外生成 UFO，飞向对侧
func (s *SpawnSystem) spawnUfo(wave int) {
	side := s.rng.Sign()
	y := s.rng.FloatRange(config.UfoMinY, config.UfoMaxY)
	x := side * (config.HalfWidth + config.UfoEdgeMargin)
	entities.NewUfo(s.entityManager, utils.V2(x, y), utils.V2(-x, y), s.stage.UfoSpeed(wave))
}
