// Package simulation 波次战斗模拟器
//
// Simulation 持有实体存储、游戏状态、随机数源和全部系统，
// 宿主每帧调用一次 Update(dt)，系统按固定顺序依次执行，
// 同一帧内前面阶段产生的事件对后面阶段立即可见。
package simulation

import (
	"fmt"
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/systems"
	"github.com/decker502/invasion/pkg/utils"
)

// Simulation 一局游戏的完整模拟状态
// 单线程使用，不做任何加锁
type Simulation struct {
	entityManager *components.World
	gameState     *game.GameState
	rng           *game.Random
	stage         *config.StageConfig
	events        game.TickEvents

	spawnSystem       *systems.SpawnSystem
	splitSystem       *systems.SplitSystem
	bombDropSystem    *systems.BombDropSystem
	playerSystem      *systems.PlayerSystem
	motionSystem      *systems.MotionSystem
	arrivalSystem     *systems.ArrivalSystem
	chainSystem       *systems.ChainSystem
	explosionSystem   *systems.ExplosionSystem
	flameEngulfSystem *systems.FlameEngulfSystem
	cityRestoreSystem *systems.CityRestoreSystem
	animationSystem   *systems.AnimationSystem
	waveSystem        *systems.WaveSystem
}

// New 创建模拟：第 0 波，坦克在地面中央，城市完好
//
// 参数：
//
//	stage - 关卡配置，加载后不再修改
//	seed - 随机种子，相同种子和相同输入得到相同结果
func New(stage *config.StageConfig, seed int64) *Simulation {
	s := &Simulation{
		entityManager: components.NewWorld(),
		gameState:     game.NewGameState(),
		rng:           game.NewRandom(seed),
		stage:         stage,
	}
	s.populate()
	s.initSystems()

	log.Printf("[Simulation] Created stage %q, seed=%d", stage.Name, seed)
	return s
}

// populate 创建坦克和城市
func (s *Simulation) populate() {
	entities.NewTank(s.entityManager, entities.TankStartPosition())
	entities.NewCityRow(s.entityManager)
}

// initSystems 创建全部系统（系统内的计时器随之归零）
func (s *Simulation) initSystems() {
	em, gs, ev := s.entityManager, s.gameState, &s.events

	s.spawnSystem = systems.NewSpawnSystem(em, gs, s.stage, s.rng)
	s.splitSystem = systems.NewSplitSystem(em, gs, s.stage, s.rng)
	s.bombDropSystem = systems.NewBombDropSystem(em, gs, s.stage, s.rng)
	s.playerSystem = systems.NewPlayerSystem(em, gs)
	s.motionSystem = systems.NewMotionSystem(em, ev)
	s.arrivalSystem = systems.NewArrivalSystem(em, ev)
	s.chainSystem = systems.NewChainSystem(em, ev, s.rng)
	s.explosionSystem = systems.NewExplosionSystem(em, ev)
	s.flameEngulfSystem = systems.NewFlameEngulfSystem(em, gs, ev)
	s.cityRestoreSystem = systems.NewCityRestoreSystem(em, ev)
	s.animationSystem = systems.NewAnimationSystem(em)
	s.waveSystem = systems.NewWaveSystem(em, gs, s.stage, ev)
}

// Update 推进一帧
//
// 执行顺序：生成 → 分裂 → 投弹 → 坦克移动 → 运动 → 到达 → 连锁 → 爆炸 → 吞没 →
// 城市修复 → 动画 → 波次状态。爆炸生成在吞没前后和波次检查之后各跑一次，
// 保证本帧排队的爆炸都在本帧变成实体。
//
// 返回的事件只在下一次 Update 之前有效；暂停时返回空事件
func (s *Simulation) Update(deltaTime float64) *game.TickEvents {
	s.events.Clear()
	if s.gameState.Paused {
		return &s.events
	}

	s.spawnSystem.Update(deltaTime)
	s.splitSystem.Update(deltaTime)
	s.bombDropSystem.Update(deltaTime)
	s.playerSystem.Update(deltaTime)
	s.motionSystem.Update(deltaTime)
	s.arrivalSystem.Update(deltaTime)
	s.chainSystem.Update(deltaTime)
	s.explosionSystem.Update(deltaTime)
	s.flameEngulfSystem.Update(deltaTime)
	s.explosionSystem.Update(deltaTime)
	s.cityRestoreSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
	s.waveSystem.Update(deltaTime)
	s.explosionSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
	return &s.events
}

// Fire 向 target 发射反导导弹，弹药为 0 时什么也不做
func (s *Simulation) Fire(target utils.Vec2) (ecs.EntityID, bool) {
	if s.gameState.Paused {
		return 0, false
	}
	return s.playerSystem.Fire(target)
}

// SetTankDirection 设置坦克移动方向，负数向左，正数向右，0 停止
func (s *Simulation) SetTankDirection(direction float64) {
	s.playerSystem.SetDirection(direction)
}

// TogglePause 切换暂停，返回切换后的状态
func (s *Simulation) TogglePause() bool {
	s.gameState.Paused = !s.gameState.Paused
	return s.gameState.Paused
}

// Reset 从第 0 波重新开始：清空场地，随机数源回到初始种子
func (s *Simulation) Reset() {
	s.entityManager.Clear()
	s.gameState.Reset()
	s.rng.Reseed()
	s.events.Clear()
	s.populate()
	s.initSystems()
	log.Printf("[Simulation] Reset stage %q (seed=%d)", s.stage.Name, s.rng.Seed())
}

// mustTank 返回坦克实体，不存在说明状态已损坏
func (s *Simulation) mustTank() *components.Entity {
	for _, e := range s.entityManager.All() {
		if e.Kind == components.KindTank {
			return e
		}
	}
	panic(fmt.Sprintf("simulation: no tank entity in stage %q", s.stage.Name))
}

// ========== 只读访问（供 HUD 和渲染使用） ==========

// Score 总分
func (s *Simulation) Score() int { return s.gameState.Score }

// Wave 当前波次号（从 0 开始）
func (s *Simulation) Wave() int { return s.gameState.Wave.N }

// Ammo 剩余弹药
func (s *Simulation) Ammo() int { return s.gameState.MissileReserve }

// Phase 当前波次状态
func (s *Simulation) Phase() game.WavePhase { return s.gameState.Phase }

// Paused 是否暂停
func (s *Simulation) Paused() bool { return s.gameState.Paused }

// NextWaveIn 波次间歇剩余时间（秒）；空中还有敌方导弹时倒计时暂停，返回 ok=false
func (s *Simulation) NextWaveIn() (float64, bool) {
	timeout := &s.gameState.Wave.Timeout
	return timeout.Remaining(), !timeout.Paused
}

// Stage 关卡配置
func (s *Simulation) Stage() *config.StageConfig { return s.stage }

// World 实体存储，调用方只应读取
func (s *Simulation) World() *components.World { return s.entityManager }

// State 游戏状态，调用方只应读取
func (s *Simulation) State() *game.GameState { return s.gameState }

// CitiesAlive 未被摧毁的城市数
func (s *Simulation) CitiesAlive() int {
	_, alive := systems.CityCounts(s.entityManager)
	return alive
}

// TankAlive 坦克是否存活
func (s *Simulation) TankAlive() bool {
	return !s.mustTank().Health.IsDestroyed()
}

// TankPosition 坦克位置
func (s *Simulation) TankPosition() utils.Vec2 {
	return s.mustTank().Position
}
