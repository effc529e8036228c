package game

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
)

// WavePhase 波次状态
type WavePhase int

const (
	// PhaseSpawning 正常生成敌人
	PhaseSpawning WavePhase = iota
	// PhaseWaveComplete 本波生成配额已满，间歇倒计时中，暂停生成
	PhaseWaveComplete
	// PhaseDefeat 失败（终止状态），只能通过重置离开
	PhaseDefeat
)

// String 返回状态名称（日志用）
func (p WavePhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseWaveComplete:
		return "wave_complete"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Wave 当前波次
type Wave struct {
	N       int              // 波次号，从 0 开始
	Timeout components.Timer // 波次间歇倒计时，只在 PhaseWaveComplete 下、空中没有敌方导弹时推进
}

// GameState 存储一局模拟的全部共享状态
// 由 Simulation 持有，以指针传给各个系统；不是全局单例
type GameState struct {
	Wave           Wave
	WaveSpawnCount int // 本波已生成的敌人数，只由生成系统增加，只由 CompleteWave 清零
	Score          int
	MissileReserve int // 玩家导弹储备
	Phase          WavePhase
	Paused         bool
	IDs            IDCounter
}

// NewGameState 创建初始状态：第 0 波，弹药满
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset 回到第 0 波的初始状态
func (gs *GameState) Reset() {
	*gs = GameState{
		Wave: Wave{
			N:       0,
			Timeout: components.NewTimer(config.WaveCompleteTimeoutSecs, components.TimerOnce),
		},
		MissileReserve: config.MaxAmmo,
		Phase:          PhaseSpawning,
	}
}

// IsWaveFinished 本波生成配额是否已满
func (gs *GameState) IsWaveFinished(stage *config.StageConfig) bool {
	return stage.EnemiesCount(gs.Wave.N) <= gs.WaveSpawnCount
}

// RemainingSpawns 本波还能生成多少敌人
func (gs *GameState) RemainingSpawns(stage *config.StageConfig) int {
	return max(0, stage.EnemiesCount(gs.Wave.N)-gs.WaveSpawnCount)
}

// CompleteWave 进入下一波：波次号加一，生成计数清零，弹药补满
func (gs *GameState) CompleteWave() {
	gs.Wave.N++
	gs.WaveSpawnCount = 0
	gs.RefillMissiles()
}

// StartWaveTimeout 开始波次间歇倒计时
func (gs *GameState) StartWaveTimeout() {
	gs.Wave.Timeout.Reset()
	gs.Wave.Timeout.Paused = false
	gs.Phase = PhaseWaveComplete
}

// AddScore 增加分数，返回增加前后的总分
func (gs *GameState) AddScore(points int) (prev, current int) {
	prev = gs.Score
	gs.Score += points
	return prev, gs.Score
}

// SpendMissile 消耗一枚导弹，储备为 0 时返回 false
func (gs *GameState) SpendMissile() bool {
	if gs.MissileReserve <= 0 {
		return false
	}
	gs.MissileReserve--
	return true
}

// RefillMissiles 弹药补满
func (gs *GameState) RefillMissiles() {
	gs.MissileReserve = config.MaxAmmo
}
