package components

import "github.com/decker502/invasion/pkg/config"

// ExplosionOwner 爆炸归属，决定吞没哪些目标
type ExplosionOwner int

const (
	// OwnerPlayer 玩家导弹引发：吞没敌方导弹和 UFO
	OwnerPlayer ExplosionOwner = iota
	// OwnerEnemy 敌方导弹引发：吞没坦克和城市
	OwnerEnemy
	// OwnerNone 波次结束时强制引爆：只有视觉效果，不吞没任何目标
	OwnerNone
)

// String 返回归属名称（日志用）
func (o ExplosionOwner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	case OwnerNone:
		return "none"
	default:
		return "unknown"
	}
}

// ExplosionMode 爆炸模式
type ExplosionMode int

const (
	// ModeSingle 单次爆炸
	ModeSingle ExplosionMode = iota
	// ModeChained 连锁爆炸：计时器到时后在附近再引发一次爆炸
	ModeChained
)

// ChainState 连锁爆炸状态，仅在 ModeChained 下有效
type ChainState struct {
	Timer     Timer // 触发延迟（一次性）
	Remaining int   // 还要引发多少次后续爆炸
}

// ExplosionComponent 爆炸数据
// 记录本次爆炸累计得分和连击倍数，结束时以 Combo * Accumulated 计入总分
type ExplosionComponent struct {
	Owner       ExplosionOwner
	Accumulated int     // 本次爆炸吞没目标的累计得分
	Combo       int     // 连击数，每吞没一个目标加一
	Radius      float64 // 当前吞没判定半径（火焰步进器最近一次取出的值）
	Mode        ExplosionMode
	Chain       ChainState
}

// NewChainState 创建连锁状态，remaining 为后续爆炸次数
func NewChainState(remaining int) ChainState {
	return ChainState{
		Timer:     NewTimer(config.ChainIntervalSecs, TimerOnce),
		Remaining: remaining,
	}
}

// Scoring 击毁目标的得分类型
type Scoring int

const (
	// ScoringMissile 击毁敌方导弹
	ScoringMissile Scoring = config.ScoreMissile
	// ScoringUfo 击毁 UFO
	ScoringUfo Scoring = config.ScoreUfo
)

// Points 得分值
func (s Scoring) Points() int {
	return int(s)
}
