package config

// 游戏配置常量
// 本文件定义了模拟使用的全部固定参数：屏幕尺寸、弹药上限、爆炸半径序列、计分、计时间隔等
// 难度相关的可调参数在关卡文件（StageConfig）中，不在这里

// Screen Configuration (屏幕配置)
// 世界坐标原点在屏幕中心，X 向右，Y 向上
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 495.0

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 270.0

	// HalfWidth 屏幕半宽
	HalfWidth = ScreenWidth / 2

	// HalfHeight 屏幕半高
	HalfHeight = ScreenHeight / 2

	// GroundHeight 地面厚度，城市和坦克站在地面上
	GroundHeight = 20.0

	// GroundY 地面顶部的Y坐标（世界坐标）
	GroundY = -HalfHeight + GroundHeight

	// SpawnEdgeY 敌方导弹出生的顶部边缘Y坐标
	SpawnEdgeY = HalfHeight

	// UfoMinY / UfoMaxY UFO 飞行高度范围
	UfoMinY = 20.0
	UfoMaxY = HalfHeight - 25.0

	// UfoEdgeMargin UFO 从屏幕外多远处出现
	UfoEdgeMargin = 16.0

	// DestinationSpread 敌方导弹落点的横向范围比例（相对半宽）
	DestinationSpread = 0.9
)

// Player Configuration (玩家配置)
const (
	// MaxAmmo 玩家导弹储备上限，每波结束补满
	MaxAmmo = 30

	// TankSpeed 坦克水平移动速度（像素/秒）
	TankSpeed = 60.0

	// TankBodyRadius 坦克车身半径，敌方导弹落点在此范围内视为直接命中
	TankBodyRadius = 8.0

	// TankHealth 坦克生命值
	TankHealth = 1

	// TurretOffsetY 炮口相对坦克中心的高度
	TurretOffsetY = 6.0

	// PlayerMissileSpeed 玩家反导导弹速度（像素/秒）
	PlayerMissileSpeed = 180.0
)

// City Configuration (城市配置)
const (
	// CityCount 需要保卫的城市数量
	CityCount = 6

	// CityHealth 城市生命值
	CityHealth = 1

	// CityHalfWidth 城市半宽（用于绘制）
	CityHalfWidth = 10.0

	// CityRestoreScore 每累计这么多分修复一座被摧毁的城市
	CityRestoreScore = 10000
)

// Explosion Configuration (爆炸配置)
const (
	// FlameStepIntervalSecs 火焰半径每步持续时间（秒）
	FlameStepIntervalSecs = 0.1

	// AnimationStepIntervalSecs 爆炸动画每帧持续时间（秒）
	AnimationStepIntervalSecs = 0.1

	// ChainIntervalSecs 连锁爆炸的触发延迟（秒）
	ChainIntervalSecs = 0.15

	// ChainJitter 连锁爆炸相对原点的随机偏移范围（像素）
	ChainJitter = 12.0

	// UfoChainCount UFO 被击毁后的连锁爆炸次数
	UfoChainCount = 5

	// TankChainCount 坦克被击毁后的连锁爆炸次数
	TankChainCount = 8
)

// FlameRadiusSteps 爆炸火焰半径序列：先扩张后收缩，每 FlameStepIntervalSecs 取一个值
// 注意：是离散序列，不做插值
var FlameRadiusSteps = []float64{2, 8, 12, 16, 16, 16, 12, 12, 8, 2}

// ExplosionAnimationFrames 爆炸精灵图帧序列（explosion.png 共 4 帧）
var ExplosionAnimationFrames = []int{0, 1, 2, 3, 3, 3, 2, 2, 1, 0}

// Scoring (计分)
const (
	// ScoreMissile 击毁一枚敌方导弹的得分
	ScoreMissile = 100

	// ScoreUfo 击毁一架 UFO 的得分
	ScoreUfo = 1000
)

// Spawn Configuration (生成配置)
const (
	// BombDropIntervalSecs UFO 投弹判定间隔（秒）
	BombDropIntervalSecs = 1.0

	// SplitMinAltitude 只有高于此高度的导弹才会分裂
	SplitMinAltitude = 0.0

	// WaveCompleteTimeoutSecs 波次完成后的间歇时间（秒），期间暂停生成
	WaveCompleteTimeoutSecs = 3.0
)

// DefaultRandomSeed 默认随机种子
const DefaultRandomSeed = 220718

// DefaultStagePath 默认关卡文件
const DefaultStagePath = "data/stages/a.stage.yaml"
