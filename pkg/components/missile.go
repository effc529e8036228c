package components

import "github.com/decker502/invasion/pkg/utils"

// MissileComponent 导弹数据
// 敌我导弹共用，敌我由实体的 Enemy 标记区分
type MissileComponent struct {
	Origin      utils.Vec2 // 发射点（绘制尾迹用）
	Destination utils.Vec2 // 目标点，到达后爆炸
	LockID      uint64     // 与目标锁定标记关联的 ID，敌方导弹为 0
	Speed       float64    // 速度（像素/秒）
	FromSplit   bool       // 由分裂产生，不会再次分裂
}

// UfoComponent UFO 数据
type UfoComponent struct {
	Destination utils.Vec2 // 对侧屏幕外的目标点
	Speed       float64    // 速度（像素/秒）
	BombTimer   Timer      // 投弹判定计时器（循环）
}

// TargetLockComponent 目标锁定标记
// 玩家点击位置显示的准星，玩家导弹到达或被摧毁时按 LockID 一起移除
type TargetLockComponent struct {
	LockID uint64
}

// TankComponent 玩家坦克
type TankComponent struct {
	Direction float64 // 水平移动方向：-1 左，0 停，1 右
}

// CityComponent 城市
type CityComponent struct {
	Index int // 从左到右的序号
}
