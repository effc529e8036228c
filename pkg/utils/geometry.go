// Package utils 提供通用工具函数
package utils

import "math"

// Vec2 二维向量（世界坐标，原点在屏幕中心，Y轴向上）
type Vec2 struct {
	X, Y float64
}

// V2 构造 Vec2 的简写
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance 两点距离
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// MoveTowards 从 from 向 to 移动 step 距离
//
// 返回：
//   - Vec2: 移动后的位置；剩余距离不超过 step 时直接返回 to（不越过终点）
//   - bool: 是否已到达终点
func MoveTowards(from, to Vec2, step float64) (Vec2, bool) {
	delta := to.Sub(from)
	dist := delta.Length()
	if dist <= step {
		return to, true
	}
	return from.Add(delta.Scale(step / dist)), false
}

// ClampFloat 将值限制在 [lo, hi] 范围内
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
