package components

import "github.com/decker502/invasion/pkg/config"

// FlameStepper 爆炸火焰半径步进器
// 按固定间隔依次取出半径序列中的下一个值，作为当前的吞没判定半径
// 序列是离散的，先扩张后收缩，不做插值
type FlameStepper struct {
	Steps   []float64 // 半径序列
	Current int       // 下一个要取出的步骤索引
	Timer   Timer     // 步进计时器（循环）
}

// NewFlameStepper 使用默认半径序列创建火焰步进器
func NewFlameStepper() *FlameStepper {
	return &FlameStepper{
		Steps: config.FlameRadiusSteps,
		Timer: NewTimer(config.FlameStepIntervalSecs, TimerRepeating),
	}
}

// Next 取出下一个半径，序列耗尽时返回 false
func (s *FlameStepper) Next() (float64, bool) {
	if s.Current >= len(s.Steps) {
		return 0, false
	}
	radius := s.Steps[s.Current]
	s.Current++
	return radius, true
}

// IsFinished 半径序列是否已耗尽
func (s *FlameStepper) IsFinished() bool {
	return s.Current >= len(s.Steps)
}

// AnimationStepper 爆炸动画帧步进器
type AnimationStepper struct {
	Frames  []int // 帧序列
	Current int   // 下一个要取出的帧索引
	Frame   int   // 当前显示的帧
	Timer   Timer // 帧计时器（循环）
}

// NewAnimationStepper 使用默认爆炸帧序列创建动画步进器
func NewAnimationStepper() *AnimationStepper {
	return &AnimationStepper{
		Frames: config.ExplosionAnimationFrames,
		Frame:  config.ExplosionAnimationFrames[0],
		Timer:  NewTimer(config.AnimationStepIntervalSecs, TimerRepeating),
	}
}

// Next 取出下一帧，序列耗尽时返回 false
func (s *AnimationStepper) Next() (int, bool) {
	if s.Current >= len(s.Frames) {
		return 0, false
	}
	frame := s.Frames[s.Current]
	s.Current++
	s.Frame = frame
	return frame, true
}

// IsFinished 帧序列是否已播放完
func (s *AnimationStepper) IsFinished() bool {
	return s.Current >= len(s.Frames)
}
