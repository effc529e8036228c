package components

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 一次性计时器：到时后保持完成状态，直到 Reset
	TimerOnce TimerMode = iota
	// TimerRepeating 循环计时器：到时后自动从头计时
	TimerRepeating
)

// timerEpsilon 浮点累加误差容限
// 例如 10 次 0.1 累加得到 0.9999999999999999，应当视为已到 1.0
const timerEpsilon = 1e-9

// Timer 通用计时器
// 用于生成间隔、分裂间隔、投弹间隔、火焰步进、连锁爆炸延迟、波次间歇等
//
// 时间单位为秒，由系统在每帧调用 Tick(deltaTime) 推进
type Timer struct {
	Duration float64   // 目标时间（秒）
	Elapsed  float64   // 当前已过时间（秒）
	Mode     TimerMode // 一次性 / 循环
	Paused   bool      // 暂停时 Tick 不推进

	finished      bool // 一次性：是否已完成；循环：本帧是否到时
	timesFinished int  // 本帧到时次数（循环计时器一帧内可能多次到时）
}

// NewTimer 创建计时器
func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick 推进计时器
func (t *Timer) Tick(deltaTime float64) {
	t.timesFinished = 0
	if t.Paused {
		return
	}

	if t.Mode == TimerOnce {
		if t.finished {
			return
		}
		t.Elapsed += deltaTime
		if t.Elapsed+timerEpsilon >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.timesFinished = 1
		}
		return
	}

	t.Elapsed += deltaTime
	t.finished = false
	if t.Elapsed+timerEpsilon < t.Duration {
		return
	}
	if t.Duration <= 0 {
		t.Elapsed = 0
		t.finished = true
		t.timesFinished = 1
		return
	}
	n := int((t.Elapsed + timerEpsilon) / t.Duration)
	t.Elapsed -= float64(n) * t.Duration
	if t.Elapsed < 0 {
		t.Elapsed = 0
	}
	t.finished = true
	t.timesFinished = n
}

// JustFinished 本帧是否到时
func (t *Timer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinishedThisTick 本帧到时次数
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Finished 一次性计时器是否已完成；循环计时器等同 JustFinished
func (t *Timer) Finished() bool {
	return t.finished
}

// Remaining 剩余时间（秒）
func (t *Timer) Remaining() float64 {
	return max(0, t.Duration-t.Elapsed)
}

// Reset 从头开始计时（保留暂停状态和时长）
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesFinished = 0
}

// SetDuration 修改目标时间，不影响已过时间
func (t *Timer) SetDuration(duration float64) {
	t.Duration = duration
}
