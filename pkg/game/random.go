package game

import "math/rand"

// Random 模拟使用的随机数源
// 所有随机抽取都经过这里，相同种子 + 相同输入序列得到相同的对局
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom 使用指定种子创建随机数源
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed 返回创建时的种子
func (r *Random) Seed() int64 {
	return r.seed
}

// Reseed 用原种子重新开始序列
func (r *Random) Reseed() {
	r.rng = rand.New(rand.NewSource(r.seed))
}

// FloatRange 返回 [lo, hi) 区间的均匀随机浮点数
func (r *Random) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// IntRange 返回 [lo, hi] 区间的均匀随机整数（含上界）
func (r *Random) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Chance 以概率 p 返回 true
// p <= 0 恒为 false，p >= 1 恒为 true，不消耗随机数
func (r *Random) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}

// Sign 等概率返回 -1 或 1
func (r *Random) Sign() float64 {
	if r.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Pick 返回 [0, n) 区间的随机下标，n <= 0 时返回 -1
func (r *Random) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return r.rng.Intn(n)
}
