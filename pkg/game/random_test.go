package game

import "testing"

// TestRandomDeterministic 测试相同种子得到相同序列
func TestRandomDeterministic(t *testing.T) {
	a := NewRandom(220718)
	b := NewRandom(220718)
	for i := 0; i < 100; i++ {
		if a.FloatRange(-10, 10) != b.FloatRange(-10, 10) {
			t.Fatalf("第 %d 次抽取不一致", i)
		}
	}

	a.Reseed()
	c := NewRandom(220718)
	if a.IntRange(0, 1000) != c.IntRange(0, 1000) {
		t.Error("Reseed 后应从头开始")
	}
	if a.Seed() != 220718 {
		t.Errorf("Seed() = %d", a.Seed())
	}
}

// TestRandomRanges 测试区间
func TestRandomRanges(t *testing.T) {
	r := NewRandom(1)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		f := r.FloatRange(2, 5)
		if f < 2 || f >= 5 {
			t.Fatalf("FloatRange(2, 5) = %v 越界", f)
		}
		n := r.IntRange(1, 3)
		if n < 1 || n > 3 {
			t.Fatalf("IntRange(1, 3) = %d 越界", n)
		}
		if n == 1 {
			seenLo = true
		}
		if n == 3 {
			seenHi = true
		}
		s := r.Sign()
		if s != 1 && s != -1 {
			t.Fatalf("Sign() = %v", s)
		}
	}
	if !seenLo || !seenHi {
		t.Error("IntRange 应包含上下界")
	}

	if r.IntRange(4, 4) != 4 {
		t.Error("IntRange(4, 4) 应返回 4")
	}
	if r.FloatRange(3, 3) != 3 {
		t.Error("FloatRange(3, 3) 应返回 3")
	}
	if r.Pick(0) != -1 {
		t.Error("Pick(0) 应返回 -1")
	}
}

// TestRandomChance 测试概率边界
func TestRandomChance(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) 应恒为 false")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) 应恒为 true")
		}
		if r.Chance(-1) || !r.Chance(2) {
			t.Fatal("越界概率应被截断")
		}
	}

	hits := 0
	for i := 0; i < 10000; i++ {
		if r.Chance(0.3) {
			hits++
		}
	}
	if hits < 2700 || hits > 3300 {
		t.Errorf("Chance(0.3) 命中 %d/10000，偏离过大", hits)
	}
}

// TestIDCounter 测试发号与回绕
func TestIDCounter(t *testing.T) {
	var c IDCounter
	if c.Next() != 1 || c.Next() != 2 {
		t.Error("ID 应从 1 开始递增")
	}

	c.last = ^uint64(0)
	if id := c.Next(); id != 1 {
		t.Errorf("溢出后应回绕到 1（跳过 0），实际 %d", id)
	}
}
