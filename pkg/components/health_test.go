package components

import "testing"

// TestHealthDamage 测试扣血与摧毁判定
func TestHealthDamage(t *testing.T) {
	tests := []struct {
		name          string
		max           int
		damage        []int
		wantHealth    int
		wantDestroyed bool
	}{
		{"一击摧毁", 1, []int{1}, 0, true},
		{"伤害溢出不为负", 2, []int{5}, 0, true},
		{"未摧毁", 3, []int{1}, 2, false},
		{"多次扣血", 3, []int{1, 1, 1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.max)
			for _, d := range tt.damage {
				h.Damage(d)
			}
			if h.CurrentHealth != tt.wantHealth {
				t.Errorf("CurrentHealth = %d, 期望 %d", h.CurrentHealth, tt.wantHealth)
			}
			if h.IsDestroyed() != tt.wantDestroyed {
				t.Errorf("IsDestroyed = %v, 期望 %v", h.IsDestroyed(), tt.wantDestroyed)
			}
		})
	}
}

// TestHealthDamageReportsOnce 测试摧毁只报告一次
func TestHealthDamageReportsOnce(t *testing.T) {
	h := NewHealth(1)
	if !h.Damage(1) {
		t.Fatal("第一次致命伤害应返回 true")
	}
	if h.Damage(1) {
		t.Error("已摧毁后再次伤害应返回 false")
	}

	h.Restore()
	if h.IsDestroyed() || h.CurrentHealth != 1 {
		t.Error("Restore 后应恢复满血")
	}
}
