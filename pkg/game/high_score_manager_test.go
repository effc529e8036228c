package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestHighScoreManagerNilGdata 测试降级模式
func TestHighScoreManagerNilGdata(t *testing.T) {
	hm := NewHighScoreManager(nil)

	if got := hm.Get("Outskirts"); got.Score != 0 || got.Wave != 0 {
		t.Errorf("空记录应为零值，实际 %+v", got)
	}

	improved, err := hm.Record("Outskirts", 1200, 3)
	if err != nil {
		t.Fatalf("降级模式 Record 不应报错: %v", err)
	}
	if !improved {
		t.Error("首次记录应刷新")
	}
	if got := hm.Get("Outskirts"); got.Score != 1200 || got.Wave != 3 {
		t.Errorf("记录 = %+v, 期望 {1200 3}", got)
	}
}

// TestHighScoreRecord 测试刷新规则
func TestHighScoreRecord(t *testing.T) {
	tests := []struct {
		name         string
		score, wave  int
		wantImproved bool
		want         HighScore
	}{
		{"分数和波次都更低", 500, 1, false, HighScore{Score: 1000, Wave: 2}},
		{"只有分数更高", 1500, 1, true, HighScore{Score: 1500, Wave: 2}},
		{"只有波次更远", 100, 5, true, HighScore{Score: 1000, Wave: 5}},
		{"持平", 1000, 2, false, HighScore{Score: 1000, Wave: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hm := NewHighScoreManager(nil)
			hm.Record("A", 1000, 2)

			improved, _ := hm.Record("A", tt.score, tt.wave)
			if improved != tt.wantImproved {
				t.Errorf("improved = %v, 期望 %v", improved, tt.wantImproved)
			}
			if got := hm.Get("A"); got != tt.want {
				t.Errorf("记录 = %+v, 期望 %+v", got, tt.want)
			}
		})
	}
}

// TestHighScoreLoadSave 测试持久化
func TestHighScoreLoadSave(t *testing.T) {
	manager := newTestGdataManager(t, "invasion_test_scores")

	hm1 := NewHighScoreManager(manager)
	if _, err := hm1.Record("Outskirts", 4200, 7); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if _, err := hm1.Record("Harbor", 300, 1); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	hm2 := NewHighScoreManager(manager)
	if got := hm2.Get("Outskirts"); got.Score != 4200 || got.Wave != 7 {
		t.Errorf("Outskirts 记录 = %+v, 期望 {4200 7}", got)
	}
	if got := hm2.Get("Harbor"); got.Score != 300 {
		t.Errorf("Harbor 记录 = %+v, 期望分数 300", got)
	}
}

// TestHighScoreLoadCorrupted 测试损坏的存档
func TestHighScoreLoadCorrupted(t *testing.T) {
	manager := newTestGdataManager(t, "invasion_test_scores_corrupt")

	if err := manager.SaveObjectProp(scoresObject, scoresProperty, []byte("stages: [not, a, map")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	hm := NewHighScoreManager(manager)
	if err := hm.Load(); err == nil {
		t.Error("损坏的存档应返回错误")
	}
	if got := hm.Get("Outskirts"); got.Score != 0 {
		t.Errorf("加载失败后应为空记录，实际 %+v", got)
	}
	// 加载失败后仍可正常记录
	if _, err := hm.Record("Outskirts", 10, 0); err != nil {
		t.Errorf("Record() error: %v", err)
	}
}
