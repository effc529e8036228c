package systems

import (
	"testing"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/utils"
)

// TestBombDropSystem 测试 UFO 投弹
func TestBombDropSystem(t *testing.T) {
	tests := []struct {
		name      string
		chance    float64
		elapsed   float64
		wantBombs int
	}{
		{"必定投弹", 1.0, config.BombDropIntervalSecs, 1},
		{"未到间隔", 1.0, config.BombDropIntervalSecs / 2, 0},
		{"概率为 0", 0, config.BombDropIntervalSecs, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.stage.DropBombChanceBase = tt.chance
			sys := NewBombDropSystem(w.em, w.gs, w.stage, w.rng)

			ufoPos := utils.V2(-100, 60)
			entities.NewUfo(w.em, ufoPos, utils.V2(100, 60), 30)

			sys.Update(tt.elapsed)

			if n := countKind(w.em, components.KindMissile); n != tt.wantBombs {
				t.Fatalf("投弹数 = %d, 期望 %d", n, tt.wantBombs)
			}
			for _, e := range w.em.All() {
				if e.Kind == components.KindMissile {
					if e.Position != ufoPos || !e.Enemy {
						t.Errorf("炸弹应从 UFO 位置出发且为敌方: %+v", e.Position)
					}
					if e.Missile.Destination.Y != config.GroundY {
						t.Errorf("炸弹应落向地面，实际 %v", e.Missile.Destination)
					}
				}
			}
			if w.gs.WaveSpawnCount != 0 {
				t.Errorf("投弹不计入生成配额，实际 %d", w.gs.WaveSpawnCount)
			}
		})
	}
}
