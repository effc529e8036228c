package systems

import (
	"testing"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/utils"
)

// TestFlameEngulfExactStep 测试目标在半径首次覆盖它的那一步被吞没
// 半径序列 2, 8, 12, 16, ...：距离 15 的 UFO 在第 4 步（0.4 秒）被吞没
func TestFlameEngulfExactStep(t *testing.T) {
	w := newTestWorld(t)
	sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

	center := utils.V2(0, 60)
	exID := entities.NewExplosion(w.em, center, components.OwnerPlayer, components.ModeSingle, 0)
	ufo := entities.NewUfo(w.em, utils.V2(15, 60), utils.V2(300, 60), 30)

	for step := 1; step <= 3; step++ {
		sys.Update(config.FlameStepIntervalSecs)
		if !w.em.IsAlive(ufo) {
			t.Fatalf("第 %d 步（半径 %v）不应吞没距离 15 的 UFO", step, config.FlameRadiusSteps[step-1])
		}
	}

	sys.Update(config.FlameStepIntervalSecs)
	if w.em.IsAlive(ufo) {
		t.Fatal("第 4 步（半径 16）应吞没 UFO")
	}

	ex, _ := w.em.GetEntity(exID)
	if ex.Explosion.Radius != 16 {
		t.Errorf("当前半径 = %v, 期望 16", ex.Explosion.Radius)
	}
	if ex.Explosion.Accumulated != config.ScoreUfo || ex.Explosion.Combo != 1 {
		t.Errorf("Accumulated = %d, Combo = %d, 期望 %d, 1", ex.Explosion.Accumulated, ex.Explosion.Combo, config.ScoreUfo)
	}
	if len(w.events.Explosions) != 1 {
		t.Fatalf("UFO 被击毁应引发一次连锁爆炸，实际 %d", len(w.events.Explosions))
	}
	chain := w.events.Explosions[0]
	if chain.Owner != components.OwnerPlayer || chain.Mode != components.ModeChained || chain.Remaining != config.UfoChainCount {
		t.Errorf("连锁爆炸事件不对: %+v", chain)
	}
	if w.gs.Score != 0 {
		t.Error("爆炸结束前不应计分")
	}

	// 跑完剩余 6 步后结算
	for i := 0; i < 6; i++ {
		sys.Update(config.FlameStepIntervalSecs)
	}
	if w.gs.Score != config.ScoreUfo {
		t.Errorf("Score = %d, 期望 %d", w.gs.Score, config.ScoreUfo)
	}
	if len(w.events.ScoreGained) != 1 || w.events.ScoreGained[0].Previous != 0 || w.events.ScoreGained[0].Current != config.ScoreUfo {
		t.Errorf("得分事件不对: %+v", w.events.ScoreGained)
	}
	if ex.Flame != nil || ex.Explosion.Radius != 0 {
		t.Error("结束后应移除火焰步进器并把半径归零")
	}
}

// TestFlameEngulfBoundary 距离恰好等于半径也算吞没
func TestFlameEngulfBoundary(t *testing.T) {
	w := newTestWorld(t)
	sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

	entities.NewExplosion(w.em, utils.V2(0, 60), components.OwnerPlayer, components.ModeSingle, 0)
	missile := entities.NewEnemyMissile(w.em, utils.V2(0, 68), utils.V2(0, config.GroundY), 20, false)

	sys.Update(config.FlameStepIntervalSecs)
	if !w.em.IsAlive(missile) {
		t.Fatal("半径 2 不应吞没距离 8 的导弹")
	}
	sys.Update(config.FlameStepIntervalSecs)
	if w.em.IsAlive(missile) {
		t.Error("半径 8 应吞没距离 8 的导弹")
	}
}

// TestFlameEngulfCombo 测试连击计分：Combo * Accumulated
func TestFlameEngulfCombo(t *testing.T) {
	tests := []struct {
		name      string
		missiles  int
		wantScore int
	}{
		{"没有击中", 0, 0},
		{"一枚", 1, 100},
		{"两枚", 2, 400},
		{"三枚", 3, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

			entities.NewExplosion(w.em, utils.V2(0, 60), components.OwnerPlayer, components.ModeSingle, 0)
			for i := 0; i < tt.missiles; i++ {
				entities.NewEnemyMissile(w.em, utils.V2(float64(i), 61), utils.V2(0, config.GroundY), 20, false)
			}

			for i := 0; i < len(config.FlameRadiusSteps); i++ {
				sys.Update(config.FlameStepIntervalSecs)
			}

			if w.gs.Score != tt.wantScore {
				t.Errorf("Score = %d, 期望 %d", w.gs.Score, tt.wantScore)
			}
			wantEvents := 0
			if tt.wantScore > 0 {
				wantEvents = 1
			}
			if len(w.events.ScoreGained) != wantEvents {
				t.Errorf("得分事件数 = %d, 期望 %d", len(w.events.ScoreGained), wantEvents)
			}
		})
	}
}

// TestFlameEngulfOwnerRules 测试不同归属的爆炸吞没不同目标
func TestFlameEngulfOwnerRules(t *testing.T) {
	tests := []struct {
		name            string
		owner           components.ExplosionOwner
		wantMissileDead bool
		wantCityDead    bool
	}{
		{"玩家爆炸只打敌人", components.OwnerPlayer, true, false},
		{"敌方爆炸只打建筑", components.OwnerEnemy, false, true},
		{"无归属爆炸不吞没", components.OwnerNone, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

			city := cities(w.em)[0]
			center := city.Position
			entities.NewExplosion(w.em, center, tt.owner, components.ModeSingle, 0)
			missile := entities.NewEnemyMissile(w.em, center.Add(utils.V2(1, 1)), utils.V2(0, config.GroundY), 20, false)
			entities.NewPlayerMissile(w.em, center.Add(utils.V2(-1, 1)), utils.V2(0, 100), 1)

			for i := 0; i < len(config.FlameRadiusSteps); i++ {
				sys.Update(config.FlameStepIntervalSecs)
			}

			if got := !w.em.IsAlive(missile); got != tt.wantMissileDead {
				t.Errorf("敌方导弹被吞没 = %v, 期望 %v", got, tt.wantMissileDead)
			}
			if got := city.Health.IsDestroyed(); got != tt.wantCityDead {
				t.Errorf("城市被摧毁 = %v, 期望 %v", got, tt.wantCityDead)
			}
			if n := countKind(w.em, components.KindMissile); n < 1 {
				t.Error("玩家导弹不会被吞没")
			}
			if tt.wantCityDead {
				if len(w.events.Destroyed) != 1 || w.events.Destroyed[0].Kind != components.KindCity {
					t.Errorf("摧毁事件不对: %+v", w.events.Destroyed)
				}
			}
			if tt.owner == components.OwnerEnemy && w.gs.Score != 0 {
				t.Error("敌方爆炸不计分")
			}
		})
	}
}

// TestFlameEngulfTank 敌方爆炸摧毁坦克时引发连锁
func TestFlameEngulfTank(t *testing.T) {
	w := newTestWorld(t)
	sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

	_, tank := MustTank(w.em)
	entities.NewExplosion(w.em, tank.Position.Add(utils.V2(10, 0)), components.OwnerEnemy, components.ModeSingle, 0)

	for i := 0; i < 3; i++ {
		sys.Update(config.FlameStepIntervalSecs)
	}

	if !tank.Health.IsDestroyed() {
		t.Fatal("半径 12 应吞没距离 10 的坦克")
	}
	if len(w.events.Explosions) != 1 {
		t.Fatalf("坦克被摧毁应引发连锁爆炸，实际 %d", len(w.events.Explosions))
	}
	ev := w.events.Explosions[0]
	if ev.Owner != components.OwnerEnemy || ev.Mode != components.ModeChained || ev.Remaining != config.TankChainCount {
		t.Errorf("连锁爆炸事件不对: %+v", ev)
	}

	// 已被摧毁的目标不重复发出事件
	for i := 0; i < 7; i++ {
		sys.Update(config.FlameStepIntervalSecs)
	}
	if len(w.events.Destroyed) != 1 {
		t.Errorf("摧毁事件应只有一次，实际 %d", len(w.events.Destroyed))
	}
}

// TestFlameEngulfTankByOwner 任何有归属的爆炸都会炸毁离得太近的坦克
func TestFlameEngulfTankByOwner(t *testing.T) {
	tests := []struct {
		name     string
		owner    components.ExplosionOwner
		wantDead bool
	}{
		{"玩家自己的爆炸", components.OwnerPlayer, true},
		{"敌方爆炸", components.OwnerEnemy, true},
		{"无归属爆炸", components.OwnerNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

			_, tank := MustTank(w.em)
			entities.NewExplosion(w.em, tank.Position.Add(utils.V2(0, 10)), tt.owner, components.ModeSingle, 0)

			for i := 0; i < len(config.FlameRadiusSteps); i++ {
				sys.Update(config.FlameStepIntervalSecs)
			}

			if got := tank.Health.IsDestroyed(); got != tt.wantDead {
				t.Fatalf("坦克被摧毁 = %v, 期望 %v", got, tt.wantDead)
			}
			if !tt.wantDead {
				return
			}
			if len(w.events.Destroyed) != 1 || w.events.Destroyed[0].Kind != components.KindTank {
				t.Errorf("摧毁事件不对: %+v", w.events.Destroyed)
			}
			chained := 0
			for _, ev := range w.events.Explosions {
				if ev.Mode == components.ModeChained && ev.Remaining == config.TankChainCount {
					chained++
				}
			}
			if chained != 1 {
				t.Errorf("坦克被摧毁应引发一次连锁爆炸，实际 %d", chained)
			}
			for _, c := range cities(w.em) {
				if c.Health.IsDestroyed() {
					t.Error("城市不在爆炸范围内")
				}
			}
		})
	}
}

// TestFlameEngulfNonExplodable 不可引爆的导弹不会被吞没
func TestFlameEngulfNonExplodable(t *testing.T) {
	w := newTestWorld(t)
	sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

	entities.NewExplosion(w.em, utils.V2(0, 60), components.OwnerPlayer, components.ModeSingle, 0)
	id := entities.NewEnemyMissile(w.em, utils.V2(0, 61), utils.V2(0, config.GroundY), 20, false)
	m, _ := w.em.GetEntity(id)
	m.Explodable = false

	sys.Update(config.FlameStepIntervalSecs)
	if !w.em.IsAlive(id) {
		t.Error("不可引爆的导弹不应被吞没")
	}
}

// TestFlameEngulfIndependentExplosions 多个爆炸各自计时，互不影响
func TestFlameEngulfIndependentExplosions(t *testing.T) {
	w := newTestWorld(t)
	sys := NewFlameEngulfSystem(w.em, w.gs, w.events)

	first := entities.NewExplosion(w.em, utils.V2(-50, 60), components.OwnerPlayer, components.ModeSingle, 0)
	sys.Update(config.FlameStepIntervalSecs / 2)
	second := entities.NewExplosion(w.em, utils.V2(50, 60), components.OwnerPlayer, components.ModeSingle, 0)

	current := func(id ecs.EntityID) int {
		e, _ := w.em.GetEntity(id)
		return e.Flame.Current
	}

	sys.Update(config.FlameStepIntervalSecs / 2)
	if current(first) != 1 || current(second) != 0 {
		t.Fatalf("第一个爆炸应走一步，第二个不动: %d, %d", current(first), current(second))
	}

	sys.Update(config.FlameStepIntervalSecs / 2)
	if current(first) != 1 || current(second) != 1 {
		t.Errorf("第二个爆炸应走一步: %d, %d", current(first), current(second))
	}
}
