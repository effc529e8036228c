package systems

import (
	"testing"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
)

// testWorld 系统测试用的最小模拟环境
type testWorld struct {
	em     *components.World
	gs     *game.GameState
	stage  *config.StageConfig
	rng    *game.Random
	events *game.TickEvents
}

// newTestStage 构造测试关卡：EnemiesCount(0)=5，每次生成 1 枚导弹，不出 UFO，不分裂，不投弹
func newTestStage() *config.StageConfig {
	return &config.StageConfig{
		Name:              "Test",
		SpawnIntervalSecs: 1.0,
		SplitIntervalSecs: 1.0,
		EnemiesCountBase:  5,
		MissileSpawnMin:   1,
		MissileSpawnMax:   1,
		MissileSpeedBase:  20,
		UfoSpeedBase:      30,
		DifficultyBase:    1.0,
		DifficultyRate:    0,
	}
}

// newTestWorld 创建带坦克和城市的测试环境
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		em:     components.NewWorld(),
		gs:     game.NewGameState(),
		stage:  newTestStage(),
		rng:    game.NewRandom(config.DefaultRandomSeed),
		events: &game.TickEvents{},
	}
	entities.NewTank(w.em, entities.TankStartPosition())
	entities.NewCityRow(w.em)
	return w
}

// countKind 统计存活的某类实体
func countKind(em *components.World, kind components.EntityKind) int {
	n := 0
	for _, e := range em.All() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// cities 返回按创建顺序排列的城市实体
func cities(em *components.World) []*components.Entity {
	var result []*components.Entity
	for _, e := range em.All() {
		if e.Kind == components.KindCity {
			result = append(result, e)
		}
	}
	return result
}
