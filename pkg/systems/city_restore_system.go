package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
)

// CityRestoreSystem 城市修复系统
// 总分每跨过一个 CityRestoreScore 的整数倍，按从左到右的顺序修复一座被摧毁的城市
type CityRestoreSystem struct {
	entityManager *components.World
	events        *game.TickEvents
}

// NewCityRestoreSystem 创建城市修复系统
func NewCityRestoreSystem(em *components.World, events *game.TickEvents) *CityRestoreSystem {
	return &CityRestoreSystem{
		entityManager: em,
		events:        events,
	}
}

// Update 处理本帧的得分事件
func (s *CityRestoreSystem) Update(deltaTime float64) {
	for _, gained := range s.events.ScoreGained {
		crossings := gained.Current/config.CityRestoreScore - gained.Previous/config.CityRestoreScore
		for i := 0; i < crossings; i++ {
			if !s.restoreOne() {
				break
			}
		}
	}
}

// restoreOne 修复最左边一座被摧毁的城市，没有可修复的城市时返回 false
func (s *CityRestoreSystem) restoreOne() bool {
	for id, e := range s.entityManager.All() {
		if e.Kind != components.KindCity || e.Health == nil || !e.Health.IsDestroyed() {
			continue
		}
		e.Health.Restore()
		log.Printf("[CityRestoreSystem] City %d (index %d) restored", id, e.City.Index)
		return true
	}
	return false
}
