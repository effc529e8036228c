package entities

import (
	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// NewTank 创建玩家坦克
// 坦克只能被敌方爆炸吞没，生命值归零即失败
func NewTank(em *components.World, pos utils.Vec2) ecs.EntityID {
	return em.CreateEntity(&components.Entity{
		Kind:       components.KindTank,
		Position:   pos,
		Engulfable: true,
		Health:     components.NewHealth(config.TankHealth),
		Tank:       &components.TankComponent{},
	})
}

// NewCity 创建城市
// 被摧毁的城市保留实体（生命值为 0），以便之后修复
func NewCity(em *components.World, pos utils.Vec2, index int) ecs.EntityID {
	return em.CreateEntity(&components.Entity{
		Kind:       components.KindCity,
		Position:   pos,
		Engulfable: true,
		Health:     components.NewHealth(config.CityHealth),
		City:       &components.CityComponent{Index: index},
	})
}

// CityPositions 返回城市位置
// 地面等分为 CityCount+2 段，中间一段留给坦克，两侧各放一半城市
func CityPositions() []utils.Vec2 {
	slots := config.CityCount + 2
	spacing := config.ScreenWidth / float64(slots)
	center := slots / 2

	positions := make([]utils.Vec2, 0, config.CityCount)
	for slot := 1; slot < slots; slot++ {
		if slot == center {
			continue
		}
		positions = append(positions, utils.V2(-config.HalfWidth+float64(slot)*spacing, config.GroundY))
	}
	return positions
}

// TankStartPosition 坦克初始位置（地面中央）
func TankStartPosition() utils.Vec2 {
	return utils.V2(0, config.GroundY)
}

// NewCityRow 创建全部城市，返回按从左到右排列的ID
func NewCityRow(em *components.World) []ecs.EntityID {
	positions := CityPositions()
	ids := make([]ecs.EntityID, len(positions))
	for i, pos := range positions {
		ids[i] = NewCity(em, pos, i)
	}
	return ids
}
