package systems

import (
	"log"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/entities"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
)

// PlayerSystem 玩家坦克系统
// 处理坦克水平移动和发射反导导弹
type PlayerSystem struct {
	entityManager *components.World
	gameState     *game.GameState
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *components.World, gs *game.GameState) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// SetDirection 设置坦克移动方向，负数向左，正数向右，0 停止
func (s *PlayerSystem) SetDirection(direction float64) {
	_, tank := MustTank(s.entityManager)
	switch {
	case direction < 0:
		tank.Tank.Direction = -1
	case direction > 0:
		tank.Tank.Direction = 1
	default:
		tank.Tank.Direction = 0
	}
}

// Update 移动坦克，限制在屏幕内
func (s *PlayerSystem) Update(deltaTime float64) {
	_, tank := MustTank(s.entityManager)
	if tank.Health.IsDestroyed() || tank.Tank.Direction == 0 {
		return
	}

	limit := config.HalfWidth - config.TankBodyRadius
	x := tank.Position.X + tank.Tank.Direction*config.TankSpeed*deltaTime
	tank.Position.X = utils.ClampFloat(x, -limit, limit)
}

// Fire 向 target 发射一枚反导导弹
//
// 弹药为 0、坦克已被摧毁或已失败时什么也不做，返回 false
// 目标点会被限制在屏幕内、地面以上
func (s *PlayerSystem) Fire(target utils.Vec2) (ecs.EntityID, bool) {
	if s.gameState.Phase == game.PhaseDefeat {
		return 0, false
	}
	_, tank := MustTank(s.entityManager)
	if tank.Health.IsDestroyed() {
		return 0, false
	}
	if !s.gameState.SpendMissile() {
		return 0, false
	}

	target = utils.V2(
		utils.ClampFloat(target.X, -config.HalfWidth, config.HalfWidth),
		utils.ClampFloat(target.Y, config.GroundY, config.HalfHeight),
	)
	origin := tank.Position.Add(utils.V2(0, config.TurretOffsetY))
	lockID := s.gameState.IDs.Next()

	entities.NewTargetLock(s.entityManager, target, lockID)
	id := entities.NewPlayerMissile(s.entityManager, origin, target, lockID)
	log.Printf("[PlayerSystem] Fire lock=%d, ammo left %d", lockID, s.gameState.MissileReserve)
	return id, true
}
