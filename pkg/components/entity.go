package components

import (
	"github.com/decker502/invasion/pkg/ecs"
	"github.com/decker502/invasion/pkg/utils"
)

// EntityKind 实体类型
type EntityKind int

const (
	KindMissile EntityKind = iota
	KindUfo
	KindExplosion
	KindTank
	KindCity
	KindTargetLock
)

var kindNames = [...]string{
	KindMissile:    "missile",
	KindUfo:        "ufo",
	KindExplosion:  "explosion",
	KindTank:       "tank",
	KindCity:       "city",
	KindTargetLock: "target_lock",
}

// String 返回类型名称（日志用）
func (k EntityKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Entity 模拟中的一个实体
//
// 所有实体共用同一种记录，按 Kind 区分，可选部分用指针表示（nil 表示没有）。
// 例如火焰步进结束后 Flame 置为 nil，爆炸实体仍保留到动画播放完。
type Entity struct {
	Kind     EntityKind
	Position utils.Vec2

	// 标记
	Enemy      bool // 敌方单位（敌方导弹、UFO）
	Engulfable bool // 可被爆炸吞没
	Explodable bool // 可被玩家爆炸引爆

	// 可选部分
	Missile    *MissileComponent
	Ufo        *UfoComponent
	Explosion  *ExplosionComponent
	Flame      *FlameStepper
	Animation  *AnimationStepper
	Health     *HealthComponent
	TargetLock *TargetLockComponent
	Tank       *TankComponent
	City       *CityComponent
}

// World 模拟实体存储
type World = ecs.EntityManager[Entity]

// NewWorld 创建空的实体存储
func NewWorld() *World {
	return ecs.NewEntityManager[Entity]()
}
