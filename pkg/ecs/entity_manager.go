package ecs

import "iter"

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体
//
// 与组件按类型动态挂载的做法不同，这里每个实体就是一条类型为 E 的记录，
// 可选部件用记录里的指针字段表示（nil 表示"没有这个组件"）。
//
// 迭代顺序固定为实体创建顺序，保证同一随机种子下模拟结果可复现。
type EntityManager[E any] struct {
	nextID uint64
	// 实体记录: EntityID -> 记录
	entities map[EntityID]*E
	// 按创建顺序排列的实体ID（ID单调递增，天然有序）
	order []EntityID
	// 待删除的实体ID
	entitiesToDestroy []EntityID
	// 已标记删除的实体（查询时立即不可见）
	marked map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[E any]() *EntityManager[E] {
	return &EntityManager[E]{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make(map[EntityID]*E),
		order:             make([]EntityID, 0),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 登记一条实体记录并返回唯一ID
func (em *EntityManager[E]) CreateEntity(entity *E) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = entity
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 标记后的实体不再出现在 GetEntity / Query / All 的结果里
func (em *EntityManager[E]) DestroyEntity(id EntityID) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	if _, already := em.marked[id]; already {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsAlive 检查实体是否存在且未被标记删除
func (em *EntityManager[E]) IsAlive(id EntityID) bool {
	if _, exists := em.entities[id]; !exists {
		return false
	}
	_, dead := em.marked[id]
	return !dead
}

// GetEntity 获取实体记录
func (em *EntityManager[E]) GetEntity(id EntityID) (*E, bool) {
	if !em.IsAlive(id) {
		return nil, false
	}
	return em.entities[id], true
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager[E]) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}
	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, dead := em.marked[id]; !dead {
			kept = append(kept, id)
		}
	}
	em.order = kept
	clear(em.marked)
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// Query 查询满足条件的所有实体
// 返回: []EntityID - 按创建顺序排列
func (em *EntityManager[E]) Query(pred func(id EntityID, entity *E) bool) []EntityID {
	result := make([]EntityID, 0)
	for id, entity := range em.All() {
		if pred == nil || pred(id, entity) {
			result = append(result, id)
		}
	}
	return result
}

// All 按创建顺序遍历所有存活实体
//
// 遍历过程中可以创建新实体（本次遍历不会看到它们），也可以标记删除实体。
func (em *EntityManager[E]) All() iter.Seq2[EntityID, *E] {
	return func(yield func(EntityID, *E) bool) {
		n := len(em.order)
		for i := 0; i < n; i++ {
			id := em.order[i]
			if _, dead := em.marked[id]; dead {
				continue
			}
			if !yield(id, em.entities[id]) {
				return
			}
		}
	}
}

// Count 返回存活实体数量
func (em *EntityManager[E]) Count() int {
	return len(em.entities) - len(em.marked)
}

// Clear 删除所有实体（ID 计数不回退）
func (em *EntityManager[E]) Clear() {
	clear(em.entities)
	clear(em.marked)
	em.order = em.order[:0]
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}
