package components

// HealthComponent 存储实体的生命值信息
// 用于坦克和城市这类可被敌方爆炸摧毁的建筑
type HealthComponent struct {
	CurrentHealth int // 当前生命值，为 0 时视为已摧毁
	MaxHealth     int // 最大生命值
}

// NewHealth 创建满血的生命值组件
func NewHealth(maxHealth int) *HealthComponent {
	return &HealthComponent{CurrentHealth: maxHealth, MaxHealth: maxHealth}
}

// IsDestroyed 是否已被摧毁
func (h *HealthComponent) IsDestroyed() bool {
	return h.CurrentHealth <= 0
}

// Damage 扣除生命值（不低于 0），返回本次是否刚好被摧毁
func (h *HealthComponent) Damage(amount int) bool {
	if h.IsDestroyed() {
		return false
	}
	h.CurrentHealth = max(0, h.CurrentHealth-amount)
	return h.IsDestroyed()
}

// Restore 恢复满血
func (h *HealthComponent) Restore() {
	h.CurrentHealth = h.MaxHealth
}
