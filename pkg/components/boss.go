package components

// BossComponent Boss 状态
// 水平移动速度存放在 VelocityComponent 中
type BossComponent struct {
	Size      float64
	Health    int
	MaxHealth int
}

// IsDefeated 判断 Boss 是否已被击败
func (b *BossComponent) IsDefeated() bool {
	return b.Health <= 0
}
