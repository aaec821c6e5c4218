package components

import "image/color"

// ProjectileComponent 玩家子弹
type ProjectileComponent struct {
	Radius float64 // 发射时的子弹尺寸属性
}

// BossProjectileComponent Boss 发射的能量弹
type BossProjectileComponent struct {
	Radius float64
	Color  color.RGBA // 从 Boss 调色板中随机选取
}
