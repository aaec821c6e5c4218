package components

import "image/color"

// EnemyComponent 普通敌人（飞碟）
type EnemyComponent struct {
	Size  float64
	Color color.RGBA // 由生成时的波次决定
	Wave  int        // 生成时所在波次
}
