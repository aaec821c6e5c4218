package components

// AvatarComponent 玩家角色（固定在场地中央，只会转向瞄准）
type AvatarComponent struct {
	Size       float64 // 绘制尺寸
	AimAngle   float64 // 瞄准角度（弧度），指向指针
	FlamePhase float64 // 喷射火焰动画相位，范围 [0, 2π)
}
