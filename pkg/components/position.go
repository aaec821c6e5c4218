package components

// PositionComponent 实体中心点的世界坐标（逻辑像素）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体速度（逻辑像素/步）
type VelocityComponent struct {
	VX float64
	VY float64
}
