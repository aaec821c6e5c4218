package components

// CollisionComponent 圆形碰撞体
// 碰撞判定只比较中心距离，Radius 为该实体参与判定时使用的距离阈值
type CollisionComponent struct {
	Radius float64
}
