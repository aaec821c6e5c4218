package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
)

// NewPlayerProjectile 创建玩家子弹实体
// 子弹沿 angle 方向以恒定速度飞行
//
// 参数:
//   - em: 实体管理器
//   - x, y: 发射点（枪口）坐标
//   - angle: 飞行方向（弧度）
//   - speed: 速度（逻辑像素/步）
//   - radius: 子弹尺寸属性
func NewPlayerProjectile(em *ecs.EntityManager, x, y, angle, speed, radius float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 {
		return 0, fmt.Errorf("projectile radius must be positive, got %f", radius)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	})
	ecs.AddComponent(em, id, &components.ProjectileComponent{Radius: radius})
	return id, nil
}
