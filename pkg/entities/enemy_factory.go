package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
)

// EnemySpec 创建敌人所需的参数
type EnemySpec struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Wave   int
}

// NewEnemy 创建飞碟敌人实体
// 敌人以恒定速度直线飞行，碰撞半径等于尺寸
func NewEnemy(em *ecs.EntityManager, spec EnemySpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Size <= 0 {
		return 0, fmt.Errorf("enemy size must be positive, got %f", spec.Size)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: spec.Size})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Size:  spec.Size,
		Color: spec.Color,
		Wave:  spec.Wave,
	})
	return id, nil
}
