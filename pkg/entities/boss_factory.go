package entities

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
)

// NewBoss 创建 Boss 实体
// 位置、血量和水平速度均来自配置
func NewBoss(em *ecs.EntityManager, tuning *config.Tuning) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tuning == nil {
		return 0, fmt.Errorf("tuning cannot be nil")
	}

	b := tuning.Boss
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: b.X, Y: b.Y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: b.SpeedX})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: b.Size})
	ecs.AddComponent(em, id, &components.BossComponent{
		Size:      b.Size,
		Health:    b.Health,
		MaxHealth: b.Health,
	})
	return id, nil
}

// NewBossProjectile 创建 Boss 能量弹，从 (x, y) 飞向 (targetX, targetY)
// 目标与发射点重合时沿正下方飞行
func NewBossProjectile(em *ecs.EntityManager, x, y, targetX, targetY, speed, radius float64, c color.RGBA) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	angle := math.Pi / 2
	if dx, dy := targetX-x, targetY-y; dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	})
	ecs.AddComponent(em, id, &components.BossProjectileComponent{
		Radius: radius,
		Color:  c,
	})
	return id, nil
}
