package systems

import (
	"math"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/game"
)

// MovementSystem 对敌人、玩家子弹和 Boss 能量弹做线性速度积分
// Boss 的移动由 BossSystem 负责，粒子由 EffectSystem 负责
type MovementSystem struct {
	world *game.World
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(world *game.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update 每步按速度移动一次（速度单位为逻辑像素/步）
func (s *MovementSystem) Update(deltaTime float64) {
	em := s.world.EntityManager
	s.integrate(ecs.GetEntitiesWith1[*components.EnemyComponent](em))
	s.integrate(ecs.GetEntitiesWith1[*components.ProjectileComponent](em))
	s.integrate(ecs.GetEntitiesWith1[*components.BossProjectileComponent](em))
}

func (s *MovementSystem) integrate(ids []ecs.EntityID) {
	em := s.world.EntityManager
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
		if !ok {
			continue
		}
		pos.X += vel.VX
		pos.Y += vel.VY
	}
}

// aimVelocity 返回从 (fromX, fromY) 指向 (toX, toY)、大小为 speed 的速度
func aimVelocity(fromX, fromY, toX, toY, speed float64) (float64, float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// distance 两点间的欧氏距离
func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
