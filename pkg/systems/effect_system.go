package systems

import (
	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/game"
)

// EffectSystem 推进爆炸冲击波和碎片粒子（纯视觉，不影响游戏逻辑）
type EffectSystem struct {
	world *game.World
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(world *game.World) *EffectSystem {
	return &EffectSystem{world: world}
}

// Update 冲击波扩大并淡出，粒子移动并消耗寿命
func (s *EffectSystem) Update(deltaTime float64) {
	em := s.world.EntityManager
	fx := s.world.Tuning.Effects

	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		exp.Radius += fx.ExplosionGrowth
		exp.Alpha -= fx.ExplosionFade
		if exp.Alpha <= 0 {
			exp.Alpha = 0
			em.DestroyEntity(id)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
				pos.X += vel.VX
				pos.Y += vel.VY
			}
		}
		p.Life--
		if p.Life <= 0 {
			em.DestroyEntity(id)
		}
	}
}
