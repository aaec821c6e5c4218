package entities

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
)

// NewExplosion 在 (x, y) 处创建爆炸冲击波和一圈碎片粒子
// 粒子沿均匀分布的角度飞出，速度和颜色随机
//
// 返回:
//   - ecs.EntityID: 冲击波实体ID
//   - error: 参数无效时返回错误
func NewExplosion(em *ecs.EntityManager, tuning *config.Tuning, rng *rand.Rand, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tuning == nil || rng == nil {
		return 0, fmt.Errorf("tuning and rng are required")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ExplosionComponent{Radius: 0, Alpha: 1})

	fx := tuning.Effects
	colors := tuning.ParticleColors()
	for i := 0; i < fx.ParticleCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(fx.ParticleCount)
		speed := fx.ParticleSpeedMin + rng.Float64()*(fx.ParticleSpeedMax-fx.ParticleSpeedMin)

		pid := em.CreateEntity()
		ecs.AddComponent(em, pid, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, pid, &components.VelocityComponent{
			VX: math.Cos(angle) * speed,
			VY: math.Sin(angle) * speed,
		})
		ecs.AddComponent(em, pid, &components.ParticleComponent{
			Life:    fx.ParticleLife,
			MaxLife: fx.ParticleLife,
			Color:   colors[rng.IntN(len(colors))],
		})
	}
	return id, nil
}
