package systems

import (
	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/game"
)

// BoundsSystem 清理飞出场地的实体
//
//   - 玩家子弹和 Boss 能量弹：离开 (0, W) x (0, H)
//   - 敌人：离开 (-margin, W+margin) x (-margin, H+margin)，计为流失
type BoundsSystem struct {
	world *game.World
}

// NewBoundsSystem 创建边界清理系统
func NewBoundsSystem(world *game.World) *BoundsSystem {
	return &BoundsSystem{world: world}
}

// Update 标记越界实体待删除
func (s *BoundsSystem) Update(deltaTime float64) {
	w := s.world
	em := w.EntityManager
	arena := w.Tuning.Arena

	projectiles := ecs.GetEntitiesWith1[*components.ProjectileComponent](em)
	projectiles = append(projectiles, ecs.GetEntitiesWith1[*components.BossProjectileComponent](em)...)
	for _, id := range projectiles {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if ok && isOutside(pos.X, pos.Y, 0, 0, arena.Width, arena.Height) {
			em.DestroyEntity(id)
		}
	}

	m := arena.EnemyMargin
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if ok && isOutside(pos.X, pos.Y, -m, -m, arena.Width+m, arena.Height+m) {
			em.DestroyEntity(id)
			w.State.RecordLoss()
		}
	}
}

// isOutside 判断点是否不在开区间 (minX, maxX) x (minY, maxY) 内
func isOutside(x, y, minX, minY, maxX, maxY float64) bool {
	return !(x > minX && x < maxX && y > minY && y < maxY)
}
