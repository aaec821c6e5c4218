package systems

import (
	"log"
	"math"

	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
)

// AvatarSystem 玩家角色：瞄准指针并推进喷射火焰动画
type AvatarSystem struct {
	world *game.World
}

// NewAvatarSystem 创建玩家角色系统
func NewAvatarSystem(world *game.World) *AvatarSystem {
	return &AvatarSystem{world: world}
}

// Update 根据指针更新瞄准角度，火焰相位每步前进并在 2π 处回绕
func (s *AvatarSystem) Update(deltaTime float64) {
	w := s.world
	pos, avatar := w.Avatar()
	if pos == nil || avatar == nil {
		return
	}
	avatar.AimAngle = math.Atan2(w.PointerY-pos.Y, w.PointerX-pos.X)
	avatar.FlamePhase = math.Mod(avatar.FlamePhase+w.Tuning.Avatar.FlameStep, 2*math.Pi)
}

// Fire 向指针方向发射一发子弹
// 只在 Playing 阶段且射击冷却结束时生效
func Fire(w *game.World) (ecs.EntityID, bool) {
	if !w.State.IsPlaying() || !w.CanFire() {
		return 0, false
	}
	pos, _ := w.Avatar()
	if pos == nil {
		return 0, false
	}

	angle := math.Atan2(w.PointerY-pos.Y, w.PointerX-pos.X)
	muzzle := w.Tuning.Avatar.MuzzleDistance
	id, err := entities.NewPlayerProjectile(w.EntityManager,
		pos.X+math.Cos(angle)*muzzle,
		pos.Y+math.Sin(angle)*muzzle,
		angle,
		w.Tuning.Player.ProjectileSpeed,
		w.State.ProjectileRadius,
	)
	if err != nil {
		log.Printf("[AvatarSystem] 发射子弹失败: %v", err)
		return 0, false
	}
	w.MarkFired()
	return id, true
}
