package systems

import (
	"log"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
)

// BossSystem Boss 行为：左右往返移动，定时向玩家发射能量弹
type BossSystem struct {
	world *game.World
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(world *game.World) *BossSystem {
	return &BossSystem{world: world}
}

// Update 只在 Boss 波次生效；Boss 缺失时先补生成
func (s *BossSystem) Update(deltaTime float64) {
	w := s.world
	if !w.State.IsBossWave() {
		return
	}
	if w.BossID == 0 {
		SpawnBoss(w)
	}

	em := w.EntityManager
	boss, ok := ecs.GetComponent[*components.BossComponent](em, w.BossID)
	if !ok || boss.IsDefeated() {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, w.BossID)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, w.BossID)

	// 先移动再判断边界，越界后反向
	pos.X += vel.VX
	if pos.X > w.Tuning.Boss.MaxX || pos.X < w.Tuning.Boss.MinX {
		vel.VX = -vel.VX
	}

	timer, ok := ecs.GetComponent[*components.TimerComponent](em, w.BossID)
	if ok && tickTimer(timer, deltaTime) {
		s.fire(pos)
		consumeTimer(timer)
	}
}

// fire 从 Boss 当前位置向玩家发射一枚随机颜色的能量弹
func (s *BossSystem) fire(bossPos *components.PositionComponent) {
	w := s.world
	t := w.Tuning.Boss

	avatarPos, _ := w.Avatar()
	palette := w.Tuning.BossPalette()
	c := palette[w.Rand.IntN(len(palette))]

	if _, err := entities.NewBossProjectile(w.EntityManager, bossPos.X, bossPos.Y,
		avatarPos.X, avatarPos.Y, t.ProjectileSpeed, t.ProjectileRadius, c); err != nil {
		log.Printf("[BossSystem] 发射能量弹失败: %v", err)
	}
}
