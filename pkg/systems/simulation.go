package systems

import (
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/game"
)

// Simulation 按固定顺序执行一个模拟步
//
// 顺序：Boss -> 生成 -> 移动 -> 碰撞 -> 越界 -> 特效 -> 波次 -> 角色 -> 结束判定。
// 只有 Playing 阶段推进完整模拟；波次过场只推进过场计时、特效和角色动画。
type Simulation struct {
	world *game.World

	boss      *BossSystem
	spawn     *SpawnSystem
	movement  *MovementSystem
	collision *CollisionSystem
	bounds    *BoundsSystem
	effects   *EffectSystem
	waves     *WaveSystem
	avatar    *AvatarSystem
}

// NewSimulation 创建模拟器
func NewSimulation(world *game.World) *Simulation {
	return &Simulation{
		world:     world,
		boss:      NewBossSystem(world),
		spawn:     NewSpawnSystem(world),
		movement:  NewMovementSystem(world),
		collision: NewCollisionSystem(world),
		bounds:    NewBoundsSystem(world),
		effects:   NewEffectSystem(world),
		waves:     NewWaveSystem(world),
		avatar:    NewAvatarSystem(world),
	}
}

// Step 执行一个模拟步
// 返回 false 表示游戏已结束
func (s *Simulation) Step() bool {
	w := s.world
	gs := w.State
	dt := config.TickSeconds

	switch gs.Phase() {
	case game.PhaseGameOver:
		return false
	case game.PhaseWaveTransition:
		gs.UpdateTransition(dt)
		s.effects.Update(dt)
		s.avatar.Update(dt)
		w.EntityManager.RemoveMarkedEntities()
		return true
	case game.PhasePlaying:
	default:
		// 标题、暂停、商店：模拟冻结
		return true
	}

	w.AdvanceClock()

	s.boss.Update(dt)
	s.spawn.Update(dt)
	s.movement.Update(dt)
	s.collision.Update(dt)
	s.bounds.Update(dt)
	s.effects.Update(dt)
	s.waves.Update(dt)
	s.avatar.Update(dt)

	w.EntityManager.RemoveMarkedEntities()

	if gs.Health <= 0 {
		gs.EnterGameOver()
		return false
	}
	return true
}
