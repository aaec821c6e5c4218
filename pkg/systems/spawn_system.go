package systems

import (
	"log"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
)

// SpawnSystem 按固定间隔生成普通敌人
// 计时器就绪但配额已满时保持就绪，名额重新开放后立刻生成
type SpawnSystem struct {
	world *game.World
}

// NewSpawnSystem 创建敌人生成系统
func NewSpawnSystem(world *game.World) *SpawnSystem {
	return &SpawnSystem{world: world}
}

// Update 推进生成计时器，到期时尝试生成一个敌人
func (s *SpawnSystem) Update(deltaTime float64) {
	if s.world.State.IsBossWave() {
		return
	}
	if !tickTimer(s.world.SpawnTimer, deltaTime) {
		return
	}
	if _, ok := SpawnEnemy(s.world); ok {
		consumeTimer(s.world.SpawnTimer)
	}
}

// SpawnEnemy 在场地外随机一条边上生成一个飞向玩家的敌人
// Boss 波次或本波配额已满时不生成，返回 false
func SpawnEnemy(w *game.World) (ecs.EntityID, bool) {
	gs := w.State
	if !gs.CanSpawnEnemy() {
		return 0, false
	}

	t := w.Tuning
	x, y := spawnPoint(w)

	avatarPos, _ := w.Avatar()
	targetX, targetY := t.Avatar.X, t.Avatar.Y
	if avatarPos != nil {
		targetX, targetY = avatarPos.X, avatarPos.Y
	}

	speed := t.Enemy.BaseSpeedMin + w.Rand.Float64()*(t.Enemy.BaseSpeedMax-t.Enemy.BaseSpeedMin) +
		t.Enemy.SpeedPerWave*float64(gs.Wave)
	vx, vy := aimVelocity(x, y, targetX, targetY, speed)

	id, err := entities.NewEnemy(w.EntityManager, entities.EnemySpec{
		X: x, Y: y,
		VX: vx, VY: vy,
		Size:  t.Enemy.Size,
		Color: w.Catalog.WaveColor(gs.Wave),
		Wave:  gs.Wave,
	})
	if err != nil {
		log.Printf("[SpawnSystem] 生成敌人失败: %v", err)
		return 0, false
	}
	gs.RecordSpawn()
	return id, true
}

// spawnPoint 均匀随机选择一条边，在该边外侧 SpawnOffset 处取一个随机点
func spawnPoint(w *game.World) (float64, float64) {
	arena := w.Tuning.Arena
	offset := w.Tuning.Enemy.SpawnOffset

	switch w.Rand.IntN(4) {
	case 0: // 上
		return w.Rand.Float64() * arena.Width, -offset
	case 1: // 右
		return arena.Width + offset, w.Rand.Float64() * arena.Height
	case 2: // 下
		return w.Rand.Float64() * arena.Width, arena.Height + offset
	default: // 左
		return -offset, w.Rand.Float64() * arena.Height
	}
}

// SpawnBoss 在 Boss 波次生成 Boss
// 非 Boss 波次或 Boss 已存在时返回 false
func SpawnBoss(w *game.World) (ecs.EntityID, bool) {
	if !w.State.IsBossWave() || w.BossID != 0 {
		return 0, false
	}

	id, err := entities.NewBoss(w.EntityManager, w.Tuning)
	if err != nil {
		log.Printf("[SpawnSystem] 生成 Boss 失败: %v", err)
		return 0, false
	}
	// 射击计时器挂在 Boss 实体上，初始就绪：出场即开火
	ecs.AddComponent(w.EntityManager, id, &components.TimerComponent{
		Name:       "boss_fire",
		TargetTime: w.Tuning.Boss.FireInterval,
		IsReady:    true,
	})
	w.BossID = id
	log.Printf("[SpawnSystem] Boss 登场: 第 %d 波", w.State.Wave)
	return id, true
}
