package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
)

// World 一局对局的全部可变状态
// 由游戏场景持有，并显式传给每个系统
type World struct {
	EntityManager *ecs.EntityManager
	State         *GameState
	Tuning        *config.Tuning
	Catalog       *config.Catalog
	Rand          *rand.Rand

	AvatarID ecs.EntityID
	BossID   ecs.EntityID // 0 表示当前没有 Boss

	// SpawnTimer 敌人生成计时器（初始即就绪，第一只敌人立刻生成）
	SpawnTimer *components.TimerComponent

	// Clock 已模拟的时间，只在 Playing 阶段随每个模拟步推进
	Clock time.Duration
	ticks int64

	// 指针位置（已限制在画布内）
	PointerX float64
	PointerY float64

	lastShot time.Duration
	hasFired bool
}

// NewWorld 创建对局世界并放置玩家角色
// seed 决定本局所有随机数（生成位置、速度、颜色）
func NewWorld(tuning *config.Tuning, catalog *config.Catalog, startWave int, seed uint64) (*World, error) {
	if tuning == nil || catalog == nil {
		return nil, fmt.Errorf("tuning and catalog are required")
	}

	w := &World{
		EntityManager: ecs.NewEntityManager(),
		State:         NewGameState(tuning, catalog, startWave),
		Tuning:        tuning,
		Catalog:       catalog,
		Rand:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	if err := w.ResetEntities(); err != nil {
		return nil, err
	}
	w.PointerX, w.PointerY = tuning.Avatar.X, tuning.Avatar.Y
	return w, nil
}

// ResetEntities 清空所有实体并重新放置玩家角色
// 射击冷却和生成计时器一并重置
func (w *World) ResetEntities() error {
	w.EntityManager.Clear()

	avatarID, err := entities.NewAvatar(w.EntityManager, w.Tuning)
	if err != nil {
		return fmt.Errorf("failed to create avatar: %w", err)
	}
	w.AvatarID = avatarID
	w.BossID = 0
	w.SpawnTimer = &components.TimerComponent{
		Name:       "enemy_spawn",
		TargetTime: w.Tuning.Enemy.SpawnInterval,
		IsReady:    true,
	}
	w.hasFired = false
	w.lastShot = 0
	return nil
}

// Restart 游戏结束后开始新的一局
func (w *World) Restart() error {
	if !w.State.Restart() {
		return fmt.Errorf("cannot restart in phase %s", w.State.Phase())
	}
	return w.ResetEntities()
}

// AdvanceClock 推进一个模拟步的时间
// 由步数换算，避免逐步累加 TickDuration 产生的截断误差（12 步恰好 200ms）
func (w *World) AdvanceClock() {
	w.ticks++
	w.Clock = time.Duration(w.ticks) * time.Second / config.TicksPerSecond
}

// SetPointer 更新指针位置，超出画布的坐标被限制在边界上
func (w *World) SetPointer(x, y float64) {
	minX, minY, maxX, maxY := config.GetArenaBounds()
	w.PointerX = min(max(x, minX), maxX)
	w.PointerY = min(max(y, minY), maxY)
}

// CanFire 射击冷却是否已结束
// 第一发总是允许
func (w *World) CanFire() bool {
	if !w.hasFired {
		return true
	}
	cooldown := time.Duration(w.State.FireRateMs) * time.Millisecond
	return w.Clock-w.lastShot >= cooldown
}

// MarkFired 记录一次射击
func (w *World) MarkFired() {
	w.lastShot = w.Clock
	w.hasFired = true
}

// Avatar 返回玩家角色的位置与角色组件
func (w *World) Avatar() (*components.PositionComponent, *components.AvatarComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.AvatarID)
	avatar, _ := ecs.GetComponent[*components.AvatarComponent](w.EntityManager, w.AvatarID)
	return pos, avatar
}

// Boss 返回当前 Boss 组件，没有 Boss 时返回 false
func (w *World) Boss() (*components.BossComponent, bool) {
	if w.BossID == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.BossComponent](w.EntityManager, w.BossID)
}

// ClearBoss 移除 Boss 及其所有能量弹
func (w *World) ClearBoss() {
	if w.BossID != 0 {
		w.EntityManager.DestroyEntity(w.BossID)
		w.BossID = 0
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BossProjectileComponent](w.EntityManager) {
		w.EntityManager.DestroyEntity(id)
	}
}

// AliveEnemies 返回未被标记删除的敌人数量
func (w *World) AliveEnemies() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](w.EntityManager) {
		if !w.EntityManager.IsMarkedForDestroy(id) {
			count++
		}
	}
	return count
}

// Snapshot 对外展示的只读状态
type Snapshot struct {
	Score     int
	Coins     int
	Health    int
	MaxHealth int
	Wave      int
	Kills     int
	Quota     int
	BossWave  bool

	HasBoss       bool
	BossHealth    int
	BossMaxHealth int

	Phase      Phase
	GameOver   bool
	Paused     bool
	Banner     string
	Skin       config.Skin
	FireRateMs int
}

// Snapshot 生成当前状态快照
func (w *World) Snapshot() Snapshot {
	gs := w.State
	snap := Snapshot{
		Score:      gs.Score,
		Coins:      gs.Coins,
		Health:     gs.Health,
		MaxHealth:  gs.MaxHealth,
		Wave:       gs.Wave,
		Kills:      gs.Kills,
		Quota:      gs.Quota(),
		BossWave:   gs.IsBossWave(),
		Phase:      gs.Phase(),
		GameOver:   gs.IsGameOver(),
		Paused:     gs.Phase() == PhasePaused,
		Banner:     gs.Banner(),
		Skin:       gs.Skin(),
		FireRateMs: gs.FireRateMs,
	}
	if boss, ok := w.Boss(); ok {
		snap.HasBoss = true
		snap.BossHealth = max(boss.Health, 0)
		snap.BossMaxHealth = boss.MaxHealth
	}
	return snap
}
