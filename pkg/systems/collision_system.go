package systems

import (
	"log"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
)

// CollisionKind 碰撞事件类型，按判定优先级排列
type CollisionKind int

const (
	// CollisionIntercept 玩家子弹拦截 Boss 能量弹
	CollisionIntercept CollisionKind = iota
	// CollisionBossShotHit Boss 能量弹命中玩家
	CollisionBossShotHit
	// CollisionRam 敌人撞上玩家
	CollisionRam
	// CollisionBossHit 玩家子弹命中 Boss
	CollisionBossHit
	// CollisionKill 玩家子弹击毁敌人
	CollisionKill
)

// CollisionEvent 一次碰撞判定的结果
// A 为被消耗的主体，B 为另一方（可能为 0）
type CollisionEvent struct {
	Kind CollisionKind
	A    ecs.EntityID
	B    ecs.EntityID
	X, Y float64 // 爆炸位置
}

// CollisionSystem 圆形距离碰撞
//
// 每步只做一遍判定，先收集全部事件再统一应用。
// 子弹、敌人、能量弹在一步内最多参与一个事件；玩家和 Boss 可以承受多次。
// 遍历顺序为实体创建顺序，结果是确定的。
type CollisionSystem struct {
	world    *game.World
	resolved map[ecs.EntityID]bool
	events   []CollisionEvent
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(world *game.World) *CollisionSystem {
	return &CollisionSystem{
		world:    world,
		resolved: make(map[ecs.EntityID]bool),
	}
}

// Update 判定并应用本步的所有碰撞，然后清理被销毁的实体
func (s *CollisionSystem) Update(deltaTime float64) {
	events := s.Detect()
	s.Apply(events)
	s.world.EntityManager.RemoveMarkedEntities()
}

type circle struct {
	id   ecs.EntityID
	x, y float64
	r    float64
}

// collect 收集带指定组件、尚未被标记删除的实体
func collect[T any](em *ecs.EntityManager, radius func(T) float64) []circle {
	ids := ecs.GetEntitiesWith1[T](em)
	result := make([]circle, 0, len(ids))
	for _, id := range ids {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		comp, _ := ecs.GetComponent[T](em, id)
		result = append(result, circle{id: id, x: pos.X, y: pos.Y, r: radius(comp)})
	}
	return result
}

// Detect 按优先级判定所有碰撞，不修改任何状态
func (s *CollisionSystem) Detect() []CollisionEvent {
	w := s.world
	em := w.EntityManager
	t := w.Tuning

	clear(s.resolved)
	s.events = s.events[:0]

	avatarPos, _ := w.Avatar()
	shots := collect(em, func(*components.ProjectileComponent) float64 { return 0 })
	bossShots := collect(em, func(*components.BossProjectileComponent) float64 { return 0 })
	enemies := collect(em, func(e *components.EnemyComponent) float64 { return e.Size })

	// 1. Boss 能量弹 x 玩家子弹
	for _, bs := range bossShots {
		for _, shot := range shots {
			if s.resolved[shot.id] {
				continue
			}
			if distance(bs.x, bs.y, shot.x, shot.y) < t.Boss.InterceptDistance {
				s.emit(CollisionEvent{Kind: CollisionIntercept, A: bs.id, B: shot.id, X: bs.x, Y: bs.y})
				break
			}
		}
	}

	// 2. Boss 能量弹 x 玩家
	for _, bs := range bossShots {
		if s.resolved[bs.id] {
			continue
		}
		if distance(bs.x, bs.y, avatarPos.X, avatarPos.Y) < t.Boss.HitDistance {
			s.emit(CollisionEvent{Kind: CollisionBossShotHit, A: bs.id, X: bs.x, Y: bs.y})
		}
	}

	// 3. 敌人 x 玩家
	for _, e := range enemies {
		if distance(e.x, e.y, avatarPos.X, avatarPos.Y) < t.Enemy.ContactDistance {
			s.emit(CollisionEvent{Kind: CollisionRam, A: e.id, X: e.x, Y: e.y})
		}
	}

	// 4. 玩家子弹 x Boss
	if boss, ok := w.Boss(); ok {
		bossPos, _ := ecs.GetComponent[*components.PositionComponent](em, w.BossID)
		health := boss.Health
		for _, shot := range shots {
			if health <= 0 {
				break
			}
			if s.resolved[shot.id] {
				continue
			}
			if distance(shot.x, shot.y, bossPos.X, bossPos.Y) < boss.Size {
				s.emit(CollisionEvent{Kind: CollisionBossHit, A: shot.id, B: w.BossID, X: shot.x, Y: shot.y})
				health--
			}
		}
	}

	// 5. 玩家子弹 x 敌人
	for _, shot := range shots {
		if s.resolved[shot.id] {
			continue
		}
		for _, e := range enemies {
			if s.resolved[e.id] {
				continue
			}
			if distance(shot.x, shot.y, e.x, e.y) < e.r {
				s.emit(CollisionEvent{Kind: CollisionKill, A: shot.id, B: e.id, X: e.x, Y: e.y})
				break
			}
		}
	}

	return s.events
}

// emit 记录事件并标记参与的可消耗实体
func (s *CollisionSystem) emit(ev CollisionEvent) {
	s.events = append(s.events, ev)
	s.resolved[ev.A] = true
	if ev.Kind == CollisionIntercept || ev.Kind == CollisionKill {
		s.resolved[ev.B] = true
	}
}

// Apply 应用事件：伤害、计分、金币、击杀数、Boss 血量、爆炸和销毁
func (s *CollisionSystem) Apply(events []CollisionEvent) {
	w := s.world
	em := w.EntityManager
	gs := w.State
	t := w.Tuning

	for _, ev := range events {
		switch ev.Kind {
		case CollisionIntercept:
			em.DestroyEntity(ev.A)
			em.DestroyEntity(ev.B)

		case CollisionBossShotHit:
			gs.ApplyDamage(t.Boss.HitDamage)
			em.DestroyEntity(ev.A)

		case CollisionRam:
			gs.ApplyDamage(t.Enemy.ContactDamage)
			gs.RecordLoss()
			em.DestroyEntity(ev.A)

		case CollisionBossHit:
			if boss, ok := ecs.GetComponent[*components.BossComponent](em, ev.B); ok {
				boss.Health--
			}
			gs.AddScore(t.Boss.HitScore)
			em.DestroyEntity(ev.A)

		case CollisionKill:
			gs.AddScore(t.Enemy.KillScore)
			gs.AddCoins(t.Enemy.KillCoins)
			gs.RecordKill()
			em.DestroyEntity(ev.A)
			em.DestroyEntity(ev.B)
		}

		if _, err := entities.NewExplosion(em, t, w.Rand, ev.X, ev.Y); err != nil {
			log.Printf("[CollisionSystem] 创建爆炸失败: %v", err)
		}
	}
}
