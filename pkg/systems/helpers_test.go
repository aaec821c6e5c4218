package systems

import (
	"testing"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/embedded"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
)

// newPlayingWorld 创建处于 Playing 阶段的世界
func newPlayingWorld(t *testing.T, wave int) *game.World {
	t.Helper()
	embedded.Init(data.FS)

	tuning, err := config.LoadTuning("data/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}
	catalog, err := config.LoadCatalog("data/catalog.yaml")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	w, err := game.NewWorld(tuning, catalog, wave, 7)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	w.State.Start()
	w.State.UpdateTransition(tuning.WaveTransition)
	if !w.State.IsPlaying() {
		t.Fatalf("world should be playing, phase = %s", w.State.Phase())
	}
	return w
}

// placeEnemy 在指定位置放置一个静止的敌人，并计入本波生成数
func placeEnemy(t *testing.T, w *game.World, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.EntityManager, entities.EnemySpec{
		X: x, Y: y,
		Size:  w.Tuning.Enemy.Size,
		Color: w.Catalog.WaveColor(w.State.Wave),
		Wave:  w.State.Wave,
	})
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	w.State.RecordSpawn()
	return id
}

// placeShot 在指定位置放置一发静止的玩家子弹
func placeShot(w *game.World, x, y float64) ecs.EntityID {
	id := w.EntityManager.CreateEntity()
	ecs.AddComponent(w.EntityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.EntityManager, id, &components.VelocityComponent{})
	ecs.AddComponent(w.EntityManager, id, &components.ProjectileComponent{Radius: w.State.ProjectileRadius})
	return id
}

// placeBossShot 在指定位置放置一枚静止的 Boss 能量弹
func placeBossShot(w *game.World, x, y float64) ecs.EntityID {
	id := w.EntityManager.CreateEntity()
	ecs.AddComponent(w.EntityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(w.EntityManager, id, &components.VelocityComponent{})
	ecs.AddComponent(w.EntityManager, id, &components.BossProjectileComponent{
		Radius: w.Tuning.Boss.ProjectileRadius,
		Color:  w.Tuning.BossPalette()[0],
	})
	return id
}

func countWith[T any](w *game.World) int {
	return len(ecs.GetEntitiesWith1[T](w.EntityManager))
}

// checkInvariants 生命值、分数、金币的不变量
func checkInvariants(t *testing.T, w *game.World) {
	t.Helper()
	gs := w.State
	if gs.Health < 0 || gs.Health > gs.MaxHealth {
		t.Fatalf("health %d out of [0, %d]", gs.Health, gs.MaxHealth)
	}
	if gs.Score < 0 || gs.Coins < 0 {
		t.Fatalf("score %d / coins %d must not be negative", gs.Score, gs.Coins)
	}
	if bosses := countWith[*components.BossComponent](w); bosses > 1 {
		t.Fatalf("%d bosses alive, want at most 1", bosses)
	}
}
