package game

import (
	"testing"
	"time"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	tuning, catalog := loadTestConfig(t)
	w, err := NewWorld(tuning, catalog, 1, 42)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)

	pos, avatar := w.Avatar()
	if pos == nil || avatar == nil {
		t.Fatal("world should contain the avatar")
	}
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("avatar at (%.0f, %.0f), want (400, 300)", pos.X, pos.Y)
	}
	if w.BossID != 0 {
		t.Error("new world should have no boss")
	}
	if !w.SpawnTimer.IsReady {
		t.Error("spawn timer should start ready")
	}

	if _, err := NewWorld(nil, nil, 1, 0); err == nil {
		t.Error("expected error without tuning and catalog")
	}
}

// TestSetPointerClamp 指针坐标限制在 800x600 画布内
func TestSetPointerClamp(t *testing.T) {
	w := newTestWorld(t)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{name: "画布内", x: 120, y: 80, wantX: 120, wantY: 80},
		{name: "左上越界", x: -30, y: -1, wantX: 0, wantY: 0},
		{name: "右下越界", x: 1200, y: 900, wantX: 800, wantY: 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.SetPointer(tt.x, tt.y)
			if w.PointerX != tt.wantX || w.PointerY != tt.wantY {
				t.Errorf("pointer = (%.0f, %.0f), want (%.0f, %.0f)", w.PointerX, w.PointerY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestFireCooldown 射击冷却按模拟时间计算
func TestFireCooldown(t *testing.T) {
	w := newTestWorld(t)

	if !w.CanFire() {
		t.Fatal("first shot should always be allowed")
	}
	w.MarkFired()
	if w.CanFire() {
		t.Error("cannot fire again in the same tick")
	}

	// 200ms 冷却：11 步（约 183ms）后仍在冷却
	for i := 0; i < 11; i++ {
		w.AdvanceClock()
	}
	if w.CanFire() {
		t.Error("cooldown should still be active after 11 ticks")
	}

	// 第 12 步恰好 200ms，边界上允许射击
	w.AdvanceClock()
	if w.Clock != 200*time.Millisecond {
		t.Fatalf("Clock after 12 ticks = %v, want 200ms", w.Clock)
	}
	if !w.CanFire() {
		t.Error("firing exactly at the cooldown boundary should be allowed")
	}
}

func TestFireCooldownFollowsUpgrade(t *testing.T) {
	w := newTestWorld(t)
	w.State.FireRateMs = 100
	w.MarkFired()

	w.Clock += 99 * time.Millisecond
	if w.CanFire() {
		t.Error("cooldown should still be active at 99ms")
	}
	w.Clock += time.Millisecond
	if !w.CanFire() {
		t.Error("cooldown should be over at 100ms")
	}
}

func TestClearBoss(t *testing.T) {
	w := newTestWorld(t)
	em := w.EntityManager

	bossID, _ := entities.NewBoss(em, w.Tuning)
	w.BossID = bossID
	entities.NewBossProjectile(em, 400, 100, 400, 300, 3, 12, w.Tuning.BossPalette()[0])
	entities.NewBossProjectile(em, 400, 100, 0, 0, 3, 12, w.Tuning.BossPalette()[1])

	if boss, ok := w.Boss(); !ok || boss.Health != 100 {
		t.Fatal("Boss() should return the live boss")
	}

	w.ClearBoss()
	em.RemoveMarkedEntities()

	if w.BossID != 0 || em.Exists(bossID) {
		t.Error("boss should be removed")
	}
	if n := len(ecs.GetEntitiesWith1[*components.BossProjectileComponent](em)); n != 0 {
		t.Errorf("%d boss projectiles remain, want 0", n)
	}
	if _, ok := w.Boss(); ok {
		t.Error("Boss() should report no boss")
	}
}

func TestAliveEnemiesIgnoresMarked(t *testing.T) {
	w := newTestWorld(t)
	em := w.EntityManager

	a, _ := entities.NewEnemy(em, entities.EnemySpec{Size: 40})
	entities.NewEnemy(em, entities.EnemySpec{Size: 40})
	if w.AliveEnemies() != 2 {
		t.Fatalf("AliveEnemies = %d, want 2", w.AliveEnemies())
	}

	em.DestroyEntity(a)
	if w.AliveEnemies() != 1 {
		t.Errorf("AliveEnemies = %d after marking one, want 1", w.AliveEnemies())
	}
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t)
	w.State.Score = 300
	w.State.Coins = 3
	w.State.Kills = 2

	snap := w.Snapshot()
	if snap.Score != 300 || snap.Coins != 3 || snap.Kills != 2 || snap.Quota != 7 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.HasBoss || snap.GameOver || snap.Paused {
		t.Errorf("unexpected flags in snapshot: %+v", snap)
	}
	if snap.Skin.Key != "classic" {
		t.Errorf("snapshot skin = %s, want classic", snap.Skin.Key)
	}

	bossID, _ := entities.NewBoss(w.EntityManager, w.Tuning)
	w.BossID = bossID
	boss, _ := w.Boss()
	boss.Health = -3

	snap = w.Snapshot()
	if !snap.HasBoss || snap.BossHealth != 0 || snap.BossMaxHealth != 100 {
		t.Errorf("boss snapshot = %d/%d (has=%v), want 0/100", snap.BossHealth, snap.BossMaxHealth, snap.HasBoss)
	}
}

// TestWorldRestart 重新开始后实体清空，只剩玩家角色
func TestWorldRestart(t *testing.T) {
	w := newTestWorld(t)
	w.State.Start()
	entities.NewEnemy(w.EntityManager, entities.EnemySpec{Size: 40})
	w.MarkFired()

	if err := w.Restart(); err == nil {
		t.Fatal("Restart should fail before game over")
	}

	w.State.EnterGameOver()
	if err := w.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}

	if w.EntityManager.EntityCount() != 1 {
		t.Errorf("entity count = %d after restart, want 1 (avatar)", w.EntityManager.EntityCount())
	}
	if !w.CanFire() {
		t.Error("fire cooldown should reset on restart")
	}
	if w.State.Phase() != PhaseWaveTransition {
		t.Errorf("phase = %s, want WaveTransition", w.State.Phase())
	}
	if w.SpawnTimer.TargetTime != config.DefaultTuning().Enemy.SpawnInterval {
		t.Errorf("spawn timer target = %f", w.SpawnTimer.TargetTime)
	}
}
