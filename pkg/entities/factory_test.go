package entities

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewAvatar(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	id, err := NewAvatar(em, tuning)
	if err != nil {
		t.Fatalf("NewAvatar failed: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("avatar should have PositionComponent")
	}
	if pos.X != 400 || pos.Y != 300 {
		t.Errorf("avatar position = (%.0f, %.0f), want (400, 300)", pos.X, pos.Y)
	}

	avatar, ok := ecs.GetComponent[*components.AvatarComponent](em, id)
	if !ok || avatar.Size != 60 {
		t.Errorf("avatar component = %+v, want size 60", avatar)
	}

	// 角色不移动
	if ecs.HasComponent[*components.VelocityComponent](em, id) {
		t.Error("avatar should not have VelocityComponent")
	}

	if _, err := NewAvatar(nil, tuning); err == nil {
		t.Error("expected error for nil entity manager")
	}
}

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	green := color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 255}

	id, err := NewEnemy(em, EnemySpec{X: -50, Y: 300, VX: 3, VY: 0, Size: 40, Color: green, Wave: 1})
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.Color != green || enemy.Wave != 1 {
		t.Errorf("enemy = %+v", enemy)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Radius != 40 {
		t.Errorf("collision radius = %f, want 40", col.Radius)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 3 || vel.VY != 0 {
		t.Errorf("velocity = (%f, %f), want (3, 0)", vel.VX, vel.VY)
	}

	if _, err := NewEnemy(em, EnemySpec{Size: 0}); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestNewPlayerProjectile(t *testing.T) {
	em := ecs.NewEntityManager()

	tests := []struct {
		name   string
		angle  float64
		wantVX float64
		wantVY float64
	}{
		{name: "向右", angle: 0, wantVX: 10, wantVY: 0},
		{name: "向下", angle: math.Pi / 2, wantVX: 0, wantVY: 10},
		{name: "向左", angle: math.Pi, wantVX: -10, wantVY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewPlayerProjectile(em, 440, 300, tt.angle, 10, 6)
			if err != nil {
				t.Fatalf("NewPlayerProjectile failed: %v", err)
			}
			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !almostEqual(vel.VX, tt.wantVX) || !almostEqual(vel.VY, tt.wantVY) {
				t.Errorf("velocity = (%f, %f), want (%f, %f)", vel.VX, vel.VY, tt.wantVX, tt.wantVY)
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
			if proj.Radius != 6 {
				t.Errorf("radius = %f, want 6", proj.Radius)
			}
		})
	}

	if _, err := NewPlayerProjectile(em, 0, 0, 0, 10, 0); err == nil {
		t.Error("expected error for zero radius")
	}
}

func TestNewBoss(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()

	id, err := NewBoss(em, tuning)
	if err != nil {
		t.Fatalf("NewBoss failed: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 400 || pos.Y != 100 {
		t.Errorf("boss position = (%.0f, %.0f), want (400, 100)", pos.X, pos.Y)
	}
	boss, _ := ecs.GetComponent[*components.BossComponent](em, id)
	if boss.Health != 100 || boss.MaxHealth != 100 || boss.Size != 80 {
		t.Errorf("boss = %+v", boss)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 2 || vel.VY != 0 {
		t.Errorf("boss velocity = (%f, %f), want (2, 0)", vel.VX, vel.VY)
	}
}

func TestNewBossProjectile(t *testing.T) {
	em := ecs.NewEntityManager()
	purple := color.RGBA{R: 0x93, G: 0x33, B: 0xea, A: 255}

	// Boss 在 (400,100)，瞄准 (400,300)：正下方
	id, err := NewBossProjectile(em, 400, 100, 400, 300, 3, 12, purple)
	if err != nil {
		t.Fatalf("NewBossProjectile failed: %v", err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !almostEqual(vel.VX, 0) || !almostEqual(vel.VY, 3) {
		t.Errorf("velocity = (%f, %f), want (0, 3)", vel.VX, vel.VY)
	}
	bp, _ := ecs.GetComponent[*components.BossProjectileComponent](em, id)
	if bp.Color != purple || bp.Radius != 12 {
		t.Errorf("boss projectile = %+v", bp)
	}

	// 目标与发射点重合
	id, _ = NewBossProjectile(em, 10, 10, 10, 10, 3, 12, purple)
	vel, _ = ecs.GetComponent[*components.VelocityComponent](em, id)
	if !almostEqual(vel.VX, 0) || !almostEqual(vel.VY, 3) {
		t.Errorf("degenerate target velocity = (%f, %f), want (0, 3)", vel.VX, vel.VY)
	}
}

func TestNewExplosion(t *testing.T) {
	em := ecs.NewEntityManager()
	tuning := config.DefaultTuning()
	rng := rand.New(rand.NewPCG(1, 2))

	id, err := NewExplosion(em, tuning, rng, 200, 150)
	if err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}

	explosion, ok := ecs.GetComponent[*components.ExplosionComponent](em, id)
	if !ok || explosion.Alpha != 1 || explosion.Radius != 0 {
		t.Errorf("explosion = %+v", explosion)
	}

	particles := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.VelocityComponent](em)
	if len(particles) != 15 {
		t.Fatalf("got %d particles, want 15", len(particles))
	}

	palette := tuning.ParticleColors()
	for _, pid := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, pid)
		if p.Life != 30 || p.MaxLife != 30 {
			t.Errorf("particle life = %d/%d, want 30/30", p.Life, p.MaxLife)
		}
		if p.Color != palette[0] && p.Color != palette[1] {
			t.Errorf("particle color %v not in palette", p.Color)
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, pid)
		speed := math.Hypot(vel.VX, vel.VY)
		if speed < 2-epsilon || speed > 5+epsilon {
			t.Errorf("particle speed = %f, want within [2, 5]", speed)
		}
	}
}

func TestNewShopButton(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewShopButton(em, 10, 20, 190, 56, "Stealth", nil)
	if err != nil {
		t.Fatalf("NewShopButton failed: %v", err)
	}
	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if !button.Enabled || button.State != components.UINormal || button.Title != "Stealth" {
		t.Errorf("unexpected button: %+v", button)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position = (%.0f, %.0f), want (10, 20)", pos.X, pos.Y)
	}

	if _, err := NewShopButton(em, 0, 0, 0, 56, "Broken", nil); err == nil {
		t.Error("zero width should be rejected")
	}
}
