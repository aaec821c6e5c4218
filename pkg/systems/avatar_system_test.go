package systems

import (
	"math"
	"testing"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
)

func TestAvatarAimsAtPointer(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"指向右方", 500, 300, 0},
		{"指向下方", 400, 500, math.Pi / 2},
		{"指向左方", 100, 300, math.Pi},
		{"指向上方", 400, 0, -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newPlayingWorld(t, 1)
			w.SetPointer(tt.x, tt.y)
			NewAvatarSystem(w).Update(config.TickSeconds)

			_, avatar := w.Avatar()
			if math.Abs(avatar.AimAngle-tt.expected) > 1e-9 {
				t.Errorf("AimAngle = %f, want %f", avatar.AimAngle, tt.expected)
			}
		})
	}
}

func TestFlamePhaseWraps(t *testing.T) {
	w := newPlayingWorld(t, 1)
	system := NewAvatarSystem(w)
	for i := 0; i < 100; i++ {
		system.Update(config.TickSeconds)
		_, avatar := w.Avatar()
		if avatar.FlamePhase < 0 || avatar.FlamePhase >= 2*math.Pi {
			t.Fatalf("FlamePhase %f out of [0, 2π)", avatar.FlamePhase)
		}
	}
}

// TestFireTowardPointer 指针在 (500,300)：子弹从 (440,300) 出发，速度 (10,0)
func TestFireTowardPointer(t *testing.T) {
	w := newPlayingWorld(t, 1)
	w.SetPointer(500, 300)

	id, ok := Fire(w)
	if !ok {
		t.Fatal("first shot should be allowed")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.EntityManager, id)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.EntityManager, id)

	if math.Abs(pos.X-440) > 1e-9 || math.Abs(pos.Y-300) > 1e-9 {
		t.Errorf("muzzle = (%f, %f), want (440, 300)", pos.X, pos.Y)
	}
	if math.Abs(vel.VX-10) > 1e-9 || math.Abs(vel.VY) > 1e-9 {
		t.Errorf("velocity = (%f, %f), want (10, 0)", vel.VX, vel.VY)
	}
	if proj.Radius != w.State.ProjectileRadius {
		t.Errorf("radius = %f, want %f", proj.Radius, w.State.ProjectileRadius)
	}
}

// TestFireRespectsCooldown 默认冷却 200ms，即 12 个模拟步
func TestFireRespectsCooldown(t *testing.T) {
	w := newPlayingWorld(t, 1)
	if _, ok := Fire(w); !ok {
		t.Fatal("first shot should be allowed")
	}
	if _, ok := Fire(w); ok {
		t.Fatal("second shot in the same step should be blocked")
	}
	for i := 0; i < 11; i++ {
		w.AdvanceClock()
	}
	if _, ok := Fire(w); ok {
		t.Fatal("shot after 11 steps should be blocked")
	}
	w.AdvanceClock()
	if _, ok := Fire(w); !ok {
		t.Fatal("shot after 12 steps should be allowed")
	}
	if n := countWith[*components.ProjectileComponent](w); n != 2 {
		t.Errorf("%d projectiles, want 2", n)
	}
}

func TestFireOnlyWhilePlaying(t *testing.T) {
	w := newPlayingWorld(t, 1)

	w.State.TogglePause()
	if _, ok := Fire(w); ok {
		t.Error("cannot fire while paused")
	}
	w.State.TogglePause()

	w.State.OpenShop()
	if _, ok := Fire(w); ok {
		t.Error("cannot fire while shopping")
	}
	w.State.CloseShop()

	if _, ok := Fire(w); !ok {
		t.Error("should fire again once playing")
	}
}
