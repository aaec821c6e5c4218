package systems

import (
	"testing"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
)

func TestExplosionGrowsAndFades(t *testing.T) {
	w := newPlayingWorld(t, 1)
	id, err := entities.NewExplosion(w.EntityManager, w.Tuning, w.Rand, 200, 200)
	if err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}
	exp, _ := ecs.GetComponent[*components.ExplosionComponent](w.EntityManager, id)
	system := NewEffectSystem(w)

	system.Update(config.TickSeconds)
	if exp.Radius != w.Tuning.Effects.ExplosionGrowth {
		t.Errorf("Radius = %f, want %f", exp.Radius, w.Tuning.Effects.ExplosionGrowth)
	}
	if exp.Alpha >= 1 {
		t.Errorf("Alpha = %f, should fade", exp.Alpha)
	}

	for i := 0; i < 15; i++ {
		system.Update(config.TickSeconds)
		w.EntityManager.RemoveMarkedEntities()
	}
	if !w.EntityManager.Exists(id) {
		t.Fatal("explosion should still be visible after 16 steps")
	}

	for i := 0; i < 10; i++ {
		system.Update(config.TickSeconds)
		w.EntityManager.RemoveMarkedEntities()
	}
	if w.EntityManager.Exists(id) {
		t.Error("explosion should be gone once alpha reaches 0")
	}
}

func TestParticlesExpire(t *testing.T) {
	w := newPlayingWorld(t, 1)
	if _, err := entities.NewExplosion(w.EntityManager, w.Tuning, w.Rand, 200, 200); err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}
	if n := countWith[*components.ParticleComponent](w); n != w.Tuning.Effects.ParticleCount {
		t.Fatalf("%d particles, want %d", n, w.Tuning.Effects.ParticleCount)
	}

	system := NewEffectSystem(w)
	life := w.Tuning.Effects.ParticleLife
	for i := 0; i < life-1; i++ {
		system.Update(config.TickSeconds)
		w.EntityManager.RemoveMarkedEntities()
	}
	if n := countWith[*components.ParticleComponent](w); n != w.Tuning.Effects.ParticleCount {
		t.Fatalf("%d particles before expiry, want %d", n, w.Tuning.Effects.ParticleCount)
	}

	system.Update(config.TickSeconds)
	w.EntityManager.RemoveMarkedEntities()
	if n := countWith[*components.ParticleComponent](w); n != 0 {
		t.Errorf("%d particles after %d steps, want 0", n, life)
	}
}

func TestParticlesMove(t *testing.T) {
	w := newPlayingWorld(t, 1)
	if _, err := entities.NewExplosion(w.EntityManager, w.Tuning, w.Rand, 200, 200); err != nil {
		t.Fatalf("NewExplosion failed: %v", err)
	}
	NewEffectSystem(w).Update(config.TickSeconds)

	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](w.EntityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager, id)
		if pos.X == 200 && pos.Y == 200 {
			t.Errorf("particle %d did not move", id)
		}
	}
}
