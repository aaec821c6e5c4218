package components

import "testing"

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		name     string
		particle ParticleComponent
		want     float64
	}{
		{name: "刚生成", particle: ParticleComponent{Life: 30, MaxLife: 30}, want: 1},
		{name: "一半寿命", particle: ParticleComponent{Life: 15, MaxLife: 30}, want: 0.5},
		{name: "寿命耗尽", particle: ParticleComponent{Life: 0, MaxLife: 30}, want: 0},
		{name: "无效寿命", particle: ParticleComponent{Life: 5, MaxLife: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.particle.Alpha(); got != tt.want {
				t.Errorf("Alpha() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBossIsDefeated(t *testing.T) {
	boss := &BossComponent{Health: 1, MaxHealth: 100}
	if boss.IsDefeated() {
		t.Error("boss with 1 hp should not be defeated")
	}
	boss.Health = 0
	if !boss.IsDefeated() {
		t.Error("boss with 0 hp should be defeated")
	}
}
