package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/embedded"
)

// TestLoadTuningEmbedded 加载随程序发布的数值配置
func TestLoadTuningEmbedded(t *testing.T) {
	embedded.Init(data.FS)

	tuning, err := LoadTuning("data/tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}

	if tuning.Boss.Wave != 11 {
		t.Errorf("Boss.Wave = %d, want 11", tuning.Boss.Wave)
	}
	if tuning.Boss.Health != 100 {
		t.Errorf("Boss.Health = %d, want 100", tuning.Boss.Health)
	}
	if tuning.Enemy.ContactDamage != 10 || tuning.Boss.HitDamage != 15 {
		t.Errorf("damage = %d/%d, want 10/15", tuning.Enemy.ContactDamage, tuning.Boss.HitDamage)
	}
	if len(tuning.BossPalette()) != 6 {
		t.Errorf("boss palette has %d colors, want 6", len(tuning.BossPalette()))
	}
	if tuning.WaveTransition != 2.5 {
		t.Errorf("WaveTransition = %f, want 2.5", tuning.WaveTransition)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	embedded.Init(fstest.MapFS{})

	_, err := LoadTuning("data/tuning.yaml")
	if err == nil {
		t.Fatal("expected error for missing tuning file")
	}
	if !strings.Contains(err.Error(), "data/tuning.yaml") {
		t.Errorf("error should mention the file path, got %q", err)
	}
}

// TestParseTuningOverlay YAML 只覆盖出现的字段，其余保持默认值
func TestParseTuningOverlay(t *testing.T) {
	yamlData := `
enemy:
  contactDamage: 25
boss:
  wave: 3
`
	tuning, err := ParseTuning([]byte(yamlData))
	if err != nil {
		t.Fatalf("ParseTuning failed: %v", err)
	}

	if tuning.Enemy.ContactDamage != 25 {
		t.Errorf("ContactDamage = %d, want 25", tuning.Enemy.ContactDamage)
	}
	if tuning.Boss.Wave != 3 {
		t.Errorf("Boss.Wave = %d, want 3", tuning.Boss.Wave)
	}
	// 未覆盖的字段
	if tuning.Enemy.Size != 40 {
		t.Errorf("Enemy.Size = %f, want default 40", tuning.Enemy.Size)
	}
	if tuning.Boss.Health != 100 {
		t.Errorf("Boss.Health = %d, want default 100", tuning.Boss.Health)
	}
}

func TestParseTuningValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "生命值为零", yaml: "player:\n  startHealth: 0\n", wantErr: "startHealth"},
		{name: "Boss 边界颠倒", yaml: "boss:\n  minX: 700\n  maxX: 100\n", wantErr: "minX"},
		{name: "速度区间颠倒", yaml: "enemy:\n  baseSpeedMin: 5\n  baseSpeedMax: 1\n", wantErr: "baseSpeedMax"},
		{name: "生成间隔为零", yaml: "enemy:\n  spawnInterval: 0\n", wantErr: "spawnInterval"},
		{name: "空调色板", yaml: "boss:\n  palette: []\n", wantErr: "palette"},
		{name: "非法颜色", yaml: "effects:\n  particleColors: [\"orange\"]\n", wantErr: "particleColors[0]"},
		{name: "Boss 波次为零", yaml: "boss:\n  wave: 0\n", wantErr: "boss.wave"},
		{name: "YAML 语法错误", yaml: "enemy: [", wantErr: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestQuota 每波击杀配额为 5 + 2w
func TestQuota(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		wave int
		want int
	}{
		{wave: 1, want: 7},
		{wave: 2, want: 9},
		{wave: 10, want: 25},
		{wave: 12, want: 29},
	}
	for _, tt := range tests {
		if got := tuning.Quota(tt.wave); got != tt.want {
			t.Errorf("Quota(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestIsBossWave(t *testing.T) {
	tuning := DefaultTuning()
	for wave := 1; wave <= 15; wave++ {
		if got := tuning.IsBossWave(wave); got != (wave == 11) {
			t.Errorf("IsBossWave(%d) = %v", wave, got)
		}
	}
}
