package game

import (
	"testing"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/embedded"
)

// loadTestConfig 加载随程序发布的数值配置和商店目录
func loadTestConfig(t *testing.T) (*config.Tuning, *config.Catalog) {
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
	return tuning, catalog
}

func newTestState(t *testing.T) *GameState {
	t.Helper()
	tuning, catalog := loadTestConfig(t)
	return NewGameState(tuning, catalog, 1)
}
