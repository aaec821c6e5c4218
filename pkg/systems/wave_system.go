package systems

import (
	"log"

	"github.com/gonewx/invasion/pkg/game"
)

// WaveSystem 波次推进
//
// Boss 被击败的同一步内进入下一波；普通波次在击杀数达到配额且场上无敌人时完成。
// 两种情况都会进入波次过场。
type WaveSystem struct {
	world *game.World
}

// NewWaveSystem 创建波次系统
func NewWaveSystem(world *game.World) *WaveSystem {
	return &WaveSystem{world: world}
}

// Update 检查 Boss 击败和波次完成
func (s *WaveSystem) Update(deltaTime float64) {
	w := s.world
	gs := w.State

	if gs.IsBossWave() {
		boss, ok := w.Boss()
		if !ok || !boss.IsDefeated() {
			return
		}
		log.Printf("[WaveSystem] Boss 被击败，分数 %d", gs.Score)
		w.ClearBoss()
		s.advance()
		return
	}

	if gs.IsWaveComplete(w.AliveEnemies()) {
		log.Printf("[WaveSystem] 第 %d 波完成", gs.Wave)
		s.advance()
	}
}

func (s *WaveSystem) advance() {
	w := s.world
	w.State.AdvanceWave()
	w.SpawnTimer.CurrentTime = 0
	w.SpawnTimer.IsReady = true
	// 进入 Boss 波次时 Boss 立即登场
	SpawnBoss(w)
	w.State.BeginWaveTransition()
}
