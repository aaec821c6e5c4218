// verify_waves 无窗口地自动游玩一局，用于检查波次推进、Boss 战和经济数值
//
// 自动瞄准：优先拦截靠近玩家的 Boss 能量弹，其次是最近的敌人，最后是 Boss。
//
//	go run ./cmd/verify_waves --seed 42 --ticks 60000
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/embedded"
	"github.com/gonewx/invasion/pkg/game"
	"github.com/gonewx/invasion/pkg/systems"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	seed      = flag.Uint64("seed", 1, "随机种子")
	maxTicks  = flag.Int("ticks", 60*60*10, "最多模拟的步数")
	startWave = flag.Int("wave", 1, "起始波次")
	stopWave  = flag.Int("until", 12, "到达该波次后停止")
	threat    = flag.Float64("threat", 250, "优先拦截的 Boss 能量弹距离")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)
	tuning, err := config.LoadTuning("data/tuning.yaml")
	if err != nil {
		fail(err)
	}
	catalog, err := config.LoadCatalog("data/catalog.yaml")
	if err != nil {
		fail(err)
	}

	w, err := game.NewWorld(tuning, catalog, *startWave, *seed)
	if err != nil {
		fail(err)
	}
	sim := systems.NewSimulation(w)
	w.State.Start()

	fmt.Printf("seed=%d start wave=%d\n", *seed, w.State.Wave)
	wave := w.State.Wave
	shots := 0
	tick := 0
	for ; tick < *maxTicks; tick++ {
		if x, y, ok := pickTarget(w, *threat); ok {
			w.SetPointer(x, y)
			if _, fired := systems.Fire(w); fired {
				shots++
			}
		}
		if !sim.Step() {
			break
		}
		if w.State.Wave != wave {
			snap := w.Snapshot()
			fmt.Printf("tick %6d  wave %2d -> %2d  score %6d  coins %4d  health %3d/%d  shots %d\n",
				tick, wave, snap.Wave, snap.Score, snap.Coins, snap.Health, snap.MaxHealth, shots)
			wave = snap.Wave
			if wave >= *stopWave {
				break
			}
		}
	}

	snap := w.Snapshot()
	status := "running"
	if snap.GameOver {
		status = "game over"
	}
	fmt.Printf("finished after %d ticks (%s): wave %d score %d coins %d health %d/%d\n",
		tick, status, snap.Wave, snap.Score, snap.Coins, snap.Health, snap.MaxHealth)
}

// pickTarget 选择本步的瞄准点
func pickTarget(w *game.World, threat float64) (float64, float64, bool) {
	avatarPos, _ := w.Avatar()
	if avatarPos == nil {
		return 0, 0, false
	}
	em := w.EntityManager

	if x, y, d, ok := nearest[*components.BossProjectileComponent](em, avatarPos); ok && d < threat {
		return x, y, true
	}
	if x, y, _, ok := nearest[*components.EnemyComponent](em, avatarPos); ok {
		return x, y, true
	}
	if x, y, _, ok := nearest[*components.BossComponent](em, avatarPos); ok {
		return x, y, true
	}
	return 0, 0, false
}

// nearest 返回带组件 T 且距离 from 最近的实体位置
func nearest[T any](em *ecs.EntityManager, from *components.PositionComponent) (float64, float64, float64, bool) {
	best := math.Inf(1)
	var bx, by float64
	for _, id := range ecs.GetEntitiesWith2[T, *components.PositionComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := math.Hypot(pos.X-from.X, pos.Y-from.Y); d < best {
			best, bx, by = d, pos.X, pos.Y
		}
	}
	return bx, by, best, !math.IsInf(best, 1)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
