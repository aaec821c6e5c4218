package main

import (
	"flag"
	"log"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/app"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试日志")
	startWave = flag.Int("wave", 1, "起始波次（调试用）")
	skipTitle = flag.Bool("skip-title", false, "跳过标题画面，直接开始")
	seed      = flag.Uint64("seed", 0, "随机种子，0 表示使用当前时间")
)

func main() {
	flag.Parse()

	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		StartWave: *startWave,
		SkipTitle: *skipTitle,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Alien Invasion")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
