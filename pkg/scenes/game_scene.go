package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/game"
	"github.com/gonewx/invasion/pkg/modules"
	"github.com/gonewx/invasion/pkg/systems"
	"github.com/gonewx/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SceneInput 一帧内与对局相关的输入
// 由 Update 从键盘、鼠标和触摸采集，测试中可以直接构造
type SceneInput struct {
	PointerX, PointerY float64
	PointerMoved       bool // 指针位置有效（触摸释放后为 false）

	Click       bool // 本帧刚按下鼠标左键或开始触摸
	Confirm     bool // Enter / Space
	TogglePause bool // P / Esc
	ToggleShop  bool // B

	// Pointer 商店按钮使用的指针状态
	Pointer utils.PointerState
}

// GameScene 对局场景
//
// 持有一局游戏的全部内容：
//   - World 与按固定步长推进它的 Simulation / FrameLoop
//   - 场景渲染和 HUD 渲染系统
//   - 商店模块
//
// 场景只负责把输入翻译成阶段切换和射击，规则都在 systems 中。
type GameScene struct {
	world *game.World
	sim   *systems.Simulation
	loop  *game.FrameLoop

	renderSystem    *systems.RenderSystem
	hudRenderSystem *systems.HUDRenderSystem
	shop            *modules.ShopModule

	face text.Face
}

// GameSceneOptions 创建对局场景的参数
type GameSceneOptions struct {
	StartWave int
	Seed      uint64
	SkipTitle bool // 跳过标题画面，直接进入起始波次的过场
}

// NewGameScene 创建对局场景
func NewGameScene(tuning *config.Tuning, catalog *config.Catalog, opts GameSceneOptions) (*GameScene, error) {
	world, err := game.NewWorld(tuning, catalog, opts.StartWave, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	face := utils.NewBitmapFace()
	shop, err := modules.NewShopModule(world, face)
	if err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}

	s := &GameScene{
		world:           world,
		sim:             systems.NewSimulation(world),
		renderSystem:    systems.NewRenderSystem(world),
		hudRenderSystem: systems.NewHUDRenderSystem(world, face),
		shop:            shop,
		face:            face,
	}
	s.loop = game.NewFrameLoop(s.sim.Step)

	if opts.SkipTitle {
		world.State.Start()
	}
	log.Printf("[GameScene] 对局已创建: 起始波次 %d, 种子 %d", world.State.Wave, opts.Seed)
	return s, nil
}

// World 返回对局世界
func (s *GameScene) World() *game.World {
	return s.world
}

// Update 采集输入并推进模拟
// 每帧推进一个步长的时间，由 FrameLoop 决定实际执行的模拟步数
func (s *GameScene) Update(deltaTime float64) {
	s.HandleInput(readSceneInput())
	s.Advance(config.TickDuration)
}

// Advance 推进对局时间，返回执行的模拟步数
func (s *GameScene) Advance(elapsed time.Duration) int {
	return s.loop.Advance(elapsed)
}

// HandleInput 根据当前阶段处理一帧输入
func (s *GameScene) HandleInput(in SceneInput) {
	w := s.world
	gs := w.State

	if in.PointerMoved {
		w.SetPointer(in.PointerX, in.PointerY)
	}

	if in.ToggleShop {
		s.shop.Toggle()
		return
	}

	if s.shop.IsActive() {
		if in.TogglePause {
			s.shop.Close()
			return
		}
		s.shop.HandlePointer(in.Pointer)
		return
	}

	switch gs.Phase() {
	case game.PhaseNotStarted:
		if in.Confirm || in.Click {
			gs.Start()
		}
	case game.PhaseGameOver:
		if in.Confirm || in.Click {
			s.Restart()
		}
	case game.PhasePaused:
		if in.TogglePause {
			gs.TogglePause()
		}
	case game.PhasePlaying, game.PhaseWaveTransition:
		if in.TogglePause {
			gs.TogglePause()
			return
		}
		if in.Click {
			systems.Fire(w)
		}
	}
}

// Restart 游戏结束后开始新的一局，金币、皮肤和升级保留
func (s *GameScene) Restart() bool {
	if err := s.world.Restart(); err != nil {
		log.Printf("[GameScene] 重新开始失败: %v", err)
		return false
	}
	return s.loop.Resume()
}

// Draw 绘制场景、HUD 和商店
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudRenderSystem.Draw(screen)
	s.shop.Draw(screen)
}

// Close 场景被替换或应用退出时停止帧循环
func (s *GameScene) Close() {
	s.loop.Close()
	log.Printf("[GameScene] 场景已关闭")
}

func readSceneInput() SceneInput {
	in := utils.GetInputState()
	pointer := utils.GetPointerState()
	return SceneInput{
		PointerX:     float64(in.X),
		PointerY:     float64(in.Y),
		PointerMoved: in.IsTouching || !utils.IsMobile(),
		Click:        in.JustPressed,
		Confirm:      utils.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace),
		TogglePause:  utils.IsAnyKeyJustPressed(ebiten.KeyP, ebiten.KeyEscape),
		ToggleShop:   utils.IsAnyKeyJustPressed(ebiten.KeyB),
		Pointer:      pointer,
	}
}
