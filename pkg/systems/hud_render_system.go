package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/game"
	"github.com/gonewx/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorHUDText     = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	colorHUDDim      = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorCoin        = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
	colorHealthFull  = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	colorHealthEmpty = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorBarTrack    = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	colorBossBar     = color.RGBA{R: 0x93, G: 0x33, B: 0xea, A: 0xff}
	colorOverlay     = color.RGBA{A: 0xb0}
	colorTitle       = color.RGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}
)

const (
	bossBarTitle  = "BOSS: THE MAD TITAN"
	hudTextScale  = 1.0
	bannerScale   = 2.0
	headlineScale = 4.0
)

// HUDRenderSystem 绘制状态栏、Boss 血条、波次提示以及标题、暂停、结束画面
// 所有内容都来自 World.Snapshot
type HUDRenderSystem struct {
	world *game.World
	face  text.Face
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(world *game.World, face text.Face) *HUDRenderSystem {
	return &HUDRenderSystem{world: world, face: face}
}

// Draw 绘制 HUD 和当前阶段的覆盖层
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	snap := s.world.Snapshot()

	switch snap.Phase {
	case game.PhaseNotStarted:
		s.drawTitle(screen)
		return
	case game.PhaseGameOver:
		s.drawStatus(screen, snap)
		s.drawGameOver(screen, snap)
		return
	}

	s.drawStatus(screen, snap)
	if snap.HasBoss {
		s.drawBossBar(screen, snap)
	}

	switch snap.Phase {
	case game.PhaseWaveTransition:
		s.drawBanner(screen, snap)
	case game.PhasePaused:
		s.drawPaused(screen)
	}
}

// StatusLines 返回左上角状态栏的文字
func StatusLines(snap game.Snapshot) []string {
	enemies := fmt.Sprintf("Enemies: %d/%d", snap.Kills, snap.Quota)
	if snap.BossWave {
		enemies = "Enemies: Boss"
	}
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Coins: %d", snap.Coins),
		fmt.Sprintf("Wave: %d", snap.Wave),
		enemies,
	}
}

// HealthBarColor 生命值越低颜色越接近红色
func HealthBarColor(health, maxHealth int) color.RGBA {
	if maxHealth <= 0 {
		return colorHealthEmpty
	}
	ratio := float64(health) / float64(maxHealth)
	switch {
	case ratio <= 0:
		return colorHealthEmpty
	case ratio >= 1:
		return colorHealthFull
	}
	return config.BlendColor(colorHealthEmpty, colorHealthFull, ratio)
}

// BossBarLabel Boss 血条下方的数值文字
func BossBarLabel(snap game.Snapshot) string {
	pct := int(BossHealthRatio(snap.BossHealth, snap.BossMaxHealth)*100 + 0.5)
	return fmt.Sprintf("%d / %d (%d%%)", snap.BossHealth, snap.BossMaxHealth, pct)
}

// GameOverLines 游戏结束画面的结算文字
func GameOverLines(snap game.Snapshot) []string {
	return []string{
		fmt.Sprintf("Final Score: %d", snap.Score),
		fmt.Sprintf("Final Wave: %d", snap.Wave),
		fmt.Sprintf("Total Coins: %d", snap.Coins),
	}
}

func (s *HUDRenderSystem) drawStatus(screen *ebiten.Image, snap game.Snapshot) {
	x, y := config.HUDPadding, config.HUDPadding
	for i, line := range StatusLines(snap) {
		c := colorHUDText
		if i == 1 {
			c = colorCoin
		}
		utils.DrawText(screen, line, s.face, x, y, utils.TextStyle{Scale: hudTextScale, Color: c})
		y += config.HUDLineHeight
	}

	// 生命值条
	const barWidth, barHeight = 160.0, 10.0
	y += 4
	ratio := 0.0
	if snap.MaxHealth > 0 {
		ratio = min(max(float64(snap.Health)/float64(snap.MaxHealth), 0), 1)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight, colorBarTrack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barWidth*ratio), barHeight, HealthBarColor(snap.Health, snap.MaxHealth), false)
	utils.DrawText(screen, fmt.Sprintf("HP %d/%d", snap.Health, snap.MaxHealth), s.face, x+barWidth+8, y-2,
		utils.TextStyle{Color: colorHUDText})

	// 右上角提示当前皮肤与射速
	utils.DrawText(screen, fmt.Sprintf("%s  |  %dms", snap.Skin.Name, snap.FireRateMs), s.face,
		config.GameWindowWidth-config.HUDPadding, config.HUDPadding,
		utils.TextStyle{Align: text.AlignEnd, Color: colorHUDDim})
	utils.DrawText(screen, "P pause  B shop", s.face,
		config.GameWindowWidth-config.HUDPadding, config.HUDPadding+config.HUDLineHeight,
		utils.TextStyle{Align: text.AlignEnd, Color: colorHUDDim})
}

func (s *HUDRenderSystem) drawBossBar(screen *ebiten.Image, snap game.Snapshot) {
	x := (config.GameWindowWidth - config.BossBarWidth) / 2
	y := config.BossBarY + config.HUDLineHeight

	utils.DrawText(screen, bossBarTitle, s.face, config.GameWindowWidth/2, config.BossBarY,
		utils.TextStyle{Align: text.AlignCenter, Color: colorBossBar})

	ratio := BossHealthRatio(snap.BossHealth, snap.BossMaxHealth)
	vector.DrawFilledRect(screen, float32(x), float32(y), config.BossBarWidth, config.BossBarHeight, colorBarTrack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(config.BossBarWidth*ratio), config.BossBarHeight, colorBossBar, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.BossBarWidth, config.BossBarHeight, 1, colorHUDDim, false)

	utils.DrawText(screen, BossBarLabel(snap), s.face, config.GameWindowWidth/2, y+config.BossBarHeight+2,
		utils.TextStyle{Align: text.AlignCenter, Color: colorHUDText})
}

func (s *HUDRenderSystem) drawBanner(screen *ebiten.Image, snap game.Snapshot) {
	cx, cy := float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2
	waveColor := s.world.Catalog.WaveColor(snap.Wave)
	if snap.BossWave {
		waveColor = colorBossBar
	}
	utils.DrawText(screen, fmt.Sprintf("WAVE %d", snap.Wave), s.face, cx, cy-70,
		utils.TextStyle{Scale: headlineScale, Align: text.AlignCenter, Color: waveColor})
	utils.DrawText(screen, snap.Banner, s.face, cx, cy+10,
		utils.TextStyle{Scale: bannerScale, Align: text.AlignCenter, Color: colorHUDText})
}

func (s *HUDRenderSystem) drawTitle(screen *ebiten.Image) {
	drawOverlay(screen)
	cx := float64(config.GameWindowWidth) / 2
	utils.DrawText(screen, "ALIEN INVASION", s.face, cx, 160,
		utils.TextStyle{Scale: headlineScale, Align: text.AlignCenter, Color: colorTitle})
	utils.DrawText(screen, "Defend the city. Survive the waves. Defeat the Titan.", s.face, cx, 240,
		utils.TextStyle{Align: text.AlignCenter, Color: colorHUDDim})

	hint := "Move mouse to aim - Click to shoot"
	if utils.IsMobile() {
		hint = "Drag to aim - Tap to shoot"
	}
	utils.DrawText(screen, hint, s.face, cx, 300, utils.TextStyle{Align: text.AlignCenter, Color: colorHUDText})
	utils.DrawText(screen, "P pause - B shop - F11 fullscreen", s.face, cx, 320,
		utils.TextStyle{Align: text.AlignCenter, Color: colorHUDText})
	utils.DrawText(screen, "Press ENTER or click to START GAME", s.face, cx, 380,
		utils.TextStyle{Scale: bannerScale, Align: text.AlignCenter, Color: colorGold})
}

func (s *HUDRenderSystem) drawPaused(screen *ebiten.Image) {
	drawOverlay(screen)
	cx, cy := float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)/2
	utils.DrawText(screen, "PAUSED", s.face, cx, cy-40,
		utils.TextStyle{Scale: headlineScale, Align: text.AlignCenter, Color: colorHUDText})
	utils.DrawText(screen, "Press P to resume", s.face, cx, cy+30,
		utils.TextStyle{Align: text.AlignCenter, Color: colorHUDDim})
}

func (s *HUDRenderSystem) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	drawOverlay(screen)
	cx := float64(config.GameWindowWidth) / 2
	utils.DrawText(screen, "GAME OVER", s.face, cx, 150,
		utils.TextStyle{Scale: headlineScale, Align: text.AlignCenter, Color: colorHealthEmpty})

	y := 250.0
	for _, line := range GameOverLines(snap) {
		utils.DrawText(screen, line, s.face, cx, y,
			utils.TextStyle{Scale: bannerScale, Align: text.AlignCenter, Color: colorHUDText})
		y += 36
	}
	utils.DrawText(screen, "Press ENTER or click to RESTART", s.face, cx, y+30,
		utils.TextStyle{Scale: bannerScale, Align: text.AlignCenter, Color: colorGold})
}

func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorOverlay, false)
}
