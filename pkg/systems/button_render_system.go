package systems

import (
	"image/color"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorButtonNormal   = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colorButtonHover    = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	colorButtonPressed  = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	colorButtonDisabled = color.RGBA{R: 0x18, G: 0x18, B: 0x1b, A: 0xff}
	colorButtonBorder   = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
)

// ButtonRenderSystem 按钮渲染系统
// 矩形背景按状态着色，选中的按钮使用金色边框，标题和副标题水平居中
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, face text.Face) *ButtonRenderSystem {
	return &ButtonRenderSystem{entityManager: em, face: face}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		s.DrawButton(screen, id)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y, w, h := float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, ButtonFillColor(button), false)

	border, width := colorButtonBorder, float32(1)
	if button.Selected {
		border, width = colorGold, 3
	}
	vector.StrokeRect(screen, x, y, w, h, width, border, false)

	textColor := colorHUDText
	if button.State == components.UIDisabled {
		textColor = colorHUDDim
	}
	cx := pos.X + button.Width/2
	_, lineHeight := utils.MeasureText(button.Title, s.face, 1)
	if button.Detail == "" {
		utils.DrawText(screen, button.Title, s.face, cx, pos.Y+(button.Height-lineHeight)/2,
			utils.TextStyle{Align: text.AlignCenter, Color: textColor})
		return
	}
	// 标题与副标题之间留 6 像素
	top := pos.Y + (button.Height-2*lineHeight-6)/2
	utils.DrawText(screen, button.Title, s.face, cx, top,
		utils.TextStyle{Align: text.AlignCenter, Color: textColor})
	utils.DrawText(screen, button.Detail, s.face, cx, top+lineHeight+6,
		utils.TextStyle{Align: text.AlignCenter, Color: colorCoin})
}

// ButtonFillColor 按钮背景色，由交互状态决定
func ButtonFillColor(button *components.ButtonComponent) color.RGBA {
	switch button.State {
	case components.UIHovered:
		return colorButtonHover
	case components.UIClicked:
		return colorButtonPressed
	case components.UIDisabled:
		return colorButtonDisabled
	}
	return colorButtonNormal
}
