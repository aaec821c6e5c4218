package modules

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/entities"
	"github.com/gonewx/invasion/pkg/game"
	"github.com/gonewx/invasion/pkg/systems"
	"github.com/gonewx/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 升级项在商店中的显示名称和数值单位
var upgradeLabels = map[config.UpgradeKind]struct {
	name string
	unit string
}{
	config.UpgradeFireRate:       {"Repulsor Cooldown", "ms"},
	config.UpgradeHealth:         {"Armor Plating", " HP"},
	config.UpgradeProjectileSize: {"Blast Radius", "px"},
}

var (
	colorShopPanel  = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xf0}
	colorShopBorder = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorShopTitle  = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorShopText   = color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	colorShopDim    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorShopDimmer = color.RGBA{A: 0x90}
)

const shopColumns = 3

// 商店面板内各区域的 Y 坐标
const (
	shopTitleY       = config.ShopPanelY + 18
	shopCoinsY       = config.ShopPanelY + 44
	shopSkinHeaderY  = config.ShopPanelY + 72
	shopSkinTop      = shopSkinHeaderY + 20
	shopUpgradeTitle = shopSkinTop + 2*(config.ShopButtonHeight+config.ShopButtonGap) + 8
	shopUpgradeTop   = shopUpgradeTitle + 20
	shopMessageY     = shopUpgradeTop + config.ShopButtonHeight + 24
	shopCloseY       = config.ShopPanelY + config.ShopPanelHeight - config.ShopButtonHeight - 16
)

// ShopModule 商店模块
// 封装商店的全部功能：
//   - 皮肤和升级按钮实体的创建与刷新
//   - 按钮交互（悬停、点击购买）
//   - 商店面板的渲染
//
// 商店按钮存放在模块自己的 EntityManager 中，对局重新开始时清空世界实体不会影响它们。
// 商店是否显示由 GameState 的 Shopping 阶段决定。
type ShopModule struct {
	entityManager *ecs.EntityManager

	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	world *game.World
	face  text.Face

	skinButtons    []ecs.EntityID // 与目录中的皮肤顺序一致
	upgradeButtons []ecs.EntityID // 与 config.UpgradeKinds 顺序一致
	closeButton    ecs.EntityID

	// 最近一次操作的提示文字
	message string
}

// NewShopModule 创建商店模块
func NewShopModule(world *game.World, face text.Face) (*ShopModule, error) {
	em := ecs.NewEntityManager()
	m := &ShopModule{
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, face),
		world:              world,
		face:               face,
	}

	for i, skin := range world.Catalog.Skins {
		key := skin.Key
		x, y := ShopButtonPosition(i, shopSkinTop)
		id, err := entities.NewShopButton(em, x, y, config.ShopButtonWidth, config.ShopButtonHeight, skin.Name, func() {
			m.BuySkin(key)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create skin button %s: %w", key, err)
		}
		m.skinButtons = append(m.skinButtons, id)
	}

	for i, kind := range config.UpgradeKinds {
		x, y := ShopButtonPosition(i, shopUpgradeTop)
		id, err := entities.NewShopButton(em, x, y, config.ShopButtonWidth, config.ShopButtonHeight, upgradeLabels[kind].name, func() {
			m.BuyUpgrade(kind)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create upgrade button %s: %w", kind, err)
		}
		m.upgradeButtons = append(m.upgradeButtons, id)
	}

	closeX := config.ShopPanelX + (config.ShopPanelWidth-config.ShopButtonWidth)/2
	closeID, err := entities.NewShopButton(em, closeX, shopCloseY, config.ShopButtonWidth, config.ShopButtonHeight, "CLOSE (B)", m.Close)
	if err != nil {
		return nil, fmt.Errorf("failed to create close button: %w", err)
	}
	m.closeButton = closeID

	m.Refresh()
	log.Printf("[ShopModule] Initialized with %d skins, %d upgrades", len(m.skinButtons), len(m.upgradeButtons))
	return m, nil
}

// ShopButtonPosition 返回网格中第 index 个按钮的左上角坐标
// 每行 3 个按钮，整行在面板内水平居中
func ShopButtonPosition(index int, top float64) (float64, float64) {
	rowWidth := shopColumns*config.ShopButtonWidth + (shopColumns-1)*config.ShopButtonGap
	left := config.ShopPanelX + (config.ShopPanelWidth-rowWidth)/2
	col, row := index%shopColumns, index/shopColumns
	return left + float64(col)*(config.ShopButtonWidth+config.ShopButtonGap),
		top + float64(row)*(config.ShopButtonHeight+config.ShopButtonGap)
}

// IsActive 商店是否打开
func (m *ShopModule) IsActive() bool {
	return m.world.State.Phase() == game.PhaseShopping
}

// Open 打开商店
func (m *ShopModule) Open() bool {
	if !m.world.State.OpenShop() {
		return false
	}
	m.message = ""
	m.Refresh()
	return true
}

// Close 关闭商店
func (m *ShopModule) Close() {
	m.world.State.CloseShop()
}

// Toggle 切换商店开关
func (m *ShopModule) Toggle() {
	if m.IsActive() {
		m.Close()
		return
	}
	m.Open()
}

// Update 商店打开时处理按钮交互
func (m *ShopModule) Update(deltaTime float64) {
	if !m.IsActive() {
		return
	}
	m.buttonSystem.Update(deltaTime)
}

// HandlePointer 用给定的指针状态驱动按钮
func (m *ShopModule) HandlePointer(p utils.PointerState) {
	if !m.IsActive() {
		return
	}
	m.buttonSystem.HandlePointer(p)
}

// BuySkin 购买或装备皮肤
func (m *ShopModule) BuySkin(key string) bool {
	gs := m.world.State
	skin, ok := m.world.Catalog.GetSkin(key)
	if !ok {
		return false
	}
	owned := gs.OwnedSkins[key]

	if !gs.BuySkin(key) {
		m.message = fmt.Sprintf("Not enough coins for %s (%d)", skin.Name, skin.Price)
		m.Refresh()
		return false
	}
	if owned {
		m.message = fmt.Sprintf("%s equipped", skin.Name)
	} else {
		m.message = fmt.Sprintf("Purchased %s", skin.Name)
	}
	m.Refresh()
	return true
}

// BuyUpgrade 购买升级项的下一档
func (m *ShopModule) BuyUpgrade(kind config.UpgradeKind) bool {
	gs := m.world.State
	label := upgradeLabels[kind]

	tier, ok := gs.NextUpgrade(kind)
	if !ok {
		m.message = fmt.Sprintf("%s is already at MAX", label.name)
		m.Refresh()
		return false
	}
	if !gs.BuyUpgrade(kind) {
		m.message = fmt.Sprintf("Not enough coins for %s (%d)", label.name, tier.Price)
		m.Refresh()
		return false
	}
	m.message = fmt.Sprintf("%s upgraded to %d%s", label.name, tier.Value, label.unit)
	m.Refresh()
	return true
}

// Message 最近一次操作的提示文字
func (m *ShopModule) Message() string {
	return m.message
}

// Refresh 根据当前金币、皮肤和升级状态更新按钮文字与可用性
func (m *ShopModule) Refresh() {
	gs := m.world.State

	for i, id := range m.skinButtons {
		button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id)
		if !ok {
			continue
		}
		skin := m.world.Catalog.Skins[i]
		button.Detail, button.Enabled, button.Selected = SkinButtonLabel(gs, skin)
	}

	for i, id := range m.upgradeButtons {
		button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id)
		if !ok {
			continue
		}
		button.Detail, button.Enabled = UpgradeButtonLabel(gs, m.world.Catalog, config.UpgradeKinds[i])
	}
}

// SkinButtonLabel 返回皮肤按钮的副标题、是否可点击、是否为当前装备
func SkinButtonLabel(gs *game.GameState, skin config.Skin) (string, bool, bool) {
	switch {
	case gs.EquippedSkin == skin.Key:
		return "EQUIPPED", false, true
	case gs.OwnedSkins[skin.Key]:
		return "EQUIP", true, false
	}
	return fmt.Sprintf("PURCHASE - %d coins", skin.Price), gs.Coins >= skin.Price, false
}

// UpgradeButtonLabel 返回升级按钮的副标题和是否可点击
func UpgradeButtonLabel(gs *game.GameState, catalog *config.Catalog, kind config.UpgradeKind) (string, bool) {
	level := gs.UpgradeLevels[kind]
	tier, ok := gs.NextUpgrade(kind)
	if !ok {
		return fmt.Sprintf("Level %d - MAX", level), false
	}
	return fmt.Sprintf("Level %d/%d - %d coins", level, catalog.MaxLevel(kind), tier.Price), gs.Coins >= tier.Price
}

// Draw 绘制商店面板和按钮
func (m *ShopModule) Draw(screen *ebiten.Image) {
	if !m.IsActive() {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorShopDimmer, false)
	vector.DrawFilledRect(screen, config.ShopPanelX, config.ShopPanelY, config.ShopPanelWidth, config.ShopPanelHeight, colorShopPanel, false)
	vector.StrokeRect(screen, config.ShopPanelX, config.ShopPanelY, config.ShopPanelWidth, config.ShopPanelHeight, 2, colorShopBorder, false)

	cx := config.ShopPanelX + config.ShopPanelWidth/2
	utils.DrawText(screen, "ARMORY SHOP", m.face, cx, shopTitleY,
		utils.TextStyle{Scale: 2, Align: text.AlignCenter, Color: colorShopTitle})
	utils.DrawText(screen, fmt.Sprintf("Coins: %d", m.world.State.Coins), m.face, cx, shopCoinsY,
		utils.TextStyle{Align: text.AlignCenter, Color: colorShopText})

	left, _ := ShopButtonPosition(0, 0)
	utils.DrawText(screen, "SUIT SKINS", m.face, left, shopSkinHeaderY, utils.TextStyle{Color: colorShopDim})
	utils.DrawText(screen, "UPGRADES", m.face, left, shopUpgradeTitle, utils.TextStyle{Color: colorShopDim})

	m.buttonRenderSystem.Draw(screen)

	y := float64(shopMessageY)
	for _, line := range utils.WrapText(m.message, m.face, 1, config.ShopPanelWidth-40) {
		utils.DrawText(screen, line, m.face, cx, y, utils.TextStyle{Align: text.AlignCenter, Color: colorShopText})
		y += config.HUDLineHeight
	}
}
