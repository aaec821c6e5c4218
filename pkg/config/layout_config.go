package config

import "time"

// 布局配置常量
// 所有坐标使用固定的逻辑坐标系（800x600），Ebitengine 负责窗口缩放

const (
	// GameWindowWidth 逻辑画布宽度
	GameWindowWidth = 800

	// GameWindowHeight 逻辑画布高度
	GameWindowHeight = 600

	// WindowTitle 窗口标题
	WindowTitle = "Alien Invasion"

	// TicksPerSecond 模拟步进频率
	// 所有速度配置的单位均为"逻辑像素/步"
	TicksPerSecond = 60

	// MaxCatchUpTicks 单帧内最多补偿的模拟步数
	// 窗口被拖动或卡顿时避免"死亡螺旋"
	MaxCatchUpTicks = 4

	// StarCount 背景星空的星星数量
	StarCount = 50
)

// TickDuration 单个模拟步的时长
const TickDuration = time.Second / TicksPerSecond

// TickSeconds 单个模拟步的时长（秒）
const TickSeconds = 1.0 / TicksPerSecond

// HUD 布局
const (
	// HUDPadding HUD 文字距画布边缘的距离
	HUDPadding = 10.0

	// HUDLineHeight HUD 每行高度
	HUDLineHeight = 16.0

	// BossBarWidth Boss 血条宽度
	BossBarWidth = 400.0

	// BossBarHeight Boss 血条高度
	BossBarHeight = 14.0

	// BossBarY Boss 血条 Y 坐标
	BossBarY = 12.0
)

// 商店面板布局
const (
	ShopPanelX      = 60.0
	ShopPanelY      = 50.0
	ShopPanelWidth  = 680.0
	ShopPanelHeight = 500.0

	ShopButtonWidth  = 190.0
	ShopButtonHeight = 56.0
	ShopButtonGap    = 12.0
)

// GetArenaBounds 返回画布边界
// 返回值：minX, minY, maxX, maxY
func GetArenaBounds() (float64, float64, float64, float64) {
	return 0, 0, GameWindowWidth, GameWindowHeight
}
