package components

// ButtonComponent 按钮组件（ECS 架构）
// 商店面板中的矩形按钮，由矢量图形绘制
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 位置由 PositionComponent 提供（左上角）
type ButtonComponent struct {
	// Title 按钮主文字（如皮肤名称、升级项名称）
	Title string
	// Detail 按钮副文字（如价格、等级）
	Detail string

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Selected 是否处于选中状态（如当前装备的皮肤）
	Selected bool

	// OnClick 点击回调函数
	OnClick func()
}
