// Package utils 提供输入、文字和平台相关的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 统一处理鼠标和触摸输入
type InputState struct {
	// JustPressed 本帧是否刚发生点击/触摸
	JustPressed bool
	// X, Y 指针位置（逻辑坐标）
	X, Y int
	// IsTouching 是否有活动的触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 新的触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 持续中的触摸（用于瞄准）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}

// IsAnyKeyJustPressed 检查任一按键是否在本帧刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// PointInRect 判断点是否位于矩形内（含左上边界，不含右下边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// PointerState 按钮交互所需的指针状态
type PointerState struct {
	X, Y         float64
	Pressed      bool // 鼠标左键或触摸处于按下状态
	JustReleased bool // 本帧刚释放
}

// 最后一次触摸位置，触摸释放时 TouchPosition 已不可用
var lastTouchX, lastTouchY int

// GetPointerState 获取当前帧的指针状态（鼠标或触摸）
func GetPointerState() PointerState {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		return PointerState{X: float64(lastTouchX), Y: float64(lastTouchY), Pressed: true}
	}
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		return PointerState{X: float64(lastTouchX), Y: float64(lastTouchY), JustReleased: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            float64(x),
		Y:            float64(y),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
