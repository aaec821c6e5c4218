package systems

import (
	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
	"github.com/gonewx/invasion/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责按钮的悬停、按下状态，并在指针释放时触发 OnClick
//
// 按钮实体只需要 ButtonComponent 和 PositionComponent（左上角）。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 读取当前指针状态并更新按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	s.HandlePointer(utils.GetPointerState())
}

// HandlePointer 根据指针状态更新所有按钮
// 返回本次触发回调的按钮数量
func (s *ButtonSystem) HandlePointer(p utils.PointerState) int {
	clicked := 0
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(p.X, p.Y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case p.Pressed:
			button.State = components.UIClicked
		case p.JustReleased:
			// 释放瞬间触发回调
			button.State = components.UIHovered
			if button.OnClick != nil {
				button.OnClick()
				clicked++
			}
		default:
			button.State = components.UIHovered
		}
	}
	return clicked
}
