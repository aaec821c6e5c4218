package entities

import (
	"fmt"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/ecs"
)

// NewShopButton 创建一个矩形按钮实体，(x, y) 为左上角
func NewShopButton(em *ecs.EntityManager, x, y, width, height float64, title string, onClick func()) (ecs.EntityID, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("button %q: size must be positive, got %.0fx%.0f", title, width, height)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Title:   title,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	return id, nil
}
