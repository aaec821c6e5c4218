package entities

import (
	"fmt"

	"github.com/gonewx/invasion/pkg/components"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/ecs"
)

// NewAvatar 创建玩家角色实体
// 角色固定在场地中央，不参与移动积分
func NewAvatar(em *ecs.EntityManager, tuning *config.Tuning) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tuning == nil {
		return 0, fmt.Errorf("tuning cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: tuning.Avatar.X,
		Y: tuning.Avatar.Y,
	})
	ecs.AddComponent(em, id, &components.AvatarComponent{
		Size: tuning.Avatar.Size,
	})
	return id, nil
}
