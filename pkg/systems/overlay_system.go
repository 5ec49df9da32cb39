package systems

import (
	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
)

// OverlaySystem 遮罩系统
// 根据菜单的遮罩进度更新颜色透明度或模糊强度；
// 菜单收起时遮罩点击穿透，展开时点击遮罩任意位置收起菜单
type OverlaySystem struct {
	entityManager *ecs.EntityManager
}

// NewOverlaySystem 创建遮罩系统
func NewOverlaySystem(em *ecs.EntityManager) *OverlaySystem {
	return &OverlaySystem{
		entityManager: em,
	}
}

// Update 更新所有遮罩
func (s *OverlaySystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.OverlayComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		overlay, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, entityID)

		menu, ok := ecs.GetComponent[*components.FabMenuComponent](s.entityManager, overlay.Menu)
		if !ok {
			continue
		}

		switch overlay.Mode {
		case config.OverlayBlur:
			overlay.Alpha = 0
			overlay.Sigma = overlay.Blur * menu.OverlayProgress
		default:
			overlay.Alpha = menu.OverlayProgress
			overlay.Sigma = 0
		}

		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID); ok {
			clickable.Width = overlay.Width
			clickable.Height = overlay.Height
			clickable.IsEnabled = menu.Open
		}
	}
}
