package systems

import (
	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/layout"
)

// ToggleButtonSystem 开启/关闭按钮系统
// 两个按钮都以开启按钮的中心为中心
type ToggleButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewToggleButtonSystem 创建开启/关闭按钮系统
func NewToggleButtonSystem(em *ecs.EntityManager) *ToggleButtonSystem {
	return &ToggleButtonSystem{
		entityManager: em,
	}
}

// Update 更新开启/关闭按钮的位置、透明度、缩放和可点击状态
func (s *ToggleButtonSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ToggleButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		menu, ok := ecs.GetComponent[*components.FabMenuComponent](s.entityManager, button.Menu)
		if !ok {
			continue
		}

		pos.X = menu.AnchorRight - menu.CollapsedDiameter/2
		pos.Y = menu.AnchorBottom - menu.CollapsedDiameter/2

		var visual layout.ToggleVisual
		if button.Role == components.ToggleClose {
			visual = layout.VisualizeCloseButton(menu.Progress, menu.Open)
		} else {
			visual = layout.VisualizeOpenButton(menu.Progress, menu.OpenButtonEndScale, menu.Open)
		}
		button.Opacity = visual.Opacity
		button.Scale = visual.Scale
		button.IconRotation = visual.IconRotation

		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID); ok {
			clickable.Width = button.Diameter * visual.Scale
			clickable.IsEnabled = visual.Interactive
		}
	}
}
