package systems

import (
	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/layout"
)

// ActionButtonSystem 动作按钮布局系统
// 每帧根据所属菜单的进度重新计算每个动作按钮的位置、旋转和透明度
//
// 按钮右下角 = ToScreen(菜单锚点, 偏移量, childrenOffset)，
// 位置组件保存按钮中心。
type ActionButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewActionButtonSystem 创建动作按钮布局系统
func NewActionButtonSystem(em *ecs.EntityManager) *ActionButtonSystem {
	return &ActionButtonSystem{
		entityManager: em,
	}
}

// Update 更新所有动作按钮
func (s *ActionButtonSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.ActionButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ActionButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		menu, ok := ecs.GetComponent[*components.FabMenuComponent](s.entityManager, button.Menu)
		if !ok {
			continue
		}

		visual := layout.VisualizeAction(button.Index, menu.ChildCount, menu.Layout, menu.Progress)
		right, bottom := layout.ToScreen(menu.AnchorRight, menu.AnchorBottom, visual.Placement.Offset, menu.Layout.ChildrenOffset)

		pos.X = right - button.Diameter/2
		pos.Y = bottom - button.Diameter/2
		button.Rotation = visual.Rotation
		button.Opacity = visual.Opacity

		if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID); ok {
			clickable.Width = button.Diameter
			clickable.IsEnabled = menu.Open && visual.Opacity > 0
		}
	}
}
