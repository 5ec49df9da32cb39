package systems

import (
	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ToggleButtonRenderSystem 开启/关闭按钮渲染系统
// 关闭按钮先绘制，开启按钮叠在其上淡出
type ToggleButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewToggleButtonRenderSystem 创建开启/关闭按钮渲染系统
func NewToggleButtonRenderSystem(em *ecs.EntityManager) *ToggleButtonRenderSystem {
	return &ToggleButtonRenderSystem{
		entityManager: em,
	}
}

// DrawRole 渲染指定角色的所有按钮
func (s *ToggleButtonRenderSystem) DrawRole(screen *ebiten.Image, role components.ToggleRole) {
	entities := ecs.GetEntitiesWith2[*components.ToggleButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, entityID)
		if button.Role != role || button.Hidden {
			continue
		}
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个开启/关闭按钮
func (s *ToggleButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	s.DrawButtonAt(screen, entityID, pos.X, pos.Y)
}

// DrawButtonAt 以 (cx, cy) 为中心渲染按钮，忽略位置组件
// 用于生成过渡快照
func (s *ToggleButtonRenderSystem) DrawButtonAt(dst *ebiten.Image, entityID ecs.EntityID, cx, cy float64) {
	button, ok := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	state := components.UINormal
	if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, entityID); ok {
		state = ui.State
	}

	drawCircleButton(dst, circleButton{
		cx:         cx,
		cy:         cy,
		diameter:   button.Diameter,
		scale:      button.Scale,
		opacity:    button.Opacity,
		rotation:   button.IconRotation,
		glyph:      button.Glyph,
		foreground: button.Foreground,
		background: button.Background,
		state:      state,
	})
}
