package systems

import (
	"math"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
)

// ClickSystem 点击交互系统
// 负责可点击实体的悬停状态与点击分发
//
// 职责：
//   - 检测指针悬停（更新 UIComponent 状态）
//   - 检测点击（按下与释放位置在 TapSlop 内），触发命中实体中优先级最高者的 OnClick
//   - 禁用的实体（IsEnabled=false）点击穿透
type ClickSystem struct {
	entityManager *ecs.EntityManager
	tracker       utils.TapTracker
}

// NewClickSystem 创建点击交互系统
func NewClickSystem(em *ecs.EntityManager) *ClickSystem {
	return &ClickSystem{
		entityManager: em,
	}
}

// Update 读取鼠标/触摸输入（ebiten），更新悬停状态并分发点击
func (s *ClickSystem) Update(deltaTime float64) {
	tapped, tapX, tapY := s.tracker.PollTap()

	pointerX, pointerY := utils.GetPointerPosition()
	s.updateStates(float64(pointerX), float64(pointerY), s.tracker.IsPressed())

	if tapped {
		s.HandleTap(float64(tapX), float64(tapY))
	}
}

// HandleTap 在 (x, y) 处分发一次点击
// 返回是否有实体消费了该点击
func (s *ClickSystem) HandleTap(x, y float64) bool {
	target, ok := s.HitTest(x, y)
	if !ok {
		return false
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, target)
	if clickable.OnClick != nil {
		clickable.OnClick()
	}
	return true
}

// HitTest 返回 (x, y) 处优先级最高的可点击实体
// 优先级相同时取实体 ID 较大者（后创建的实体绘制在上层）
func (s *ClickSystem) HitTest(x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith2[*components.ClickableComponent, *components.PositionComponent](s.entityManager)

	var (
		best     ecs.EntityID
		bestPrio int
		found    bool
	)
	for _, entityID := range entities {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !clickable.IsEnabled || !containsPoint(clickable, pos, x, y) {
			continue
		}
		if !found || clickable.Priority >= bestPrio {
			best = entityID
			bestPrio = clickable.Priority
			found = true
		}
	}
	return best, found
}

// updateStates 根据指针位置更新所有 UIComponent 的状态
func (s *ClickSystem) updateStates(x, y float64, pressed bool) {
	hovered, hasHover := s.HitTest(x, y)

	for _, entityID := range ecs.GetEntitiesWith2[*components.UIComponent, *components.ClickableComponent](s.entityManager) {
		ui, _ := ecs.GetComponent[*components.UIComponent](s.entityManager, entityID)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, entityID)

		switch {
		case !clickable.IsEnabled:
			ui.State = components.UIDisabled
		case hasHover && entityID == hovered && pressed:
			ui.State = components.UIClicked
		case hasHover && entityID == hovered:
			ui.State = components.UIHovered
		default:
			ui.State = components.UINormal
		}
	}
}

// containsPoint 检测点是否在可点击区域内
func containsPoint(clickable *components.ClickableComponent, pos *components.PositionComponent, x, y float64) bool {
	if clickable.Shape == components.ClickShapeCircle {
		return math.Hypot(x-pos.X, y-pos.Y) <= clickable.Width/2
	}
	return x >= pos.X &&
		x <= pos.X+clickable.Width &&
		y >= pos.Y &&
		y <= pos.Y+clickable.Height
}
