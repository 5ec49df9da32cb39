package entities

import (
	"image/color"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
)

// 点击优先级：开启按钮 > 关闭按钮 > 动作按钮 > 遮罩
const (
	PriorityOverlay     = 0
	PriorityAction      = 10
	PriorityCloseButton = 20
	PriorityOpenButton  = 30
)

// 动作按钮默认配色
var (
	DefaultActionForeground = color.RGBA{0x21, 0x00, 0x5D, 0xFF}
	DefaultActionBackground = color.RGBA{0xEA, 0xDD, 0xFF, 0xFF}
)

// ActionButtonSpec 动作按钮的创建参数
type ActionButtonSpec struct {
	Glyph      utils.Glyph
	Label      string
	Foreground *color.RGBA // nil 使用默认配色
	Background *color.RGBA
	OnPressed  func()
}

// FabEntities 一个菜单创建的全部实体
type FabEntities struct {
	Menu        ecs.EntityID
	Overlay     ecs.EntityID // 未配置遮罩时为 0
	CloseButton ecs.EntityID
	OpenButton  ecs.EntityID
	Actions     []ecs.EntityID
}

// All 返回所有实体 ID（不含为 0 的遮罩）
func (f FabEntities) All() []ecs.EntityID {
	ids := []ecs.EntityID{f.Menu, f.CloseButton, f.OpenButton}
	if f.Overlay != 0 {
		ids = append(ids, f.Overlay)
	}
	return append(ids, f.Actions...)
}

// NewFabMenu 创建可展开菜单的全部实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 菜单配置（已校验）
//   - actions: 动作按钮，按顺序从近到远/从右到左排列
//   - toggle: 开启/关闭按钮与遮罩的点击回调
//   - screenWidth, screenHeight: 遮罩覆盖区域
//
// 返回：
//   - 菜单实体集合
func NewFabMenu(
	em *ecs.EntityManager,
	cfg *config.FabConfig,
	actions []ActionButtonSpec,
	toggle func(),
	screenWidth, screenHeight float64,
) FabEntities {
	var result FabEntities

	// 菜单根实体
	result.Menu = em.CreateEntity()
	ecs.AddComponent(em, result.Menu, &components.FabMenuComponent{
		Layout:             cfg.LayoutSpec(),
		ChildCount:         len(actions),
		CollapsedDiameter:  cfg.CollapsedFabSize.Diameter(),
		ExpandedDiameter:   cfg.ExpandedFabSize.Diameter(),
		ActionDiameter:     cfg.ActionFabSize.Diameter(),
		OpenButtonEndScale: cfg.OpenButtonEndScale(),
	})

	// 遮罩
	if cfg.OverlayStyle != nil {
		result.Overlay = newOverlay(em, result.Menu, cfg.OverlayStyle, toggle, screenWidth, screenHeight)
	}

	// 关闭按钮在开启按钮下方
	closeStyle := cfg.CloseButtonStyle
	result.CloseButton = newToggleButton(em, result.Menu, components.ToggleButtonComponent{
		Role:       components.ToggleClose,
		Glyph:      closeStyle.Child,
		Diameter:   cfg.ExpandedFabSize.Diameter(),
		Foreground: closeStyle.ForegroundColor.RGBA,
		Background: closeStyle.BackgroundColor.RGBA,
		HeroTag:    cfg.CloseButtonHeroTag,
	}, PriorityCloseButton, toggle)

	// 动作按钮
	diameter := cfg.ActionFabSize.Diameter()
	for i, spec := range actions {
		result.Actions = append(result.Actions, newActionButton(em, result.Menu, i, diameter, spec))
	}

	// 开启按钮
	result.OpenButton = newToggleButton(em, result.Menu, components.ToggleButtonComponent{
		Role:       components.ToggleOpen,
		Glyph:      cfg.Child,
		Diameter:   cfg.CollapsedFabSize.Diameter(),
		Foreground: cfg.ForegroundColor.RGBA,
		Background: cfg.BackgroundColor.RGBA,
		HeroTag:    cfg.OpenButtonHeroTag,
	}, PriorityOpenButton, toggle)

	return result
}

// newOverlay 创建遮罩实体，覆盖 (0, 0) 起的整个区域
func newOverlay(em *ecs.EntityManager, menu ecs.EntityID, style *config.OverlayStyle, toggle func(), width, height float64) ecs.EntityID {
	entity := em.CreateEntity()

	overlay := &components.OverlayComponent{
		Menu:   menu,
		Mode:   style.Mode(),
		Width:  width,
		Height: height,
	}
	if style.Mode() == config.OverlayBlur {
		overlay.Blur = style.Blur()
	} else {
		overlay.Color = style.Color().RGBA
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, overlay)
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Shape:    components.ClickShapeRect,
		Width:    width,
		Height:   height,
		Priority: PriorityOverlay,
		OnClick:  toggle,
	})
	return entity
}

// newToggleButton 创建开启/关闭按钮实体
func newToggleButton(em *ecs.EntityManager, menu ecs.EntityID, button components.ToggleButtonComponent, priority int, toggle func()) ecs.EntityID {
	entity := em.CreateEntity()

	button.Menu = menu
	button.Scale = 1
	if button.Role == components.ToggleOpen {
		button.Opacity = 1
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, &button)
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Shape:    components.ClickShapeCircle,
		Width:    button.Diameter,
		Priority: priority,
		OnClick:  toggle,
	})
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})
	return entity
}

// newActionButton 创建动作按钮实体
func newActionButton(em *ecs.EntityManager, menu ecs.EntityID, index int, diameter float64, spec ActionButtonSpec) ecs.EntityID {
	entity := em.CreateEntity()

	fg := DefaultActionForeground
	if spec.Foreground != nil {
		fg = *spec.Foreground
	}
	bg := DefaultActionBackground
	if spec.Background != nil {
		bg = *spec.Background
	}

	ecs.AddComponent(em, entity, &components.PositionComponent{})
	ecs.AddComponent(em, entity, &components.ActionButtonComponent{
		Menu:       menu,
		Index:      index,
		Glyph:      spec.Glyph,
		Label:      spec.Label,
		Diameter:   diameter,
		Foreground: fg,
		Background: bg,
		Rotation:   0,
	})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Shape:    components.ClickShapeCircle,
		Width:    diameter,
		Priority: PriorityAction,
		OnClick:  spec.OnPressed,
	})
	ecs.AddComponent(em, entity, &components.UIComponent{State: components.UINormal})
	return entity
}
