package systems

import (
	"image/color"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 标签绘制参数
const (
	labelGap      = 12.0  // 标签与按钮之间的距离
	labelPaddingX = 8.0   // 标签背景水平内边距
	labelPaddingY = 4.0   // 标签背景垂直内边距
	labelMaxWidth = 160.0 // 超出后截断
)

var (
	labelBackground = color.RGBA{0xFF, 0xFF, 0xFF, 0xF0}
	labelTextColor  = color.RGBA{0x1C, 0x1B, 0x1F, 0xFF}
)

// ActionButtonRenderSystem 动作按钮渲染系统
//
// 职责：
//   - 按当前旋转和透明度绘制圆形按钮与图标
//   - 在按钮左侧绘制可选的文字标签（随按钮淡入淡出）
type ActionButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	labelFace     *text.GoTextFace // nil 时不绘制标签
}

// NewActionButtonRenderSystem 创建动作按钮渲染系统
func NewActionButtonRenderSystem(em *ecs.EntityManager, labelFace *text.GoTextFace) *ActionButtonRenderSystem {
	return &ActionButtonRenderSystem{
		entityManager: em,
		labelFace:     labelFace,
	}
}

// Draw 渲染所有动作按钮
// 按实体 ID 顺序绘制，后面的按钮在上层
func (s *ActionButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ActionButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个动作按钮
func (s *ActionButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ActionButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	state := components.UINormal
	if ui, ok := ecs.GetComponent[*components.UIComponent](s.entityManager, entityID); ok {
		state = ui.State
	}

	drawCircleButton(screen, circleButton{
		cx:         pos.X,
		cy:         pos.Y,
		diameter:   button.Diameter,
		scale:      1,
		opacity:    button.Opacity,
		rotation:   button.Rotation,
		glyph:      button.Glyph,
		foreground: button.Foreground,
		background: button.Background,
		state:      state,
	})

	s.drawLabel(screen, button, pos.X, pos.Y)
}

// drawLabel 在按钮左侧绘制标签
func (s *ActionButtonRenderSystem) drawLabel(screen *ebiten.Image, button *components.ActionButtonComponent, cx, cy float64) {
	if button.Label == "" || s.labelFace == nil || button.Opacity < minOpacity {
		return
	}

	label := utils.TruncateText(button.Label, s.labelFace, labelMaxWidth)
	if label == "" {
		return
	}
	width, height := utils.MeasureText(label, s.labelFace)

	right := cx - button.Diameter/2 - labelGap
	left := right - width - labelPaddingX*2
	top := cy - height/2 - labelPaddingY

	vector.DrawFilledRect(screen,
		float32(left), float32(top),
		float32(width+labelPaddingX*2), float32(height+labelPaddingY*2),
		utils.ScaleAlpha(labelBackground, button.Opacity), true)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignEnd
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(right-labelPaddingX, cy)
	op.ColorScale.ScaleWithColor(labelTextColor)
	op.ColorScale.ScaleAlpha(float32(button.Opacity))
	text.Draw(screen, label, s.labelFace, op)
}
