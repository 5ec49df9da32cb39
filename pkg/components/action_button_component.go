package components

import (
	"image/color"

	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
)

// ActionButtonComponent 展开后显示的动作按钮
//
// 位置、旋转和透明度由 ActionButtonSystem 根据菜单进度每帧推导，
// 本组件不保存独立的动画状态。
type ActionButtonComponent struct {
	// Menu 所属菜单根实体
	Menu ecs.EntityID
	// Index 在 children 中的序号
	Index int

	Glyph      utils.Glyph
	Label      string // 可选，显示在按钮左侧
	Diameter   float64
	Foreground color.RGBA
	Background color.RGBA

	// ===== 每帧推导的视觉状态 =====
	// Rotation 当前旋转（弧度），收起时 π/2，展开时 0
	Rotation float64
	// Opacity 当前透明度，等于进度
	Opacity float64
}
