package components

import (
	"image/color"

	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
)

// OverlayComponent 菜单展开时覆盖在内容上的遮罩
// 颜色模式与模糊模式互斥，由 Mode 决定
type OverlayComponent struct {
	Menu ecs.EntityID
	Mode config.OverlayMode

	// Color 颜色模式的目标颜色（预乘）
	Color color.RGBA
	// Blur 模糊模式的目标强度
	Blur float64

	// Width, Height 覆盖区域（通常为整个屏幕）
	Width  float64
	Height float64

	// ===== 每帧推导的视觉状态 =====
	// Alpha 颜色模式当前透明度
	Alpha float64
	// Sigma 模糊模式当前强度
	Sigma float64
}
