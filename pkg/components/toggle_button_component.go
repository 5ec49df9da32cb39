package components

import (
	"image/color"

	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
)

// ToggleRole 切换按钮的角色
type ToggleRole int

const (
	// ToggleOpen 收起时可见的开启按钮
	ToggleOpen ToggleRole = iota
	// ToggleClose 展开时可见的关闭按钮，绘制在开启按钮下方
	ToggleClose
)

// String 返回角色名称
func (r ToggleRole) String() string {
	if r == ToggleClose {
		return "close"
	}
	return "open"
}

// ToggleButtonComponent 开启/关闭按钮
// 两个按钮都调用同一个 Toggle
type ToggleButtonComponent struct {
	Menu ecs.EntityID
	Role ToggleRole

	Glyph      utils.Glyph
	Diameter   float64
	Foreground color.RGBA
	Background color.RGBA
	// HeroTag 跨场景过渡标识，空字符串表示不参与
	HeroTag string
	// Hidden 过渡飞行期间由场景管理器隐藏
	Hidden bool

	// ===== 每帧推导的视觉状态 =====
	Opacity      float64
	Scale        float64
	IconRotation float64 // 弧度
}
