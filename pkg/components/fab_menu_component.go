package components

import "github.com/gonewx/fab/pkg/layout"

// FabMenuComponent 可展开菜单的根组件
// 挂在菜单根实体上，按钮和遮罩实体通过 Menu 字段引用它
//
// Progress / OverlayProgress / Open 由控制器每帧写入，系统只读
type FabMenuComponent struct {
	// Progress 曲线映射后的展开进度 [0, 1]
	Progress float64
	// OverlayProgress 遮罩动画进度 [0, 1]
	OverlayProgress float64
	// Open 当前菜单状态是否为展开
	Open bool

	// Layout 动作按钮布局参数
	Layout layout.Spec
	// ChildCount 动作按钮数量
	ChildCount int

	// AnchorRight, AnchorBottom 开启按钮右下角的屏幕坐标
	AnchorRight  float64
	AnchorBottom float64

	// 按钮直径（像素）
	CollapsedDiameter float64
	ExpandedDiameter  float64
	ActionDiameter    float64

	// OpenButtonEndScale 开启按钮完全展开时的缩放
	OpenButtonEndScale float64
}
