package components

// ClickShape 可点击区域的形状
type ClickShape int

const (
	// ClickShapeRect 矩形区域，Width × Height，以位置为左上角
	ClickShapeRect ClickShape = iota
	// ClickShapeCircle 圆形区域，直径为 Width，以位置为圆心
	ClickShapeCircle
)

// ClickableComponent 标记实体可以被点击
// 定义了可点击区域的尺寸、优先级和是否启用点击
type ClickableComponent struct {
	Shape     ClickShape
	Width     float64 // 可点击区域的宽度(像素)，圆形时为直径
	Height    float64 // 可点击区域的高度(像素)，圆形时忽略
	Priority  int     // 命中多个实体时优先级高者获胜
	IsEnabled bool    // 是否可以被点击(收起时的遮罩、隐藏的按钮均为禁用)
	OnClick   func()
}
