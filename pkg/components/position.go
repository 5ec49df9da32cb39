package components

// PositionComponent 存储实体在屏幕上的位置
// FAB 相关实体中 X, Y 表示按钮中心
type PositionComponent struct {
	X float64
	Y float64
}
