package game

import "github.com/hajimehoshi/ebiten/v2"

// Hero 参与跨场景过渡的元素快照
type Hero struct {
	// Tag 过渡标识，两个场景中 Tag 相同的元素配对飞行
	Tag string
	// X, Y, Size 元素外接正方形（屏幕坐标）
	X, Y, Size float64
	// Image 元素快照，绘制时缩放到 Size
	Image *ebiten.Image
}

// HeroSource 是一个可选接口，场景实现它以参与跨场景过渡
type HeroSource interface {
	// Heroes 返回当前可见的过渡元素
	Heroes() []Hero
	// SetHeroHidden 飞行期间隐藏/恢复场景自身的同名元素
	SetHeroHidden(tag string, hidden bool)
}
