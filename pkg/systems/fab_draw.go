package systems

import (
	"image/color"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮绘制参数
const (
	shadowOffsetY = 2.0
	iconRatio     = 0.3 // 图标半边长 / 直径
	minOpacity    = 0.001
)

var shadowColor = color.RGBA{0, 0, 0, 60}

// circleButton 圆形按钮的一次绘制
type circleButton struct {
	cx, cy     float64
	diameter   float64
	scale      float64
	opacity    float64
	rotation   float64 // 图标旋转（弧度）
	glyph      utils.Glyph
	foreground color.RGBA
	background color.RGBA
	state      components.UIState
}

// drawCircleButton 绘制带阴影的圆形按钮和图标
// 透明度低于 minOpacity 时跳过
func drawCircleButton(screen *ebiten.Image, b circleButton) {
	if b.opacity < minOpacity || b.diameter <= 0 {
		return
	}

	radius := b.diameter * b.scale / 2
	bg := b.background
	switch b.state {
	case components.UIHovered:
		bg = lighten(bg, 0.08)
	case components.UIClicked:
		bg = lighten(bg, 0.16)
	}

	vector.DrawFilledCircle(screen, float32(b.cx), float32(b.cy+shadowOffsetY), float32(radius), utils.ScaleAlpha(shadowColor, b.opacity), true)
	vector.DrawFilledCircle(screen, float32(b.cx), float32(b.cy), float32(radius), utils.ScaleAlpha(bg, b.opacity), true)
	utils.DrawGlyph(screen, b.glyph, b.cx, b.cy, b.diameter*b.scale*iconRatio, b.rotation, utils.ScaleAlpha(b.foreground, b.opacity))
}

// lighten 向白色混合（预乘颜色）
func lighten(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (float64(c.A)-float64(v))*amount)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
