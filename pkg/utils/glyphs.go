package utils

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Glyph 矢量图标名称
// 按钮图标用线段绘制，避免依赖图片资源
type Glyph string

const (
	GlyphMenu   Glyph = "menu"
	GlyphClose  Glyph = "close"
	GlyphAdd    Glyph = "add"
	GlyphEdit   Glyph = "edit"
	GlyphShare  Glyph = "share"
	GlyphDelete Glyph = "delete"
	GlyphNone   Glyph = "none"
)

// glyphSegment 单位坐标系 [-1, 1] 中的一条线段
type glyphSegment struct {
	x0, y0, x1, y1 float64
}

var glyphSegments = map[Glyph][]glyphSegment{
	GlyphMenu: {
		{-0.7, -0.5, 0.7, -0.5},
		{-0.7, 0, 0.7, 0},
		{-0.7, 0.5, 0.7, 0.5},
	},
	GlyphClose: {
		{-0.55, -0.55, 0.55, 0.55},
		{-0.55, 0.55, 0.55, -0.55},
	},
	GlyphAdd: {
		{-0.7, 0, 0.7, 0},
		{0, -0.7, 0, 0.7},
	},
	GlyphEdit: {
		{-0.6, 0.6, 0.5, -0.5},
		{-0.6, 0.6, -0.65, 0.2},
		{-0.6, 0.6, -0.2, 0.65},
	},
	GlyphShare: {
		{-0.5, 0, 0.5, -0.55},
		{-0.5, 0, 0.5, 0.55},
	},
	GlyphDelete: {
		{-0.6, -0.5, 0.6, -0.5},
		{-0.4, -0.5, -0.3, 0.7},
		{0.4, -0.5, 0.3, 0.7},
		{-0.3, 0.7, 0.3, 0.7},
	},
	GlyphNone: nil,
}

// ParseGlyph 解析图标名称
func ParseGlyph(name string) (Glyph, error) {
	g := Glyph(name)
	if _, ok := glyphSegments[g]; !ok {
		return "", fmt.Errorf("unknown glyph %q", name)
	}
	return g, nil
}

// DrawGlyph 在 (cx, cy) 处绘制图标
//
// 参数：
//   - size: 图标外接正方形的半边长（像素）
//   - rotation: 旋转角度（弧度，顺时针）
//   - clr: 颜色（已包含透明度）
func DrawGlyph(dst *ebiten.Image, g Glyph, cx, cy, size, rotation float64, clr color.Color) {
	segments := glyphSegments[g]
	if len(segments) == 0 {
		return
	}

	sin, cos := math.Sincos(rotation)
	transform := func(x, y float64) (float32, float32) {
		rx := x*cos - y*sin
		ry := x*sin + y*cos
		return float32(cx + rx*size), float32(cy + ry*size)
	}

	strokeWidth := float32(math.Max(1.5, size*0.22))
	for _, seg := range segments {
		x0, y0 := transform(seg.x0, seg.y0)
		x1, y1 := transform(seg.x1, seg.y1)
		vector.StrokeLine(dst, x0, y0, x1, y1, strokeWidth, clr, true)
	}
}

// ScaleAlpha 按透明度缩放颜色
// color.RGBA 为预乘格式，需同时缩放所有通道
func ScaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	a := Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
