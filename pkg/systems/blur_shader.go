package systems

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// BlurThreshold 模糊强度低于此值时跳过模糊合成
const BlurThreshold = 0.001

// blurTaps 单方向的最大采样半径（单侧采样数）
// sigma 较大时按步长稀疏采样，保持 3σ 覆盖
const blurTaps = 16

// blurShaderSource 可分离高斯模糊（Kage）
// 每次调用只沿 Direction 方向模糊，水平、竖直各一遍
var blurShaderSource = []byte(fmt.Sprintf(`//kage:unit pixels

package main

var Sigma float
var Direction vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	lo := origin
	hi := origin + size - 1

	step := max(1.0, Sigma*3.0/%[1]d.0)
	twoSigma2 := 2.0 * Sigma * Sigma

	sum := vec4(0)
	total := 0.0
	for i := -%[1]d; i <= %[1]d; i++ {
		x := float(i) * step
		w := exp(-(x * x) / twoSigma2)
		p := clamp(srcPos+Direction*x, lo, hi)
		sum += imageSrc0At(p) * w
		total += w
	}
	return sum / total
}
`, blurTaps))

// gaussianBlur 两遍高斯模糊
// 着色器和中间缓冲在首次使用时创建，尺寸变化时重建
type gaussianBlur struct {
	shader  *ebiten.Shader
	failed  bool
	source  *ebiten.Image
	scratch *ebiten.Image
}

// apply 将 dst 的当前内容以 sigma 模糊后写回 dst
// 返回是否执行了模糊（着色器不可用时返回 false）
func (b *gaussianBlur) apply(dst *ebiten.Image, sigma float64) bool {
	if !b.ensureShader() {
		return false
	}

	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b.ensureBuffers(w, h)

	// 拷贝当前画面，子图像作为源时左上角对齐 (0, 0)
	b.source.Clear()
	b.source.DrawImage(dst, nil)

	// 水平
	b.scratch.Clear()
	b.pass(b.scratch, b.source, sigma, 1, 0, 0, 0)

	// 竖直，写回；子图像作为目标时使用原图坐标
	b.pass(dst, b.scratch, sigma, 0, 1, float64(bounds.Min.X), float64(bounds.Min.Y))
	return true
}

func (b *gaussianBlur) pass(dst, src *ebiten.Image, sigma, dx, dy, tx, ty float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(tx, ty)
	op.Blend = ebiten.BlendCopy
	op.Uniforms = map[string]any{
		"Sigma":     float32(sigma),
		"Direction": []float32{float32(dx), float32(dy)},
	}
	op.Images[0] = src
	dst.DrawRectShader(w, h, b.shader, op)
}

func (b *gaussianBlur) ensureShader() bool {
	if b.shader != nil {
		return true
	}
	if b.failed {
		return false
	}

	shader, err := ebiten.NewShader(blurShaderSource)
	if err != nil {
		b.failed = true
		log.Printf("[OverlayRenderSystem] 模糊着色器编译失败，退化为无模糊: %v", err)
		return false
	}
	b.shader = shader
	return true
}

func (b *gaussianBlur) ensureBuffers(w, h int) {
	if b.source != nil && b.source.Bounds().Dx() == w && b.source.Bounds().Dy() == h {
		return
	}
	if b.source != nil {
		b.source.Deallocate()
		b.scratch.Deallocate()
	}
	b.source = ebiten.NewImage(w, h)
	b.scratch = ebiten.NewImage(w, h)
}
