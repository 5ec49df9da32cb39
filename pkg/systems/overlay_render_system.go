package systems

import (
	"image"

	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// OverlayRenderSystem 遮罩渲染系统
//
// 职责：
//   - 颜色模式：按当前透明度铺满遮罩颜色
//   - 模糊模式：对已绘制的内容做高斯模糊，强度低于 BlurThreshold 时不合成
type OverlayRenderSystem struct {
	entityManager *ecs.EntityManager
	blur          gaussianBlur

	// blurPasses 已执行的模糊合成次数（调试统计）
	blurPasses int
}

// NewOverlayRenderSystem 创建遮罩渲染系统
func NewOverlayRenderSystem(em *ecs.EntityManager) *OverlayRenderSystem {
	return &OverlayRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有遮罩
// 应在内容之后、按钮之前调用
func (s *OverlayRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.OverlayComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		overlay, _ := ecs.GetComponent[*components.OverlayComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		switch overlay.Mode {
		case config.OverlayBlur:
			if !ShouldCompositeBlur(overlay.Sigma) {
				continue
			}
			region := screen.SubImage(image.Rect(
				int(pos.X), int(pos.Y),
				int(pos.X+overlay.Width), int(pos.Y+overlay.Height),
			)).(*ebiten.Image)
			if region.Bounds().Empty() {
				continue
			}
			if s.blur.apply(region, overlay.Sigma) {
				s.blurPasses++
			}
		default:
			if overlay.Alpha < minOpacity {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(pos.X), float32(pos.Y),
				float32(overlay.Width), float32(overlay.Height),
				utils.ScaleAlpha(overlay.Color, overlay.Alpha), false)
		}
	}
}

// BlurPasses 返回已执行的模糊合成次数
func (s *OverlayRenderSystem) BlurPasses() int {
	return s.blurPasses
}

// ShouldCompositeBlur 模糊强度是否值得合成
func ShouldCompositeBlur(sigma float64) bool {
	return sigma >= BlurThreshold
}
