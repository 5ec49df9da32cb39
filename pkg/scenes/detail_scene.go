package scenes

import (
	"image/color"
	"log"

	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/game"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 详情页头部
const (
	detailHeroSize   = 96.0
	detailHeroCenter = 140.0
	detailHeaderH    = 220.0
)

// DetailScene 详情页
//
// 头部圆形与菜单按钮共享过渡标识，切换时从按钮位置飞入。
// 点击任意位置或按 Esc 返回上一场景。
type DetailScene struct {
	sceneManager *game.SceneManager
	back         Scene

	heroTag    string
	heroHidden bool
	heroImage  *ebiten.Image
	glyph      utils.Glyph
	foreground color.RGBA
	background color.RGBA

	width, height float64
	titleFace     *text.GoTextFace
	bodyFace      *text.GoTextFace
	tracker       utils.TapTracker
}

var _ game.HeroSource = (*DetailScene)(nil)

// HeroTagFor 返回详情页使用的过渡标识
// 点击 Details 时菜单处于展开状态，可见的是关闭按钮，因此优先使用关闭按钮的标识
func HeroTagFor(cfg *config.FabConfig) string {
	switch {
	case cfg == nil:
		return DefaultHeroTag
	case cfg.CloseButtonHeroTag != "":
		return cfg.CloseButtonHeroTag
	case cfg.OpenButtonHeroTag != "":
		return cfg.OpenButtonHeroTag
	default:
		return DefaultHeroTag
	}
}

// NewDetailScene 创建详情页
//
// 参数：
//   - back: 返回目标场景（通常是演示页），保持存活
func NewDetailScene(sm *game.SceneManager, back Scene, cfg *config.FabConfig, width, height float64) *DetailScene {
	if cfg == nil {
		cfg = config.DefaultFabConfig()
	}
	s := &DetailScene{
		sceneManager: sm,
		back:         back,
		heroTag:      HeroTagFor(cfg),
		glyph:        cfg.CloseButtonStyle.Child,
		foreground:   cfg.CloseButtonStyle.ForegroundColor.RGBA,
		background:   cfg.CloseButtonStyle.BackgroundColor.RGBA,
		width:        width,
		height:       height,
	}

	var err error
	if s.titleFace, err = utils.LoadDefaultFace(28); err != nil {
		log.Printf("[DetailScene] 警告: 字体加载失败: %v", err)
	}
	s.bodyFace, _ = utils.LoadDefaultFace(16)
	return s
}

// Update 点击或 Esc 返回
func (s *DetailScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.GoBack()
		return
	}
	if tapped, _, _ := s.tracker.PollTap(); tapped {
		s.GoBack()
	}
}

// GoBack 切换回上一场景
func (s *DetailScene) GoBack() {
	if s.back == nil || s.sceneManager == nil {
		return
	}
	log.Printf("[DetailScene] 返回")
	s.sceneManager.SwitchTo(s.back)
}

// Draw 绘制头部和说明文字
func (s *DetailScene) Draw(screen *ebiten.Image) {
	screen.Fill(showcaseBackground)
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), detailHeaderH, rowBackground, false)

	if !s.heroHidden {
		s.drawHero(screen, s.width/2, detailHeroCenter, detailHeroSize)
	}

	s.drawCentered(screen, "Details", s.titleFace, detailHeaderH+40, titleColor)
	s.drawCentered(screen, "Tap anywhere or press Esc to go back", s.bodyFace, detailHeaderH+90, bodyColor)
}

func (s *DetailScene) drawHero(dst *ebiten.Image, cx, cy, size float64) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(size/2), s.background, true)
	utils.DrawGlyph(dst, s.glyph, cx, cy, size*0.3, 0, s.foreground)
}

func (s *DetailScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.width/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}

// HeroTag 返回头部圆形的过渡标识
func (s *DetailScene) HeroTag() string {
	return s.heroTag
}

// Heroes 实现 game.HeroSource
func (s *DetailScene) Heroes() []game.Hero {
	if s.heroImage == nil {
		s.heroImage = ebiten.NewImage(int(detailHeroSize), int(detailHeroSize))
		s.drawHero(s.heroImage, detailHeroSize/2, detailHeroSize/2, detailHeroSize)
	}
	return []game.Hero{{
		Tag:   s.heroTag,
		X:     s.width/2 - detailHeroSize/2,
		Y:     detailHeroCenter - detailHeroSize/2,
		Size:  detailHeroSize,
		Image: s.heroImage,
	}}
}

// SetHeroHidden 实现 game.HeroSource
func (s *DetailScene) SetHeroHidden(tag string, hidden bool) {
	if tag == s.heroTag {
		s.heroHidden = hidden
	}
}
