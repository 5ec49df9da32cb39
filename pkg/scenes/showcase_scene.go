package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/fab"
	"github.com/gonewx/fab/pkg/game"
	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 遮罩偏好在配置未提供对应样式时使用的默认值
var DefaultOverlayColor = config.NewHexColor(0, 0, 0, 0x80)

const DefaultOverlayBlur = 6.0

// 列表布局
const (
	listTop       = 72.0
	listRowHeight = 48.0
	listRowGap    = 8.0
	listMarginX   = 24.0
	listRows      = 8
)

var (
	showcaseBackground = color.RGBA{0xFE, 0xF7, 0xFF, 0xFF}
	rowBackground      = color.RGBA{0xF3, 0xED, 0xF7, 0xFF}
	titleColor         = color.RGBA{0x1D, 0x1B, 0x20, 0xFF}
	bodyColor          = color.RGBA{0x49, 0x45, 0x4F, 0xFF}
	deleteBackground   = color.RGBA{0xF9, 0xDE, 0xDC, 0xFF}
	deleteForeground   = color.RGBA{0x8C, 0x1D, 0x18, 0xFF}
)

// showcaseAction 演示页的一个动作按钮
type showcaseAction struct {
	name  string
	glyph utils.Glyph
}

var showcaseActions = []showcaseAction{
	{"Edit", utils.GlyphEdit},
	{"Share", utils.GlyphShare},
	{"Details", utils.GlyphAdd},
	{"Delete", utils.GlyphDelete},
}

// showcaseKeys 演示页响应的按键
var showcaseKeys = []ebiten.Key{ebiten.KeyF, ebiten.KeyU, ebiten.KeyL, ebiten.KeyO, ebiten.KeySpace}

// ShowcaseScene 演示页：内容列表，右下角挂载可展开浮动按钮
//
// 按键：F/U/L 切换展开方式，O 循环切换遮罩，Space 展开/收起。
// 展开方式和遮罩选择保存在偏好设置中，切换时重建菜单。
type ShowcaseScene struct {
	sceneManager *game.SceneManager
	preferences  *game.PreferencesManager
	baseConfig   *config.FabConfig

	widget        *fab.Widget
	width, height float64

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace

	status   string
	disposed bool
}

var (
	_ game.HeroSource = (*ShowcaseScene)(nil)
	_ game.Disposable = (*ShowcaseScene)(nil)
	_ game.Saveable   = (*ShowcaseScene)(nil)
)

// NewShowcaseScene 创建演示页
//
// 参数：
//   - sm: 场景管理器，点击 Details 时加载详情页
//   - prefs: 偏好设置
//   - cfg: 基础菜单配置，nil 使用默认配置
//   - width, height: 逻辑屏幕尺寸
func NewShowcaseScene(sm *game.SceneManager, prefs *game.PreferencesManager, cfg *config.FabConfig, width, height float64) (*ShowcaseScene, error) {
	if cfg == nil {
		cfg = config.DefaultFabConfig()
	}
	if prefs == nil {
		prefs = game.NewPreferencesManager(nil)
	}

	s := &ShowcaseScene{
		sceneManager: sm,
		preferences:  prefs,
		baseConfig:   cfg.Clone(),
		width:        width,
		height:       height,
	}

	var err error
	if s.titleFace, err = utils.LoadDefaultFace(22); err != nil {
		log.Printf("[ShowcaseScene] 警告: 标题字体加载失败: %v", err)
	}
	if s.bodyFace, err = utils.LoadDefaultFace(16); err != nil {
		log.Printf("[ShowcaseScene] 警告: 正文字体加载失败: %v", err)
	}

	if last := prefs.GetPreferences().LastAction; last != "" {
		s.status = fmt.Sprintf("Last action: %s", last)
	}

	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// WidgetConfig 把偏好设置叠加到基础配置上
func (s *ShowcaseScene) WidgetConfig() *config.FabConfig {
	cfg := s.baseConfig.Clone()
	prefs := s.preferences.GetPreferences()
	cfg.Type = prefs.LayoutType

	base := s.baseConfig.OverlayStyle
	switch prefs.Overlay {
	case game.OverlayChoiceColor:
		if base == nil || base.Mode() != config.OverlayColor {
			cfg.OverlayStyle = config.NewColorOverlay(DefaultOverlayColor)
		}
	case game.OverlayChoiceBlur:
		if base == nil || base.Mode() != config.OverlayBlur {
			cfg.OverlayStyle = config.NewBlurOverlay(DefaultOverlayBlur)
		}
	default:
		cfg.OverlayStyle = nil
	}
	return cfg
}

// rebuild 按当前偏好设置重新挂载菜单
// 新菜单从配置的初始状态开始
func (s *ShowcaseScene) rebuild() error {
	widget, err := fab.NewWidget(fab.Options{
		Config:       s.WidgetConfig(),
		Children:     s.actionSpecs(),
		Callbacks:    s.callbacks(),
		ScreenWidth:  s.width,
		ScreenHeight: s.height,
	})
	if err != nil {
		return fmt.Errorf("failed to build fab widget: %w", err)
	}

	if s.widget != nil {
		s.widget.Dispose()
	}
	s.widget = widget
	log.Printf("[ShowcaseScene] 菜单已重建: %s", widget)
	return nil
}

func (s *ShowcaseScene) actionSpecs() []fab.ActionSpec {
	specs := make([]fab.ActionSpec, 0, len(showcaseActions))
	for _, action := range showcaseActions {
		name := action.name
		spec := fab.ActionSpec{
			Glyph:     action.glyph,
			Label:     name,
			OnPressed: func() { s.onAction(name) },
		}
		if name == "Delete" {
			fg, bg := deleteForeground, deleteBackground
			spec.Foreground = &fg
			spec.Background = &bg
		}
		specs = append(specs, spec)
	}
	return specs
}

func (s *ShowcaseScene) callbacks() fab.Callbacks {
	return fab.Callbacks{
		OnOpen:     func() { log.Printf("[ShowcaseScene] onOpen") },
		AfterOpen:  func() { log.Printf("[ShowcaseScene] afterOpen") },
		OnClose:    func() { log.Printf("[ShowcaseScene] onClose") },
		AfterClose: func() { log.Printf("[ShowcaseScene] afterClose") },
	}
}

// onAction 动作按钮回调
func (s *ShowcaseScene) onAction(name string) {
	log.Printf("[ShowcaseScene] 动作: %s", name)
	s.status = fmt.Sprintf("Last action: %s", name)
	s.preferences.SetLastAction(name)
	s.savePreferences()

	if name == "Details" && s.sceneManager != nil {
		s.sceneManager.LoadScene(SceneDetail)
	}
}

// HandleKey 处理一次按键，返回是否被消费
func (s *ShowcaseScene) HandleKey(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyF:
		s.setLayoutType(layout.TypeFan)
	case ebiten.KeyU:
		s.setLayoutType(layout.TypeUp)
	case ebiten.KeyL:
		s.setLayoutType(layout.TypeLeft)
	case ebiten.KeyO:
		next := s.preferences.GetPreferences().Overlay.Next()
		s.preferences.SetOverlay(next)
		s.savePreferences()
		s.rebuildOrLog()
		s.status = fmt.Sprintf("Overlay: %s", next)
	case ebiten.KeySpace:
		s.widget.Toggle()
	default:
		return false
	}
	return true
}

func (s *ShowcaseScene) setLayoutType(t layout.Type) {
	if s.preferences.GetPreferences().LayoutType == t {
		return
	}
	s.preferences.SetLayoutType(t)
	s.savePreferences()
	s.rebuildOrLog()
	s.status = fmt.Sprintf("Layout: %s", t)
}

func (s *ShowcaseScene) rebuildOrLog() {
	if err := s.rebuild(); err != nil {
		log.Printf("[ShowcaseScene] 错误: %v", err)
	}
}

func (s *ShowcaseScene) savePreferences() {
	if err := s.preferences.Save(); err != nil {
		log.Printf("[ShowcaseScene] 警告: 偏好设置保存失败: %v", err)
	}
}

// Update 处理按键并更新菜单
func (s *ShowcaseScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	for _, key := range showcaseKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.HandleKey(key)
		}
	}
	s.widget.Update(deltaTime)
}

// Draw 绘制列表和菜单
func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(showcaseBackground)

	s.drawText(screen, "Expandable FAB", s.titleFace, listMarginX, 24, titleColor)
	for i := 0; i < listRows; i++ {
		y := listTop + float64(i)*(listRowHeight+listRowGap)
		vector.DrawFilledRect(screen, float32(listMarginX), float32(y), float32(s.width-2*listMarginX), float32(listRowHeight), rowBackground, false)
		s.drawText(screen, fmt.Sprintf("Item %d", i+1), s.bodyFace, listMarginX+16, y+14, bodyColor)
	}

	footer := s.height - 40
	if !utils.IsMobile() {
		s.drawText(screen, "F/U/L: layout   O: overlay   Space: toggle", s.bodyFace, listMarginX, footer, bodyColor)
		footer -= 24
	}
	if s.status != "" {
		s.drawText(screen, s.status, s.bodyFace, listMarginX, footer, titleColor)
	}

	s.widget.Draw(screen)
}

func (s *ShowcaseScene) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// Widget 返回当前挂载的菜单
func (s *ShowcaseScene) Widget() *fab.Widget {
	return s.widget
}

// Status 返回状态栏文字
func (s *ShowcaseScene) Status() string {
	return s.status
}

// Heroes 实现 game.HeroSource
func (s *ShowcaseScene) Heroes() []game.Hero {
	if s.disposed {
		return nil
	}
	return s.widget.Heroes()
}

// SetHeroHidden 实现 game.HeroSource
func (s *ShowcaseScene) SetHeroHidden(tag string, hidden bool) {
	s.widget.SetHeroHidden(tag, hidden)
}

// Dispose 卸载菜单
func (s *ShowcaseScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.widget.Dispose()
}

// SaveOnExit 退出时保存偏好设置
func (s *ShowcaseScene) SaveOnExit() bool {
	if err := s.preferences.Save(); err != nil {
		log.Printf("[ShowcaseScene] 退出保存失败: %v", err)
		return false
	}
	return true
}
