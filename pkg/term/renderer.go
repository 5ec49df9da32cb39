// Package term 在终端中渲染可展开浮动按钮
//
// 与 ebiten 版本共用同一个 fab.Controller，只替换绘制和输入：
// 布局仍以像素计算，再按固定的字符格尺寸映射到终端单元格。
package term

import (
	"image/color"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/entities"
	"github.com/gonewx/fab/pkg/fab"
	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/utils"
)

// 每个终端单元格对应的像素尺寸
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// 透明度阈值：低于 hiddenOpacity 不绘制，低于 dimOpacity 以暗色绘制
const (
	hiddenOpacity = 0.1
	dimOpacity    = 0.6
)

// Action 终端菜单的动作按钮
type Action struct {
	Label     string
	Glyph     utils.Glyph
	OnPressed func()
}

// hitKind 命中区域类型，数值越大优先级越高
type hitKind int

const (
	hitOverlay hitKind = iota
	hitAction
	hitClose
	hitOpen
)

// hitArea 上一次绘制记录的可点击区域（单元格坐标，闭区间）
type hitArea struct {
	kind           hitKind
	index          int
	x0, y0, x1, y1 int
}

func (h hitArea) contains(x, y int) bool {
	return x >= h.x0 && x <= h.x1 && y >= h.y0 && y <= h.y1
}

var glyphRunes = map[utils.Glyph]rune{
	utils.GlyphMenu:   '≡',
	utils.GlyphClose:  '×',
	utils.GlyphAdd:    '+',
	utils.GlyphEdit:   '✎',
	utils.GlyphShare:  '↗',
	utils.GlyphDelete: '⌫',
	utils.GlyphNone:   ' ',
}

var actionStyle = tcell.StyleDefault.
	Foreground(toTcell(entities.DefaultActionForeground)).
	Background(toTcell(entities.DefaultActionBackground))

// GlyphRune 返回图标对应的字符
func GlyphRune(g utils.Glyph) rune {
	if r, ok := glyphRunes[g]; ok {
		return r
	}
	return '?'
}

// Renderer 把控制器状态绘制到 tcell 屏幕
type Renderer struct {
	screen     tcell.Screen
	controller *fab.Controller
	actions    []Action

	hits   []hitArea
	status string

	// 鼠标左键上一事件是否按下，只在按下沿触发点击
	buttonDown bool
}

// NewRenderer 创建终端渲染器
// actions 数量必须与控制器的子按钮数量一致
func NewRenderer(screen tcell.Screen, controller *fab.Controller, actions []Action) *Renderer {
	if len(actions) != controller.ChildCount() {
		log.Printf("[Term] 警告: %d 个动作按钮，控制器期望 %d 个", len(actions), controller.ChildCount())
	}
	return &Renderer{
		screen:     screen,
		controller: controller,
		actions:    actions,
	}
}

// SetStatus 设置左上角状态文字
func (r *Renderer) SetStatus(status string) {
	r.status = status
}

// anchor 返回菜单右下角的像素坐标
func (r *Renderer) anchor() (float64, float64) {
	cols, rows := r.screen.Size()
	margin := r.controller.Config().Margin
	return float64(cols)*CellWidth - margin, float64(rows)*CellHeight - margin
}

// toCell 像素坐标转单元格坐标
func toCell(x, y float64) (int, int) {
	return int(x / CellWidth), int(y / CellHeight)
}

// Draw 绘制一帧
// 顺序：遮罩、关闭按钮、动作按钮、开启按钮
func (r *Renderer) Draw() {
	r.screen.Clear()
	r.hits = r.hits[:0]

	cfg := r.controller.Config()
	anchorRight, anchorBottom := r.anchor()
	toggleX, toggleY := toCell(anchorRight-cfg.CollapsedFabSize.Diameter()/2, anchorBottom-cfg.CollapsedFabSize.Diameter()/2)

	r.drawOverlay(cfg)
	r.drawText(0, 0, r.status, tcell.StyleDefault.Bold(true))

	closeVisual := r.controller.CloseButtonVisual()
	closeStyle := cfg.CloseButtonStyle
	r.drawButton(toggleX, toggleY, GlyphRune(closeStyle.Child), closeVisual.Opacity,
		buttonStyle(closeStyle.ForegroundColor, closeStyle.BackgroundColor))
	if closeVisual.Interactive {
		r.addHit(hitClose, 0, toggleX, toggleY)
	}

	spec := r.controller.LayoutSpec()
	actionDiameter := cfg.ActionFabSize.Diameter()
	for i, action := range r.actions {
		visual := r.controller.ActionVisual(i)
		right, bottom := layout.ToScreen(anchorRight, anchorBottom, visual.Placement.Offset, spec.ChildrenOffset)
		x, y := toCell(right-actionDiameter/2, bottom-actionDiameter/2)

		r.drawButton(x, y, GlyphRune(action.Glyph), visual.Opacity, actionStyle)
		if visual.Opacity >= hiddenOpacity && action.Label != "" {
			r.drawText(x-2-len([]rune(action.Label)), y, action.Label, dim(tcell.StyleDefault, visual.Opacity))
		}
		if r.controller.IsOpen() && visual.Opacity > 0 {
			r.addHit(hitAction, i, x, y)
		}
	}

	openVisual := r.controller.OpenButtonVisual()
	r.drawButton(toggleX, toggleY, GlyphRune(cfg.Child), openVisual.Opacity,
		buttonStyle(cfg.ForegroundColor, cfg.BackgroundColor))
	if openVisual.Interactive {
		r.addHit(hitOpen, 0, toggleX, toggleY)
	}

	r.screen.Show()
}

// drawOverlay 绘制遮罩
// 颜色遮罩按进度混合背景色；终端无法模糊，模糊遮罩以网点代替
func (r *Renderer) drawOverlay(cfg *config.FabConfig) {
	style := cfg.OverlayStyle
	p := r.controller.OverlayProgress()
	if style == nil {
		return
	}
	if r.controller.IsOpen() {
		cols, rows := r.screen.Size()
		r.hits = append(r.hits, hitArea{kind: hitOverlay, x0: 0, y0: 0, x1: cols - 1, y1: rows - 1})
	}
	if p < hiddenOpacity {
		return
	}

	cols, rows := r.screen.Size()
	var cell rune
	var cellStyle tcell.Style
	switch style.Mode() {
	case config.OverlayBlur:
		if style.Blur() <= 0 {
			return
		}
		cell = '░'
		cellStyle = dim(tcell.StyleDefault.Foreground(tcell.ColorGray), p)
	default:
		c := utils.ScaleAlpha(style.Color().RGBA, p)
		cell = ' '
		cellStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, cell, nil, cellStyle)
		}
	}
}

// drawButton 以 " ☰ " 形式绘制三格宽的按钮
func (r *Renderer) drawButton(x, y int, glyph rune, opacity float64, style tcell.Style) {
	if opacity < hiddenOpacity {
		return
	}
	style = dim(style, opacity)
	r.screen.SetContent(x-1, y, ' ', nil, style)
	r.screen.SetContent(x, y, glyph, nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

func (r *Renderer) drawText(x, y int, str string, style tcell.Style) {
	for _, ch := range str {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) addHit(kind hitKind, index, x, y int) {
	r.hits = append(r.hits, hitArea{kind: kind, index: index, x0: x - 1, y0: y, x1: x + 1, y1: y})
}

// HandleClick 在单元格 (x, y) 处分发一次点击，返回是否被菜单消费
// 使用上一次 Draw 记录的区域，优先级：开启按钮 > 关闭按钮 > 动作按钮 > 遮罩
func (r *Renderer) HandleClick(x, y int) bool {
	best := -1
	for i, hit := range r.hits {
		if !hit.contains(x, y) {
			continue
		}
		if best < 0 || hit.kind >= r.hits[best].kind {
			best = i
		}
	}
	if best < 0 {
		return false
	}

	hit := r.hits[best]
	switch hit.kind {
	case hitAction:
		if action := r.actions[hit.index]; action.OnPressed != nil {
			action.OnPressed()
		}
	default:
		r.controller.Toggle()
	}
	return true
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			r.controller.Toggle()
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !r.buttonDown {
			x, y := ev.Position()
			r.HandleClick(x, y)
		}
		r.buttonDown = down
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// buttonStyle 由配置颜色生成单元格样式
func buttonStyle(fg, bg config.HexColor) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg.RGBA)).Background(toTcell(bg.RGBA))
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// dim 半透明时使用暗色属性
func dim(style tcell.Style, opacity float64) tcell.Style {
	if opacity < dimOpacity {
		return style.Dim(true)
	}
	return style
}
