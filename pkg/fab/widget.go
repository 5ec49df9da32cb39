package fab

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/fab/pkg/animation"
	"github.com/gonewx/fab/pkg/components"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/ecs"
	"github.com/gonewx/fab/pkg/entities"
	"github.com/gonewx/fab/pkg/game"
	"github.com/gonewx/fab/pkg/systems"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DefaultLabelSize 动作按钮标签默认字号
const DefaultLabelSize = 14.0

// ActionSpec 动作按钮：图标、可选标签、配色和点击回调
type ActionSpec = entities.ActionButtonSpec

// Options 挂载参数
type Options struct {
	// Config 菜单配置，nil 使用默认配置
	Config *config.FabConfig
	// Children 动作按钮，必须非空
	Children []ActionSpec
	// Callbacks 展开/收起回调
	Callbacks Callbacks

	// ScreenWidth, ScreenHeight 宿主区域尺寸，菜单锚定在右下角
	ScreenWidth  float64
	ScreenHeight float64

	// LabelFace 标签字体，nil 使用内置 Go Regular
	LabelFace *text.GoTextFace
	// Scheduler 动画时钟，nil 时 Widget 自带一个并在 Update 中推进
	Scheduler *animation.Scheduler
}

// Widget 挂载在 ebiten 场景中的可展开浮动按钮
//
// 每帧调用 Update 和 Draw；卸载时调用 Dispose 释放动画时钟和实体。
type Widget struct {
	controller    *Controller
	scheduler     *animation.Scheduler
	ownsScheduler bool

	entityManager *ecs.EntityManager
	entities      entities.FabEntities

	clickSystem         *systems.ClickSystem
	actionSystem        *systems.ActionButtonSystem
	toggleSystem        *systems.ToggleButtonSystem
	overlaySystem       *systems.OverlaySystem
	actionRenderSystem  *systems.ActionButtonRenderSystem
	toggleRenderSystem  *systems.ToggleButtonRenderSystem
	overlayRenderSystem *systems.OverlayRenderSystem

	width, height float64
	disposed      bool
}

var (
	_ Handle          = (*Widget)(nil)
	_ game.HeroSource = (*Widget)(nil)
)

// NewWidget 挂载组件：创建控制器、申请动画时钟并创建实体
func NewWidget(opts Options) (*Widget, error) {
	if len(opts.Children) == 0 {
		return nil, ErrNoChildren
	}

	scheduler := opts.Scheduler
	ownsScheduler := false
	if scheduler == nil {
		scheduler = animation.NewScheduler()
		ownsScheduler = true
	}

	controller, err := NewController(scheduler, opts.Config, len(opts.Children), opts.Callbacks)
	if err != nil {
		return nil, err
	}

	labelFace := opts.LabelFace
	if labelFace == nil {
		labelFace, err = utils.LoadDefaultFace(DefaultLabelSize)
		if err != nil {
			// 标签不是必需的，字体加载失败时只绘制图标
			log.Printf("[Fab] 警告: 标签字体加载失败: %v", err)
			labelFace = nil
		}
	}

	em := ecs.NewEntityManager()
	w := &Widget{
		controller:          controller,
		scheduler:           scheduler,
		ownsScheduler:       ownsScheduler,
		entityManager:       em,
		clickSystem:         systems.NewClickSystem(em),
		actionSystem:        systems.NewActionButtonSystem(em),
		toggleSystem:        systems.NewToggleButtonSystem(em),
		overlaySystem:       systems.NewOverlaySystem(em),
		actionRenderSystem:  systems.NewActionButtonRenderSystem(em, labelFace),
		toggleRenderSystem:  systems.NewToggleButtonRenderSystem(em),
		overlayRenderSystem: systems.NewOverlayRenderSystem(em),
		width:               opts.ScreenWidth,
		height:              opts.ScreenHeight,
	}
	w.entities = entities.NewFabMenu(em, controller.Config(), opts.Children, w.Toggle, opts.ScreenWidth, opts.ScreenHeight)

	// 立即计算一次布局，使挂载后第一帧之前即可命中测试和取快照
	w.layout()
	return w, nil
}

// Update 处理输入并推进动画
func (w *Widget) Update(deltaTime float64) {
	if w.disposed {
		return
	}

	// 命中测试使用上一帧绘制的位置
	w.clickSystem.Update(deltaTime)
	w.Advance(deltaTime)
}

// Advance 推进动画并重新布局，不读取输入
// 使用外部时钟时只重新布局，时钟由宿主推进
func (w *Widget) Advance(deltaTime float64) {
	if w.disposed {
		return
	}
	if w.ownsScheduler {
		w.scheduler.Step(deltaTime)
	}
	w.layout()
}

// HandleTap 在 (x, y) 处分发一次点击，返回是否被菜单消费
// 供自行处理输入的宿主使用（如终端或测试）
func (w *Widget) HandleTap(x, y float64) bool {
	if w.disposed {
		return false
	}
	consumed := w.clickSystem.HandleTap(x, y)
	w.layout()
	return consumed
}

// layout 把控制器状态写入菜单根组件，并运行布局系统
func (w *Widget) layout() {
	menu, ok := ecs.GetComponent[*components.FabMenuComponent](w.entityManager, w.entities.Menu)
	if !ok {
		return
	}

	margin := w.controller.Config().Margin
	menu.AnchorRight = w.width - margin
	menu.AnchorBottom = w.height - margin
	menu.Progress = w.controller.Progress()
	menu.OverlayProgress = w.controller.OverlayProgress()
	menu.Open = w.controller.IsOpen()

	w.overlaySystem.Update(0)
	w.toggleSystem.Update(0)
	w.actionSystem.Update(0)
}

// Draw 绘制菜单
// 顺序：遮罩、关闭按钮、动作按钮、开启按钮
func (w *Widget) Draw(screen *ebiten.Image) {
	if w.disposed {
		return
	}
	w.overlayRenderSystem.Draw(screen)
	w.toggleRenderSystem.DrawRole(screen, components.ToggleClose)
	w.actionRenderSystem.Draw(screen)
	w.toggleRenderSystem.DrawRole(screen, components.ToggleOpen)
}

// SetBounds 更新宿主区域尺寸（窗口缩放时调用）
func (w *Widget) SetBounds(width, height float64) {
	w.width, w.height = width, height
	if overlay, ok := ecs.GetComponent[*components.OverlayComponent](w.entityManager, w.entities.Overlay); ok {
		overlay.Width = width
		overlay.Height = height
	}
	w.layout()
}

// Toggle 切换展开/收起
func (w *Widget) Toggle() {
	w.controller.Toggle()
}

// IsOpen 菜单是否处于展开状态
func (w *Widget) IsOpen() bool {
	return w.controller.IsOpen()
}

// Controller 返回底层控制器
func (w *Widget) Controller() *Controller {
	return w.controller
}

// Heroes 返回带过渡标识且可见的开启/关闭按钮快照
func (w *Widget) Heroes() []game.Hero {
	heroes := make([]game.Hero, 0, 2)
	for _, id := range []ecs.EntityID{w.entities.OpenButton, w.entities.CloseButton} {
		button, ok := ecs.GetComponent[*components.ToggleButtonComponent](w.entityManager, id)
		if !ok || button.HeroTag == "" || button.Opacity <= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.entityManager, id)

		size := button.Diameter * button.Scale
		pixels := int(math.Ceil(size))
		if pixels <= 0 {
			continue
		}
		img := ebiten.NewImage(pixels, pixels)
		w.toggleRenderSystem.DrawButtonAt(img, id, float64(pixels)/2, float64(pixels)/2)

		heroes = append(heroes, game.Hero{
			Tag:   button.HeroTag,
			X:     pos.X - size/2,
			Y:     pos.Y - size/2,
			Size:  size,
			Image: img,
		})
	}
	return heroes
}

// SetHeroHidden 隐藏/恢复指定过渡标识的按钮
func (w *Widget) SetHeroHidden(tag string, hidden bool) {
	for _, id := range []ecs.EntityID{w.entities.OpenButton, w.entities.CloseButton} {
		if button, ok := ecs.GetComponent[*components.ToggleButtonComponent](w.entityManager, id); ok && button.HeroTag == tag {
			button.Hidden = hidden
		}
	}
}

// Dispose 卸载：释放动画时钟并销毁实体，可重复调用
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.controller.Dispose()

	for _, id := range w.entities.All() {
		w.entityManager.DestroyEntity(id)
	}
	w.entityManager.RemoveMarkedEntities()
}

// IsDisposed 是否已卸载
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// String 用于日志
func (w *Widget) String() string {
	return fmt.Sprintf("fab.Widget{state=%s, progress=%.2f}", w.controller.State(), w.controller.Progress())
}
