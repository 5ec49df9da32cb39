// Package fab 实现可展开浮动按钮（FAB）
//
// Controller 持有菜单状态和进度驱动器，不依赖渲染；
// Widget 在 ebiten 中挂载 Controller，用 ECS 实体和系统完成输入与绘制。
package fab

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/fab/pkg/animation"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/utils"
)

// ErrNoChildren 未提供任何动作按钮
var ErrNoChildren = errors.New("fab: children must not be empty")

// MenuState 菜单状态
// 展开中/收起中不单独建模，由进度驱动器的方向和当前值体现
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

// String 返回状态名称
func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Callbacks 展开/收起回调，均可为 nil
//
// OnOpen / OnClose 在状态切换时立即调用；
// AfterOpen / AfterClose 在动画停稳后调用，被中途反向打断的一次不会调用。
type Callbacks struct {
	OnOpen     func()
	AfterOpen  func()
	OnClose    func()
	AfterClose func()
}

// Handle 宿主持有的菜单句柄
type Handle interface {
	Toggle()
	IsOpen() bool
}

// Controller 菜单根控制器
type Controller struct {
	cfg        *config.FabConfig
	spec       layout.Spec
	childCount int
	callbacks  Callbacks

	state    MenuState
	progress *animation.ProgressDriver
	overlay  *animation.ProgressDriver // 未配置遮罩时为 nil

	disposed bool
}

var _ Handle = (*Controller)(nil)

// NewController 创建控制器
//
// 参数：
//   - scheduler: 动画时钟，控制器从中申请 Ticker，Dispose 时释放
//   - cfg: 配置，nil 使用默认配置；控制器持有一份副本
//   - childCount: 动作按钮数量，必须 > 0
//   - callbacks: 展开/收起回调
func NewController(scheduler *animation.Scheduler, cfg *config.FabConfig, childCount int, callbacks Callbacks) (*Controller, error) {
	if childCount <= 0 {
		return nil, ErrNoChildren
	}
	if scheduler == nil {
		return nil, errors.New("fab: scheduler must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultFabConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fab config: %w", err)
	}
	cfg = cfg.Clone()

	c := &Controller{
		cfg:        cfg,
		spec:       cfg.LayoutSpec(),
		childCount: childCount,
		callbacks:  callbacks,
		state:      MenuClosed,
		progress:   animation.NewProgressDriver(scheduler, cfg.Duration, cfg.ForwardEasing(), cfg.ReverseEasing()),
	}
	if cfg.OverlayStyle != nil {
		c.overlay = animation.NewProgressDriver(scheduler, cfg.Duration, utils.EaseInOut, utils.EaseInOut)
	}

	if cfg.InitialOpen {
		c.state = MenuOpen
		c.progress.SetValue(1)
		if c.overlay != nil {
			c.overlay.SetValue(1)
		}
	}

	log.Printf("[Fab] Controller created: type=%s, children=%d, initialOpen=%v", cfg.Type, childCount, cfg.InitialOpen)
	return c, nil
}

// Toggle 切换展开/收起
// 动画进行中调用会从当前值反向，被打断方向的 After 回调不会触发
func (c *Controller) Toggle() {
	if c.disposed {
		return
	}

	if c.state == MenuClosed {
		c.state = MenuOpen
		if c.callbacks.OnOpen != nil {
			c.callbacks.OnOpen()
		}
		if c.overlay != nil {
			c.overlay.Forward()
		}
		c.progress.Forward().Then(func() {
			if c.callbacks.AfterOpen != nil {
				c.callbacks.AfterOpen()
			}
		})
		return
	}

	c.state = MenuClosed
	if c.callbacks.OnClose != nil {
		c.callbacks.OnClose()
	}
	if c.overlay != nil {
		c.overlay.Reverse()
	}
	c.progress.Reverse().Then(func() {
		if c.callbacks.AfterClose != nil {
			c.callbacks.AfterClose()
		}
	})
}

// IsOpen 菜单是否处于展开状态（动画可能仍在进行）
func (c *Controller) IsOpen() bool {
	return c.state == MenuOpen
}

// State 返回菜单状态
func (c *Controller) State() MenuState {
	return c.state
}

// Progress 返回曲线映射后的展开进度
func (c *Controller) Progress() float64 {
	return c.progress.Value()
}

// OverlayProgress 返回遮罩动画进度，未配置遮罩时为 0
func (c *Controller) OverlayProgress() float64 {
	if c.overlay == nil {
		return 0
	}
	return c.overlay.Value()
}

// IsAnimating 是否有动画正在进行
func (c *Controller) IsAnimating() bool {
	if c.overlay != nil && c.overlay.IsAnimating() {
		return true
	}
	return c.progress.IsAnimating()
}

// AddListener 注册进度变化监听器，返回注销函数
func (c *Controller) AddListener(fn func()) func() {
	return c.progress.AddListener(fn)
}

// Config 返回控制器持有的配置（只读）
func (c *Controller) Config() *config.FabConfig {
	return c.cfg
}

// LayoutSpec 返回布局参数
func (c *Controller) LayoutSpec() layout.Spec {
	return c.spec
}

// ChildCount 返回动作按钮数量
func (c *Controller) ChildCount() int {
	return c.childCount
}

// ActionVisual 计算第 index 个动作按钮的视觉状态
func (c *Controller) ActionVisual(index int) layout.ActionVisual {
	return layout.VisualizeAction(index, c.childCount, c.spec, c.Progress())
}

// OpenButtonVisual 计算开启按钮的视觉状态
func (c *Controller) OpenButtonVisual() layout.ToggleVisual {
	return layout.VisualizeOpenButton(c.Progress(), c.cfg.OpenButtonEndScale(), c.IsOpen())
}

// CloseButtonVisual 计算关闭按钮的视觉状态
func (c *Controller) CloseButtonVisual() layout.ToggleVisual {
	return layout.VisualizeCloseButton(c.Progress(), c.IsOpen())
}

// Dispose 释放动画时钟，无论动画是否在进行
// 未完成的 After 回调不会再触发；可重复调用
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.progress.Dispose()
	if c.overlay != nil {
		c.overlay.Dispose()
	}
	log.Printf("[Fab] Controller disposed")
}

// IsDisposed 是否已释放
func (c *Controller) IsDisposed() bool {
	return c.disposed
}
