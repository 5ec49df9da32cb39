package animation

import (
	"fmt"
	"time"

	"github.com/gonewx/fab/pkg/utils"
)

// Status 进度驱动器状态
//
// 状态机：
//
//	              Forward()
//	Dismissed ──────────────► Forward ──► Completed
//	    ▲                        │  ▲          │
//	    │                Reverse()  Forward()  │ Reverse()
//	    │                        ▼  │          ▼
//	    └──────────────────────── Reverse ◄────┘
//
// Dismissed 停在 0，Completed 停在 1，Forward/Reverse 为运行中。
type Status int

const (
	// StatusDismissed 停止在 0
	StatusDismissed Status = iota
	// StatusForward 正在向 1 运行
	StatusForward
	// StatusCompleted 停止在 1
	StatusCompleted
	// StatusReverse 正在向 0 运行
	StatusReverse
)

// String 返回状态名称
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusCompleted:
		return "completed"
	case StatusReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ProgressDriver 进度驱动器
//
// 内部维护一个线性进度 t ∈ [0, 1]，Value() 返回经过曲线映射后的值。
// 展开（Forward）和收起（Reverse）使用不同的曲线；曲线方向在从静止开始运行时锁定，
// 直到再次静止才解锁，因此中途反向时数值从当前位置连续变化，不会跳变。
//
// 中途调用 Forward/Reverse 会从当前值重新定向，剩余时长按剩余距离等比缩放，
// 并取消上一次运行的 Completion。
type ProgressDriver struct {
	duration     time.Duration
	forwardCurve utils.EasingFunc
	reverseCurve utils.EasingFunc

	value          float64 // 线性进度
	status         Status
	curveDirection Status // StatusForward / StatusReverse；静止时为 StatusDismissed

	ticker      *Ticker
	startValue  float64
	target      float64
	elapsed     float64 // 本次运行已经过的时间（秒）
	runDuration float64 // 本次运行总时长（秒）
	pending     *Completion

	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
	disposed        bool
}

// NewProgressDriver 创建进度驱动器并从调度器申请一个 Ticker
//
// 参数：
//   - scheduler: 动画时钟
//   - duration: 从 0 到 1 完整运行的时长
//   - forwardCurve: 展开曲线，nil 表示线性
//   - reverseCurve: 收起曲线，nil 表示线性
func NewProgressDriver(scheduler *Scheduler, duration time.Duration, forwardCurve, reverseCurve utils.EasingFunc) *ProgressDriver {
	d := &ProgressDriver{
		duration:        duration,
		forwardCurve:    forwardCurve,
		reverseCurve:    reverseCurve,
		status:          StatusDismissed,
		curveDirection:  StatusDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
	d.ticker = scheduler.NewTicker(d.tick)
	return d
}

// SetValue 立即跳到指定进度（不产生动画）
// 用于根据初始状态播种；会取消正在进行的运行
func (d *ProgressDriver) SetValue(v float64) {
	if d.disposed {
		return
	}
	d.ticker.Stop()
	if d.pending != nil {
		d.pending.cancel()
		d.pending = nil
	}

	d.value = utils.Clamp01(v)
	d.curveDirection = StatusDismissed
	if d.value >= 1 {
		d.setStatus(StatusCompleted)
	} else {
		d.setStatus(StatusDismissed)
	}
	d.notifyListeners()
}

// Forward 向 1 运行
func (d *ProgressDriver) Forward() *Completion {
	return d.animateTo(1, StatusForward)
}

// Reverse 向 0 运行
func (d *ProgressDriver) Reverse() *Completion {
	return d.animateTo(0, StatusReverse)
}

func (d *ProgressDriver) animateTo(target float64, direction Status) *Completion {
	completion := newCompletion()
	if d.disposed {
		completion.cancel()
		return completion
	}

	if d.pending != nil {
		d.pending.cancel()
	}
	d.pending = completion

	d.startValue = d.value
	d.target = target
	d.elapsed = 0
	d.runDuration = d.duration.Seconds() * abs(target-d.value)

	if d.curveDirection == StatusDismissed {
		d.curveDirection = direction
	}
	d.setStatus(direction)

	if d.runDuration <= 0 {
		d.value = target
		d.notifyListeners()
		d.settle()
		return completion
	}

	d.ticker.Start()
	return completion
}

func (d *ProgressDriver) tick(deltaTime float64) {
	d.elapsed += deltaTime
	fraction := d.elapsed / d.runDuration
	if fraction >= 1 {
		fraction = 1
	}

	d.value = utils.Lerp(d.startValue, d.target, fraction)
	d.notifyListeners()

	if fraction >= 1 {
		d.settle()
	}
}

func (d *ProgressDriver) settle() {
	d.ticker.Stop()
	d.value = d.target
	d.curveDirection = StatusDismissed

	if d.target >= 1 {
		d.setStatus(StatusCompleted)
	} else {
		d.setStatus(StatusDismissed)
	}

	completion := d.pending
	d.pending = nil
	if completion != nil {
		completion.resolve()
	}
}

// Value 返回曲线映射后的进度
func (d *ProgressDriver) Value() float64 {
	t := d.value
	if t <= 0 || t >= 1 {
		return t
	}

	curve := d.forwardCurve
	if d.curveDirection == StatusReverse {
		curve = d.reverseCurve
	}
	if curve == nil {
		return t
	}
	return curve(t)
}

// LinearValue 返回未经曲线映射的线性进度
func (d *ProgressDriver) LinearValue() float64 {
	return d.value
}

// Status 返回当前状态
func (d *ProgressDriver) Status() Status {
	return d.status
}

// IsAnimating 是否正在运行
func (d *ProgressDriver) IsAnimating() bool {
	return d.status == StatusForward || d.status == StatusReverse
}

// Duration 返回完整运行时长
func (d *ProgressDriver) Duration() time.Duration {
	return d.duration
}

// AddListener 注册数值变化回调（每个动画帧触发一次）
// 返回取消注册函数
func (d *ProgressDriver) AddListener(fn func()) func() {
	id := d.nextListenerID
	d.nextListenerID++
	d.listeners[id] = fn
	return func() {
		delete(d.listeners, id)
	}
}

// AddStatusListener 注册状态变化回调
// 返回取消注册函数
func (d *ProgressDriver) AddStatusListener(fn func(Status)) func() {
	id := d.nextListenerID
	d.nextListenerID++
	d.statusListeners[id] = fn
	return func() {
		delete(d.statusListeners, id)
	}
}

func (d *ProgressDriver) setStatus(status Status) {
	if d.status == status {
		return
	}
	d.status = status
	for _, fn := range d.statusListeners {
		fn(status)
	}
}

func (d *ProgressDriver) notifyListeners() {
	for _, fn := range d.listeners {
		fn()
	}
}

// Dispose 释放动画时钟
// 无论是否正在运行都会释放；未完成的 Completion 被取消
func (d *ProgressDriver) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.ticker.Dispose()
	if d.pending != nil {
		d.pending.cancel()
		d.pending = nil
	}
	d.listeners = make(map[int]func())
	d.statusListeners = make(map[int]func(Status))
}

// IsDisposed 是否已释放
func (d *ProgressDriver) IsDisposed() bool {
	return d.disposed
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
