// Package animation 提供帧驱动的动画原语
//
// 所有动画都由宿主的帧循环推进：宿主每帧调用一次 Scheduler.Step(deltaTime)，
// Scheduler 再依次回调处于激活状态的 Ticker。整个包是单线程的，
// 不持有锁，所有回调都在帧回调上下文中执行。
//
// 核心类型：
//   - Scheduler: 一组 Ticker 的时钟源（通常每个场景一个）
//   - Ticker: 每帧回调一次的计时器，是动画时钟资源的最小单位
//   - ProgressDriver: 在 [0, 1] 之间驱动进度值，支持中途反向
//   - Completion: 一次动画运行结束时恰好解决一次的 future
package animation

// Scheduler 动画时钟调度器
// 持有所有已创建的 Ticker，每帧推进处于激活状态的 Ticker
type Scheduler struct {
	tickers []*Ticker
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tickers: make([]*Ticker, 0),
	}
}

// NewTicker 创建并注册一个 Ticker（初始为停止状态）
// 返回的 Ticker 在 Dispose 之前一直占用调度器中的一个槽位
func (s *Scheduler) NewTicker(callback func(deltaTime float64)) *Ticker {
	t := &Ticker{
		scheduler: s,
		callback:  callback,
	}
	s.tickers = append(s.tickers, t)
	return t
}

// Step 推进所有激活的 Ticker
// deltaTime 为距上一帧的时间（秒）
func (s *Scheduler) Step(deltaTime float64) {
	if len(s.tickers) == 0 {
		return
	}

	// 拷贝一份，回调中可能创建或释放 Ticker
	snapshot := make([]*Ticker, len(s.tickers))
	copy(snapshot, s.tickers)

	for _, t := range snapshot {
		if t.active && !t.disposed && t.callback != nil {
			t.callback(deltaTime)
		}
	}
}

// TickerCount 返回已注册（未释放）的 Ticker 数量
func (s *Scheduler) TickerCount() int {
	return len(s.tickers)
}

// HasActiveTickers 是否有正在运行的 Ticker
func (s *Scheduler) HasActiveTickers() bool {
	for _, t := range s.tickers {
		if t.active {
			return true
		}
	}
	return false
}

func (s *Scheduler) remove(target *Ticker) {
	for i, t := range s.tickers {
		if t == target {
			s.tickers = append(s.tickers[:i], s.tickers[i+1:]...)
			return
		}
	}
}

// Ticker 每帧回调一次的计时器
type Ticker struct {
	scheduler *Scheduler
	callback  func(deltaTime float64)
	active    bool
	disposed  bool
}

// Start 激活 Ticker，下一次 Step 开始回调
func (t *Ticker) Start() {
	if t.disposed {
		return
	}
	t.active = true
}

// Stop 停止回调，但仍保留在调度器中
func (t *Ticker) Stop() {
	t.active = false
}

// IsActive 是否处于激活状态
func (t *Ticker) IsActive() bool {
	return t.active
}

// Dispose 释放 Ticker，从调度器中移除
// 无论当前是否激活都会释放，重复调用无副作用
func (t *Ticker) Dispose() {
	if t.disposed {
		return
	}
	t.active = false
	t.disposed = true
	t.scheduler.remove(t)
}

// IsDisposed 是否已释放
func (t *Ticker) IsDisposed() bool {
	return t.disposed
}
