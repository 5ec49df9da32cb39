package animation

type completionState int

const (
	completionPending completionState = iota
	completionDone
	completionCanceled
)

// Completion 一次动画运行的结束通知
//
// 运行正常结束时解决（resolve），被反向打断时取消（cancel）。
// 两者互斥且只会发生一次；取消后 Then 注册的回调永远不会执行。
type Completion struct {
	state     completionState
	callbacks []func()
}

func newCompletion() *Completion {
	return &Completion{}
}

// Then 注册结束回调
// 如果已经解决，回调立即执行；如果已经取消，回调被丢弃
func (c *Completion) Then(fn func()) *Completion {
	if fn == nil {
		return c
	}
	switch c.state {
	case completionDone:
		fn()
	case completionPending:
		c.callbacks = append(c.callbacks, fn)
	}
	return c
}

// IsPending 是否仍在等待
func (c *Completion) IsPending() bool {
	return c.state == completionPending
}

// IsCompleted 是否已正常结束
func (c *Completion) IsCompleted() bool {
	return c.state == completionDone
}

// IsCanceled 是否已被取消
func (c *Completion) IsCanceled() bool {
	return c.state == completionCanceled
}

func (c *Completion) resolve() {
	if c.state != completionPending {
		return
	}
	c.state = completionDone
	callbacks := c.callbacks
	c.callbacks = nil
	for _, fn := range callbacks {
		fn()
	}
}

func (c *Completion) cancel() {
	if c.state != completionPending {
		return
	}
	c.state = completionCanceled
	c.callbacks = nil
}
