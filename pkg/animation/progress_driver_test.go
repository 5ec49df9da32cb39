package animation

import (
	"math"
	"testing"
	"time"

	"github.com/gonewx/fab/pkg/utils"
)

const frame = 1.0 / 60.0

// runFrames 推进 n 帧
func runFrames(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Step(frame)
	}
}

// runUntilSettled 推进直到驱动器静止（最多 10 秒）
func runUntilSettled(t *testing.T, s *Scheduler, d *ProgressDriver) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if !d.IsAnimating() {
			return
		}
		s.Step(frame)
	}
	t.Fatalf("driver did not settle, status = %v, value = %v", d.Status(), d.LinearValue())
}

func newTestDriver(s *Scheduler) *ProgressDriver {
	return NewProgressDriver(s, 250*time.Millisecond, utils.FastOutSlowIn, utils.EaseOutQuad)
}

func TestProgressDriverInitialState(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	if d.Status() != StatusDismissed {
		t.Errorf("initial status = %v, want dismissed", d.Status())
	}
	if d.Value() != 0 {
		t.Errorf("initial value = %v, want 0", d.Value())
	}
	if s.TickerCount() != 1 {
		t.Errorf("driver should acquire exactly one ticker, got %d", s.TickerCount())
	}
}

func TestProgressDriverForwardCompletes(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	fired := 0
	c := d.Forward().Then(func() { fired++ })

	if d.Status() != StatusForward {
		t.Fatalf("status after Forward = %v, want forward", d.Status())
	}

	runFrames(s, 5)
	mid := d.Value()
	if mid <= 0 || mid >= 1 {
		t.Errorf("value mid-flight = %v, want in (0, 1)", mid)
	}
	if fired != 0 {
		t.Error("completion fired before settling")
	}

	runUntilSettled(t, s, d)

	if d.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", d.Status())
	}
	if d.Value() != 1 {
		t.Errorf("value = %v, want 1", d.Value())
	}
	if fired != 1 || !c.IsCompleted() {
		t.Errorf("completion fired %d times (completed=%v), want once", fired, c.IsCompleted())
	}

	// 静止后继续推进不再回调
	runFrames(s, 10)
	if fired != 1 {
		t.Errorf("completion fired again after settling: %d", fired)
	}
}

func TestProgressDriverDurationRespected(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)
	d.Forward()

	// 250ms ≈ 15 帧；第 13 帧时仍在运行
	runFrames(s, 13)
	if !d.IsAnimating() {
		t.Fatal("driver settled before its duration elapsed")
	}
	runFrames(s, 3)
	if d.IsAnimating() {
		t.Error("driver still animating after its duration elapsed")
	}
}

func TestProgressDriverValueMonotonicForward(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)
	d.Forward()

	prev := d.Value()
	for d.IsAnimating() {
		s.Step(frame)
		v := d.Value()
		if v < prev {
			t.Fatalf("value decreased during forward run: %v -> %v", prev, v)
		}
		prev = v
	}
}

func TestProgressDriverReverseUsesReverseCurve(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)
	d.SetValue(1)

	d.Reverse()
	runFrames(s, 5)

	linear := d.LinearValue()
	want := utils.EaseOutQuad(linear)
	if math.Abs(d.Value()-want) > 1e-9 {
		t.Errorf("reverse value = %v, want EaseOutQuad(%v) = %v", d.Value(), linear, want)
	}
}

func TestProgressDriverInterruptRetargets(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	afterOpen := 0
	openRun := d.Forward().Then(func() { afterOpen++ })

	// 推进到线性进度约 0.3
	for d.LinearValue() < 0.3 {
		s.Step(frame)
	}
	before := d.Value()
	beforeLinear := d.LinearValue()

	afterClose := 0
	d.Reverse().Then(func() { afterClose++ })

	if !openRun.IsCanceled() {
		t.Error("open completion should be canceled by retarget")
	}
	if d.Status() != StatusReverse {
		t.Errorf("status = %v, want reverse", d.Status())
	}
	// 曲线方向锁定，重新定向不跳变
	if d.Value() != before {
		t.Errorf("value jumped on retarget: %v -> %v", before, d.Value())
	}

	maxSeen := beforeLinear
	for d.IsAnimating() {
		s.Step(frame)
		if d.LinearValue() > maxSeen {
			maxSeen = d.LinearValue()
		}
	}

	if maxSeen > beforeLinear {
		t.Errorf("value moved toward 1 after retarget: max %v > %v", maxSeen, beforeLinear)
	}
	if d.Value() != 0 || d.Status() != StatusDismissed {
		t.Errorf("settled at value %v status %v, want 0 dismissed", d.Value(), d.Status())
	}
	if afterOpen != 0 {
		t.Errorf("abandoned forward completion fired %d times", afterOpen)
	}
	if afterClose != 1 {
		t.Errorf("reverse completion fired %d times, want 1", afterClose)
	}
}

func TestProgressDriverRetargetShortensRun(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)
	d.Forward()
	for d.LinearValue() < 0.3 {
		s.Step(frame)
	}

	d.Reverse()
	frames := 0
	for d.IsAnimating() {
		s.Step(frame)
		frames++
	}

	// 剩余距离约 0.3，应在完整时长（15 帧）的一半以内结束
	if frames > 8 {
		t.Errorf("retargeted run took %d frames, want <= 8", frames)
	}
}

func TestProgressDriverZeroDurationSettlesImmediately(t *testing.T) {
	s := NewScheduler()
	d := NewProgressDriver(s, 0, nil, nil)

	fired := false
	d.Forward().Then(func() { fired = true })

	if !fired {
		t.Error("zero-duration run should complete synchronously")
	}
	if d.Value() != 1 || d.Status() != StatusCompleted {
		t.Errorf("value %v status %v, want 1 completed", d.Value(), d.Status())
	}
}

func TestProgressDriverForwardAtTarget(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)
	d.SetValue(1)

	fired := false
	d.Forward().Then(func() { fired = true })

	if !fired {
		t.Error("forward at upper bound should complete immediately")
	}
	if d.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", d.Status())
	}
}

func TestProgressDriverListeners(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	ticks := 0
	unsubscribe := d.AddListener(func() { ticks++ })

	var statuses []Status
	d.AddStatusListener(func(st Status) { statuses = append(statuses, st) })

	d.Forward()
	runFrames(s, 3)
	if ticks != 3 {
		t.Errorf("listener called %d times for 3 frames, want 3", ticks)
	}

	unsubscribe()
	runUntilSettled(t, s, d)
	if ticks != 3 {
		t.Errorf("listener called after unsubscribe: %d", ticks)
	}

	want := []Status{StatusForward, StatusCompleted}
	if len(statuses) != len(want) {
		t.Fatalf("statuses = %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("statuses[%d] = %v, want %v", i, statuses[i], want[i])
		}
	}
}

func TestProgressDriverDispose(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	fired := false
	c := d.Forward().Then(func() { fired = true })
	runFrames(s, 3)

	d.Dispose()

	if s.TickerCount() != 0 {
		t.Errorf("ticker not released on Dispose, count = %d", s.TickerCount())
	}
	if !c.IsCanceled() {
		t.Error("pending completion should be canceled on Dispose")
	}

	runFrames(s, 30)
	if fired {
		t.Error("completion fired after Dispose")
	}

	// 释放后的调用无效
	if !d.Reverse().IsCanceled() {
		t.Error("Reverse after Dispose should return a canceled completion")
	}
}

func TestProgressDriverSetValue(t *testing.T) {
	s := NewScheduler()
	d := newTestDriver(s)

	c := d.Forward()
	runFrames(s, 2)
	d.SetValue(1)

	if !c.IsCanceled() {
		t.Error("SetValue should cancel the running completion")
	}
	if d.Status() != StatusCompleted || d.Value() != 1 {
		t.Errorf("status %v value %v, want completed 1", d.Status(), d.Value())
	}
	if d.IsAnimating() {
		t.Error("SetValue should stop the animation")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusDismissed, "dismissed"},
		{StatusForward, "forward"},
		{StatusCompleted, "completed"},
		{StatusReverse, "reverse"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
