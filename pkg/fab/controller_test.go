package fab

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gonewx/fab/pkg/animation"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/layout"
)

const frame = 1.0 / 60.0

// settle 推进时钟直到控制器停止动画
func settle(t *testing.T, s *animation.Scheduler, c *Controller) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if !c.IsAnimating() {
			return
		}
		s.Step(frame)
	}
	t.Fatalf("controller did not settle, progress = %v", c.Progress())
}

// callbackLog 记录回调调用顺序
type callbackLog struct {
	events []string
}

func (l *callbackLog) callbacks() Callbacks {
	return Callbacks{
		OnOpen:     func() { l.events = append(l.events, "onOpen") },
		AfterOpen:  func() { l.events = append(l.events, "afterOpen") },
		OnClose:    func() { l.events = append(l.events, "onClose") },
		AfterClose: func() { l.events = append(l.events, "afterClose") },
	}
}

func (l *callbackLog) count(name string) int {
	n := 0
	for _, e := range l.events {
		if e == name {
			n++
		}
	}
	return n
}

func TestNewControllerRejectsEmptyChildren(t *testing.T) {
	s := animation.NewScheduler()
	c, err := NewController(s, nil, 0, Callbacks{})
	if !errors.Is(err, ErrNoChildren) {
		t.Errorf("error = %v, want ErrNoChildren", err)
	}
	if c != nil {
		t.Error("controller should be nil on error")
	}
	if s.TickerCount() != 0 {
		t.Errorf("no ticker should be acquired on error, got %d", s.TickerCount())
	}
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFabConfig()
	cfg.Distance = -1

	if _, err := NewController(animation.NewScheduler(), cfg, 3, Callbacks{}); err == nil {
		t.Error("expected error for negative distance")
	}
}

func TestControllerInitialState(t *testing.T) {
	tests := []struct {
		name        string
		initialOpen bool
		wantState   MenuState
		wantValue   float64
	}{
		{"closed", false, MenuClosed, 0},
		{"open", true, MenuOpen, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFabConfig()
			cfg.InitialOpen = tt.initialOpen
			c, err := NewController(animation.NewScheduler(), cfg, 3, Callbacks{})
			if err != nil {
				t.Fatalf("NewController error: %v", err)
			}
			if c.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", c.State(), tt.wantState)
			}
			if c.Progress() != tt.wantValue {
				t.Errorf("Progress() = %v, want %v", c.Progress(), tt.wantValue)
			}
			if c.IsAnimating() {
				t.Error("controller should not animate right after construction")
			}
		})
	}
}

func TestControllerToggleRoundTrip(t *testing.T) {
	s := animation.NewScheduler()
	var l callbackLog
	c, err := NewController(s, nil, 3, l.callbacks())
	if err != nil {
		t.Fatalf("NewController error: %v", err)
	}

	c.Toggle()
	if !c.IsOpen() {
		t.Fatal("IsOpen() = false after first toggle")
	}
	settle(t, s, c)
	if c.Progress() != 1 {
		t.Errorf("progress after open = %v, want 1", c.Progress())
	}

	c.Toggle()
	if c.IsOpen() {
		t.Fatal("IsOpen() = true after second toggle")
	}
	settle(t, s, c)
	if c.Progress() != 0 {
		t.Errorf("progress after round trip = %v, want 0", c.Progress())
	}

	want := []string{"onOpen", "afterOpen", "onClose", "afterClose"}
	if len(l.events) != len(want) {
		t.Fatalf("events = %v, want %v", l.events, want)
	}
	for i := range want {
		if l.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, l.events[i], want[i])
		}
	}
}

func TestControllerInterruptRetargets(t *testing.T) {
	s := animation.NewScheduler()
	var l callbackLog
	c, _ := NewController(s, nil, 3, l.callbacks())

	c.Toggle()
	for c.progress.LinearValue() < 0.3 {
		s.Step(frame)
	}
	atInterrupt := c.Progress()

	c.Toggle()
	s.Step(frame)
	if c.Progress() > atInterrupt {
		t.Errorf("progress jumped from %v to %v after reversing", atInterrupt, c.Progress())
	}

	prev := c.Progress()
	for c.IsAnimating() {
		s.Step(frame)
		if c.Progress() > prev+1e-9 {
			t.Fatalf("progress increased while closing: %v -> %v", prev, c.Progress())
		}
		prev = c.Progress()
	}

	if c.Progress() != 0 {
		t.Errorf("final progress = %v, want 0", c.Progress())
	}
	if l.count("afterOpen") != 0 {
		t.Error("afterOpen must not fire for an interrupted open")
	}
	if l.count("afterClose") != 1 {
		t.Errorf("afterClose fired %d times, want 1", l.count("afterClose"))
	}
}

func TestControllerRapidTogglesLastWriteWins(t *testing.T) {
	s := animation.NewScheduler()
	var l callbackLog
	c, _ := NewController(s, nil, 2, l.callbacks())

	// 同一帧内三次切换
	c.Toggle()
	c.Toggle()
	c.Toggle()
	if !c.IsOpen() {
		t.Fatal("odd number of toggles should leave the menu open")
	}
	settle(t, s, c)

	if c.Progress() != 1 {
		t.Errorf("progress = %v, want 1", c.Progress())
	}
	if l.count("afterOpen") != 1 || l.count("afterClose") != 0 {
		t.Errorf("events = %v, want a single afterOpen", l.events)
	}
}

func TestControllerZeroDuration(t *testing.T) {
	cfg := config.DefaultFabConfig()
	cfg.Duration = 0
	var l callbackLog
	c, _ := NewController(animation.NewScheduler(), cfg, 1, l.callbacks())

	c.Toggle()
	if c.Progress() != 1 {
		t.Errorf("progress = %v, want 1 immediately", c.Progress())
	}
	if l.count("afterOpen") != 1 {
		t.Error("afterOpen should fire synchronously when duration is 0")
	}
}

func TestControllerActionVisual(t *testing.T) {
	s := animation.NewScheduler()
	cfg := config.DefaultFabConfig()
	c, _ := NewController(s, cfg, 4, Callbacks{})

	closed := c.ActionVisual(2)
	if closed.Placement.Offset.Length() != 0 {
		t.Errorf("closed offset = %+v, want zero", closed.Placement.Offset)
	}
	if math.Abs(closed.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("closed rotation = %v, want π/2", closed.Rotation)
	}
	if closed.Opacity != 0 {
		t.Errorf("closed opacity = %v, want 0", closed.Opacity)
	}

	c.Toggle()
	settle(t, s, c)

	open := c.ActionVisual(2)
	want := layout.Place(2, 4, cfg.LayoutSpec(), 1)
	if math.Abs(open.Placement.Offset.DX-want.Offset.DX) > 1e-9 || math.Abs(open.Placement.Offset.DY-want.Offset.DY) > 1e-9 {
		t.Errorf("open offset = %+v, want %+v", open.Placement.Offset, want.Offset)
	}
	if open.Rotation != 0 || open.Opacity != 1 {
		t.Errorf("open visual = %+v, want rotation 0 opacity 1", open)
	}
}

func TestControllerToggleVisuals(t *testing.T) {
	tests := []struct {
		name      string
		expanded  config.FabSize
		wantScale float64
	}{
		{"small expanded shrinks", config.FabSizeSmall, 40.0 / 56.0},
		{"regular expanded keeps size", config.FabSizeRegular, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := animation.NewScheduler()
			cfg := config.DefaultFabConfig()
			cfg.ExpandedFabSize = tt.expanded
			c, _ := NewController(s, cfg, 2, Callbacks{})

			openBtn := c.OpenButtonVisual()
			if openBtn.Opacity != 1 || openBtn.Scale != 1 || !openBtn.Interactive {
				t.Errorf("closed open-button visual = %+v", openBtn)
			}
			if c.CloseButtonVisual().Interactive {
				t.Error("close button should not be interactive while closed")
			}

			c.Toggle()
			settle(t, s, c)

			openBtn = c.OpenButtonVisual()
			if openBtn.Opacity != 0 || openBtn.Interactive {
				t.Errorf("open-button visual after opening = %+v", openBtn)
			}
			if math.Abs(openBtn.Scale-tt.wantScale) > 1e-9 {
				t.Errorf("scale = %v, want %v", openBtn.Scale, tt.wantScale)
			}
			if math.Abs(openBtn.IconRotation+math.Pi) > 1e-9 {
				t.Errorf("icon rotation = %v, want -π", openBtn.IconRotation)
			}
			closeBtn := c.CloseButtonVisual()
			if closeBtn.Opacity != 1 || !closeBtn.Interactive {
				t.Errorf("close-button visual after opening = %+v", closeBtn)
			}
		})
	}
}

func TestControllerOverlayProgress(t *testing.T) {
	s := animation.NewScheduler()
	cfg := config.DefaultFabConfig()
	c, _ := NewController(s, cfg, 2, Callbacks{})
	if s.TickerCount() != 1 {
		t.Errorf("without overlay expected 1 ticker, got %d", s.TickerCount())
	}
	c.Toggle()
	settle(t, s, c)
	if c.OverlayProgress() != 0 {
		t.Errorf("overlay progress without overlay = %v, want 0", c.OverlayProgress())
	}

	s = animation.NewScheduler()
	cfg.OverlayStyle = config.NewBlurOverlay(4)
	cfg.Duration = 200 * time.Millisecond
	c, _ = NewController(s, cfg, 2, Callbacks{})
	if s.TickerCount() != 2 {
		t.Errorf("with overlay expected 2 tickers, got %d", s.TickerCount())
	}
	c.Toggle()
	s.Step(frame)
	if v := c.OverlayProgress(); v <= 0 || v >= 1 {
		t.Errorf("overlay progress mid-run = %v, want in (0,1)", v)
	}
	settle(t, s, c)
	if c.OverlayProgress() != 1 {
		t.Errorf("overlay progress = %v, want 1", c.OverlayProgress())
	}
}

func TestControllerDispose(t *testing.T) {
	s := animation.NewScheduler()
	var l callbackLog
	cfg := config.DefaultFabConfig()
	cfg.OverlayStyle = config.NewColorOverlay(config.NewHexColor(0, 0, 0, 0x80))
	c, _ := NewController(s, cfg, 3, l.callbacks())

	c.Toggle()
	s.Step(frame)
	c.Dispose()
	c.Dispose()

	if s.TickerCount() != 0 {
		t.Errorf("tickers after dispose = %d, want 0", s.TickerCount())
	}
	for i := 0; i < 60; i++ {
		s.Step(frame)
	}
	if l.count("afterOpen") != 0 {
		t.Error("afterOpen must not fire after dispose")
	}

	c.Toggle()
	if l.count("onClose") != 0 {
		t.Error("Toggle after dispose should be a no-op")
	}
	if !c.IsDisposed() {
		t.Error("IsDisposed() = false")
	}
}

func TestMenuStateString(t *testing.T) {
	if MenuClosed.String() != "closed" || MenuOpen.String() != "open" {
		t.Errorf("names = %q/%q", MenuClosed.String(), MenuOpen.String())
	}
}
