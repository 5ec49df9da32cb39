package term

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// 点击音参数
const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 40 * time.Millisecond
	openToneHz      = 880.0
	closeToneHz     = 660.0
)

// Clicker 展开/收起时播放一声短音
// 音频初始化失败不影响菜单，Click 变为空操作
type Clicker struct {
	mu          sync.Mutex
	initialized bool
}

// NewClicker 创建点击音播放器
func NewClicker() *Clicker {
	return &Clicker{}
}

// Initialize 初始化扬声器
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(clickSampleRate, clickSampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// ClickTone 返回展开（高音）或收起（低音）的短音
func ClickTone(open bool) (beep.Streamer, error) {
	freq := closeToneHz
	if open {
		freq = openToneHz
	}
	sine, err := generators.SineTone(clickSampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(clickSampleRate.N(clickDuration), sine), nil
}

// Click 播放点击音
func (c *Clicker) Click(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone, err := ClickTone(open)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close 关闭扬声器
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}
