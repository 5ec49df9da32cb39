// cmd/fabterm/main.go
// 终端版可展开浮动按钮演示
//
// 用法：
//   go run ./cmd/fabterm --type=up --log=fabterm.log
//
// 点击右下角按钮或按空格展开/收起，q / Esc 退出。

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/fab/pkg/animation"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/fab"
	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/term"
	"github.com/gonewx/fab/pkg/utils"
)

var (
	configPath = flag.String("config", "", "菜单配置文件路径（默认使用内置默认值）")
	layoutType = flag.String("type", "", "展开方式: fan | up | left")
	logPath    = flag.String("log", "", "日志文件（终端被占用，日志不输出到屏幕）")
	mute       = flag.Bool("mute", false, "关闭点击音")
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath, *layoutType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return nil
}

func loadConfig(path, typeName string) (*config.FabConfig, error) {
	cfg := config.DefaultFabConfig()
	if path != "" {
		loaded, err := config.LoadFabConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if typeName != "" {
		t, err := layout.ParseType(typeName)
		if err != nil {
			return nil, err
		}
		cfg.Type = t
	}
	return cfg, nil
}

func run(cfg *config.FabConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	clicker := term.NewClicker()
	if !*mute {
		if err := clicker.Initialize(); err != nil {
			// 没有声音也可以运行
			log.Printf("[Term] Audio initialization failed: %v", err)
		}
	}
	defer clicker.Close()

	var renderer *term.Renderer
	scheduler := animation.NewScheduler()
	controller, err := fab.NewController(scheduler, cfg, 3, fab.Callbacks{
		OnOpen:  func() { clicker.Click(true) },
		OnClose: func() { clicker.Click(false) },
	})
	if err != nil {
		return err
	}
	defer controller.Dispose()

	pressed := func(name string) func() {
		return func() { renderer.SetStatus("Last action: " + name) }
	}
	renderer = term.NewRenderer(screen, controller, []term.Action{
		{Label: "Edit", Glyph: utils.GlyphEdit, OnPressed: pressed("Edit")},
		{Label: "Share", Glyph: utils.GlyphShare, OnPressed: pressed("Share")},
		{Label: "Delete", Glyph: utils.GlyphDelete, OnPressed: pressed("Delete")},
	})
	renderer.SetStatus("Space / click: toggle   q: quit")

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !renderer.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			scheduler.Step(now.Sub(last).Seconds())
			last = now
			renderer.Draw()
		}
	}
}
