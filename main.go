package main

import (
	"flag"
	"log"

	"github.com/gonewx/fab/pkg/app"
	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath  = flag.String("config", "", "菜单配置文件路径（默认使用嵌入的 data/fab.yaml）")
	verbose     = flag.Bool("verbose", false, "详细日志")
	layoutType  = flag.String("type", "", "展开方式: fan | up | left")
	overlayMode = flag.String("overlay", "", "遮罩模式: none | color | blur")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	showcase, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Type:       *layoutType,
		Overlay:    *overlayMode,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Expandable FAB")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先保存偏好设置
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(showcase); err != nil {
		log.Fatal(err)
	}
}
