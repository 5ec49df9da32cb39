// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/fab/pkg/config"
	"github.com/gonewx/fab/pkg/embedded"
	"github.com/gonewx/fab/pkg/game"
	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/scenes"
	"github.com/gonewx/fab/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// DefaultConfigPath 嵌入的默认菜单配置
const DefaultConfigPath = "data/fab.yaml"

// storageAppName gdata 存储目录名
const storageAppName = "fab_showcase"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 菜单配置文件路径，为空则使用嵌入的 data/fab.yaml
	ConfigPath string
	// Type 覆盖偏好设置中的展开方式（fan | up | left），为空则不覆盖
	Type string
	// Overlay 覆盖偏好设置中的遮罩模式（none | color | blur），为空则不覆盖
	Overlay string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	preferences              *game.PreferencesManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fabConfig, err := LoadFabConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("菜单配置加载失败: %w", err)
	}

	preferences := game.NewPreferencesManager(openStorage())
	if err := ApplyOverrides(preferences, cfg); err != nil {
		return nil, err
	}
	if preferences.GetPreferences().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		switch sceneID {
		case scenes.SceneDetail:
			return scenes.NewDetailScene(sceneManager, sceneManager.GetCurrentScene(), fabConfig, config.GameWindowWidth, config.GameWindowHeight)
		case scenes.SceneShowcase:
			scene, err := scenes.NewShowcaseScene(sceneManager, preferences, fabConfig, config.GameWindowWidth, config.GameWindowHeight)
			if err != nil {
				log.Printf("[App] 演示页创建失败: %v", err)
				return nil
			}
			return scene
		default:
			return nil
		}
	})

	showcase, err := scenes.NewShowcaseScene(sceneManager, preferences, fabConfig, config.GameWindowWidth, config.GameWindowHeight)
	if err != nil {
		return nil, fmt.Errorf("演示页创建失败: %w", err)
	}
	sceneManager.SwitchTo(showcase)
	log.Printf("[App] Started: layout=%s, overlay=%s", preferences.GetPreferences().LayoutType, preferences.GetPreferences().Overlay)

	return &App{
		sceneManager: sceneManager,
		preferences:  preferences,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadFabConfig 加载菜单配置
// path 为空时读取嵌入的 data/fab.yaml，嵌入资源也不存在时使用默认配置
func LoadFabConfig(path string) (*config.FabConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载菜单配置: %s", path)
		return config.LoadFabConfig(path)
	}

	if !embedded.Exists(DefaultConfigPath) {
		log.Printf("[Config] 未找到 %s，使用默认配置", DefaultConfigPath)
		return config.DefaultFabConfig(), nil
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载嵌入的菜单配置: %s", DefaultConfigPath)
	return config.ParseFabConfig(data)
}

// ApplyOverrides 把命令行参数写入偏好设置
func ApplyOverrides(preferences *game.PreferencesManager, cfg Config) error {
	if cfg.Type != "" {
		t, err := layout.ParseType(cfg.Type)
		if err != nil {
			return err
		}
		preferences.SetLayoutType(t)
	}
	if cfg.Overlay != "" {
		choice := game.OverlayChoice(cfg.Overlay)
		if !choice.Valid() {
			return fmt.Errorf("unknown overlay %q (want none, color or blur)", cfg.Overlay)
		}
		preferences.SetOverlay(choice)
	}
	return nil
}

// openStorage 打开 gdata 存储
// 失败不是致命错误，偏好设置降级为仅内存
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir: %v", err)
	} else if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{AppName: storageAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, preferences are not persisted: %v", err)
		return nil
	}
	return manager
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.preferences.SetFullscreen(ebiten.IsFullscreen())
	if err := a.preferences.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// SaveOnExit 让当前场景保存状态
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene failed to save on exit")
		}
		return
	}
	if err := a.preferences.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
