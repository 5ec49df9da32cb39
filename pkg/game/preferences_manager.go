package game

import (
	"fmt"
	"log"

	"github.com/gonewx/fab/pkg/layout"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// OverlayChoice 演示程序选择的遮罩模式
type OverlayChoice string

const (
	OverlayChoiceNone  OverlayChoice = "none"
	OverlayChoiceColor OverlayChoice = "color"
	OverlayChoiceBlur  OverlayChoice = "blur"
)

// Next 返回循环切换的下一个遮罩模式：none → color → blur → none
func (c OverlayChoice) Next() OverlayChoice {
	switch c {
	case OverlayChoiceNone:
		return OverlayChoiceColor
	case OverlayChoiceColor:
		return OverlayChoiceBlur
	default:
		return OverlayChoiceNone
	}
}

// Valid 是否为已知的遮罩模式
func (c OverlayChoice) Valid() bool {
	return c == OverlayChoiceNone || c == OverlayChoiceColor || c == OverlayChoiceBlur
}

// Preferences 演示程序偏好设置
// 注意：不保存菜单的展开/收起状态，每次启动都从配置的 initialOpen 开始
type Preferences struct {
	LayoutType layout.Type   `yaml:"layoutType"` // fan | up | left
	Overlay    OverlayChoice `yaml:"overlay"`    // none | color | blur
	LastAction string        `yaml:"lastAction"` // 最近一次点击的动作名称
	Fullscreen bool          `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultPreferences 返回默认偏好设置
func DefaultPreferences() *Preferences {
	return &Preferences{
		LayoutType: layout.TypeFan,
		Overlay:    OverlayChoiceColor,
		LastAction: "",
		Fullscreen: false,
	}
}

// PreferencesManager 偏好设置管理器
// 负责偏好设置的加载、保存和内存管理
type PreferencesManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	preferences  *Preferences
}

// 存储路径常量
const (
	preferencesObject   = "preferences"
	preferencesProperty = "demo"
)

// NewPreferencesManager 创建偏好设置管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置
func NewPreferencesManager(gdataManager *gdata.Manager) *PreferencesManager {
	pm := &PreferencesManager{
		gdataManager: gdataManager,
		preferences:  DefaultPreferences(),
	}

	if err := pm.Load(); err != nil {
		log.Printf("[Preferences] Warning: Failed to load preferences: %v (using defaults)", err)
	}

	return pm
}

// Load 从 gdata 加载偏好设置
// gdataManager 为 nil 或数据不存在时使用默认设置
func (pm *PreferencesManager) Load() error {
	if pm.gdataManager == nil {
		pm.preferences = DefaultPreferences()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		pm.preferences = DefaultPreferences()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		pm.preferences = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.preferences = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if !loaded.Overlay.Valid() {
		log.Printf("[Preferences] Unknown overlay %q, falling back to none", loaded.Overlay)
		loaded.Overlay = OverlayChoiceNone
	}

	pm.preferences = loaded
	log.Printf("[Preferences] Preferences loaded: layout=%s, overlay=%s", loaded.LayoutType, loaded.Overlay)
	return nil
}

// Save 保存偏好设置到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (pm *PreferencesManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.preferences)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[Preferences] Preferences saved")
	return nil
}

// GetPreferences 获取当前偏好设置
func (pm *PreferencesManager) GetPreferences() *Preferences {
	return pm.preferences
}

// SetLayoutType 设置展开方式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (pm *PreferencesManager) SetLayoutType(t layout.Type) {
	pm.preferences.LayoutType = t
}

// SetOverlay 设置遮罩模式，未知值视为 none
func (pm *PreferencesManager) SetOverlay(choice OverlayChoice) {
	if !choice.Valid() {
		choice = OverlayChoiceNone
	}
	pm.preferences.Overlay = choice
}

// SetLastAction 记录最近一次点击的动作
func (pm *PreferencesManager) SetLastAction(name string) {
	pm.preferences.LastAction = name
}

// SetFullscreen 设置全屏模式
func (pm *PreferencesManager) SetFullscreen(enabled bool) {
	pm.preferences.Fullscreen = enabled
}
