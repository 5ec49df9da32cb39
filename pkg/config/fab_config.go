package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gonewx/fab/pkg/layout"
	"github.com/gonewx/fab/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 默认值
const (
	DefaultDistance = 100.0
	DefaultDuration = 250 * time.Millisecond
	DefaultFanAngle = 90.0
	DefaultMargin   = 16.0
)

// OffsetConfig 二维偏移配置
type OffsetConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FabConfig 可展开浮动按钮配置
// 构造组件后不可修改
type FabConfig struct {
	Distance    float64       `yaml:"distance"`    // 基础径向距离
	Duration    time.Duration `yaml:"duration"`    // 展开/收起时长，如 "250ms"
	FanAngle    float64       `yaml:"fanAngle"`    // 扇形张角（度），仅 fan 使用
	InitialOpen bool          `yaml:"initialOpen"` // 初始是否展开
	Type        layout.Type   `yaml:"type"`        // fan | up | left

	CollapsedFabSize FabSize `yaml:"collapsedFabSize"` // 开启按钮尺寸
	ExpandedFabSize  FabSize `yaml:"expandedFabSize"`  // 关闭按钮尺寸
	ActionFabSize    FabSize `yaml:"actionFabSize"`    // 动作按钮尺寸

	CloseButtonStyle CloseButtonStyle `yaml:"closeButtonStyle"`
	ForegroundColor  HexColor         `yaml:"foregroundColor"` // 开启按钮前景色
	BackgroundColor  HexColor         `yaml:"backgroundColor"` // 开启按钮背景色
	Child            utils.Glyph      `yaml:"child"`           // 开启按钮图标

	ChildrenOffset OffsetConfig  `yaml:"childrenOffset"`
	OverlayStyle   *OverlayStyle `yaml:"overlayStyle,omitempty"` // nil 表示无遮罩

	OpenButtonHeroTag  string `yaml:"openButtonHeroTag,omitempty"`
	CloseButtonHeroTag string `yaml:"closeButtonHeroTag,omitempty"`

	Margin       float64 `yaml:"margin"`       // 按钮距屏幕右下角的距离
	ForwardCurve string  `yaml:"forwardCurve"` // 展开曲线名称
	ReverseCurve string  `yaml:"reverseCurve"` // 收起曲线名称
}

// DefaultFabConfig 返回默认配置
func DefaultFabConfig() *FabConfig {
	return &FabConfig{
		Distance:         DefaultDistance,
		Duration:         DefaultDuration,
		FanAngle:         DefaultFanAngle,
		InitialOpen:      false,
		Type:             layout.TypeFan,
		CollapsedFabSize: FabSizeRegular,
		ExpandedFabSize:  FabSizeSmall,
		ActionFabSize:    FabSizeSmall,
		CloseButtonStyle: DefaultCloseButtonStyle(),
		ForegroundColor:  NewHexColor(0xFF, 0xFF, 0xFF, 0xFF),
		BackgroundColor:  NewHexColor(0x67, 0x50, 0xA4, 0xFF),
		Child:            utils.GlyphMenu,
		ChildrenOffset:   OffsetConfig{X: 4, Y: 4},
		Margin:           DefaultMargin,
		ForwardCurve:     "fastOutSlowIn",
		ReverseCurve:     "easeOutQuad",
	}
}

// LoadFabConfig 从 YAML 文件加载配置
// 文件中未出现的字段保留默认值
func LoadFabConfig(filePath string) (*FabConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fab config file: %w", err)
	}
	return ParseFabConfig(data)
}

// ParseFabConfig 从 YAML 数据解析配置
func ParseFabConfig(data []byte) (*FabConfig, error) {
	cfg := DefaultFabConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fab config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fab config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
func (c *FabConfig) Validate() error {
	if c.Distance < 0 {
		return fmt.Errorf("distance must be >= 0, got %v", c.Distance)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be >= 0, got %v", c.Duration)
	}
	if c.FanAngle < 0 || c.FanAngle > 360 {
		return fmt.Errorf("fanAngle must be between 0 and 360, got %v", c.FanAngle)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must be >= 0, got %v", c.Margin)
	}
	if _, err := utils.ParseGlyph(string(c.Child)); err != nil {
		return fmt.Errorf("child: %w", err)
	}
	if _, err := utils.ParseGlyph(string(c.CloseButtonStyle.Child)); err != nil {
		return fmt.Errorf("closeButtonStyle.child: %w", err)
	}
	if _, err := utils.EasingByName(c.ForwardCurve); err != nil {
		return fmt.Errorf("forwardCurve: %w", err)
	}
	if _, err := utils.EasingByName(c.ReverseCurve); err != nil {
		return fmt.Errorf("reverseCurve: %w", err)
	}

	// 遮罩样式在构造时已校验
	return nil
}

// LayoutSpec 返回布局参数
//
// SizeOffset 为开启按钮与关闭按钮的半径差，使动作按钮围绕关闭按钮展开
func (c *FabConfig) LayoutSpec() layout.Spec {
	return layout.Spec{
		Type:       c.Type,
		FanAngle:   c.FanAngle,
		Distance:   c.Distance,
		SizeOffset: (c.CollapsedFabSize.Diameter() - c.ExpandedFabSize.Diameter()) / 2,
		ChildrenOffset: layout.Offset{
			DX: c.ChildrenOffset.X,
			DY: c.ChildrenOffset.Y,
		},
	}
}

// OpenButtonEndScale 返回开启按钮在完全展开时的缩放比例
// 关闭按钮为小尺寸时收缩到关闭按钮大小，否则不缩放
func (c *FabConfig) OpenButtonEndScale() float64 {
	if c.ExpandedFabSize != FabSizeSmall {
		return 1
	}
	return c.ExpandedFabSize.Diameter() / c.CollapsedFabSize.Diameter()
}

// ForwardEasing 返回展开曲线
func (c *FabConfig) ForwardEasing() utils.EasingFunc {
	fn, err := utils.EasingByName(c.ForwardCurve)
	if err != nil {
		return utils.FastOutSlowIn
	}
	return fn
}

// ReverseEasing 返回收起曲线
func (c *FabConfig) ReverseEasing() utils.EasingFunc {
	fn, err := utils.EasingByName(c.ReverseCurve)
	if err != nil {
		return utils.EaseOutQuad
	}
	return fn
}

// Clone 返回配置的副本
func (c *FabConfig) Clone() *FabConfig {
	clone := *c
	if c.OverlayStyle != nil {
		style := *c.OverlayStyle
		clone.OverlayStyle = &style
	}
	return &clone
}
