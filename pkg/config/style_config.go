package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gonewx/fab/pkg/utils"
	"gopkg.in/yaml.v3"
)

// 遮罩样式校验错误
var (
	// ErrOverlayStyleConflict 同时设置了颜色和模糊
	ErrOverlayStyleConflict = errors.New("overlay style: color and blur are mutually exclusive")
	// ErrOverlayStyleEmpty 颜色和模糊都未设置
	ErrOverlayStyleEmpty = errors.New("overlay style: one of color or blur is required")
	// ErrOverlayBlurNegative 模糊强度为负
	ErrOverlayBlurNegative = errors.New("overlay style: blur must be >= 0")
)

// FabSize 按钮尺寸档位
type FabSize int

const (
	// FabSizeRegular 标准尺寸（56px）
	FabSizeRegular FabSize = iota
	// FabSizeSmall 小尺寸（40px）
	FabSizeSmall
)

// Diameter 返回按钮直径（像素）
func (s FabSize) Diameter() float64 {
	if s == FabSizeSmall {
		return 40
	}
	return 56
}

// String 返回尺寸名称
func (s FabSize) String() string {
	if s == FabSizeSmall {
		return "small"
	}
	return "regular"
}

// MarshalText 实现 encoding.TextMarshaler
func (s FabSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (s *FabSize) UnmarshalText(text []byte) error {
	switch string(text) {
	case "small":
		*s = FabSizeSmall
	case "regular":
		*s = FabSizeRegular
	default:
		return fmt.Errorf("unknown fab size %q (want small or regular)", string(text))
	}
	return nil
}

// HexColor 以 "#RRGGBB" 或 "#RRGGBBAA" 表示的颜色
// 内部存储为预乘的 color.RGBA
type HexColor struct {
	color.RGBA
}

// NewHexColor 从非预乘的 RGBA 分量创建颜色
func NewHexColor(r, g, b, a uint8) HexColor {
	return HexColor{RGBA: premultiply(r, g, b, a)}
}

// ParseHexColor 解析颜色字符串
func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return NewHexColor(uint8(v>>16), uint8(v>>8), uint8(v), 0xff), nil
	}
	return NewHexColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// String 返回 "#RRGGBBAA"（非预乘）
func (c HexColor) String() string {
	r, g, b, a := unpremultiply(c.RGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// MarshalText 实现 encoding.TextMarshaler
func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (c *HexColor) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func premultiply(r, g, b, a uint8) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(r) * uint32(a) / 0xff),
		G: uint8(uint32(g) * uint32(a) / 0xff),
		B: uint8(uint32(b) * uint32(a) / 0xff),
		A: a,
	}
}

func unpremultiply(c color.RGBA) (r, g, b, a uint8) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	if c.A == 0xff {
		return c.R, c.G, c.B, c.A
	}
	return uint8(uint32(c.R) * 0xff / uint32(c.A)),
		uint8(uint32(c.G) * 0xff / uint32(c.A)),
		uint8(uint32(c.B) * 0xff / uint32(c.A)),
		c.A
}

// OverlayMode 遮罩模式
type OverlayMode int

const (
	// OverlayColor 纯色遮罩
	OverlayColor OverlayMode = iota
	// OverlayBlur 背景模糊
	OverlayBlur
)

// String 返回遮罩模式名称
func (m OverlayMode) String() string {
	if m == OverlayBlur {
		return "blur"
	}
	return "color"
}

// OverlayStyle 遮罩样式
// 颜色和模糊二选一，只能通过构造函数创建
type OverlayStyle struct {
	mode  OverlayMode
	color HexColor
	blur  float64
}

// NewOverlayStyle 创建遮罩样式
// color 和 blur 必须恰好设置一个
func NewOverlayStyle(clr *HexColor, blur *float64) (*OverlayStyle, error) {
	switch {
	case clr != nil && blur != nil:
		return nil, ErrOverlayStyleConflict
	case clr == nil && blur == nil:
		return nil, ErrOverlayStyleEmpty
	case blur != nil:
		if *blur < 0 {
			return nil, ErrOverlayBlurNegative
		}
		return &OverlayStyle{mode: OverlayBlur, blur: *blur}, nil
	default:
		return &OverlayStyle{mode: OverlayColor, color: *clr}, nil
	}
}

// MustOverlayStyle 与 NewOverlayStyle 相同，校验失败时 panic
func MustOverlayStyle(clr *HexColor, blur *float64) *OverlayStyle {
	style, err := NewOverlayStyle(clr, blur)
	if err != nil {
		panic(err)
	}
	return style
}

// NewColorOverlay 创建纯色遮罩
func NewColorOverlay(clr HexColor) *OverlayStyle {
	return MustOverlayStyle(&clr, nil)
}

// NewBlurOverlay 创建模糊遮罩
func NewBlurOverlay(sigma float64) *OverlayStyle {
	return MustOverlayStyle(nil, &sigma)
}

// Mode 返回遮罩模式
func (s *OverlayStyle) Mode() OverlayMode {
	return s.mode
}

// Color 返回遮罩颜色（仅纯色模式有效）
func (s *OverlayStyle) Color() HexColor {
	return s.color
}

// Blur 返回模糊强度（仅模糊模式有效）
func (s *OverlayStyle) Blur() float64 {
	return s.blur
}

type overlayStyleYAML struct {
	Color *HexColor `yaml:"color,omitempty"`
	Blur  *float64  `yaml:"blur,omitempty"`
}

// UnmarshalYAML 解析并校验遮罩样式
func (s *OverlayStyle) UnmarshalYAML(value *yaml.Node) error {
	var raw overlayStyleYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	style, err := NewOverlayStyle(raw.Color, raw.Blur)
	if err != nil {
		return err
	}
	*s = *style
	return nil
}

// MarshalYAML 输出颜色或模糊之一
func (s OverlayStyle) MarshalYAML() (interface{}, error) {
	if s.mode == OverlayBlur {
		blur := s.blur
		return overlayStyleYAML{Blur: &blur}, nil
	}
	clr := s.color
	return overlayStyleYAML{Color: &clr}, nil
}

// CloseButtonStyle 关闭按钮样式
type CloseButtonStyle struct {
	Child           utils.Glyph `yaml:"child"`
	ForegroundColor HexColor    `yaml:"foregroundColor"`
	BackgroundColor HexColor    `yaml:"backgroundColor"`
}

// DefaultCloseButtonStyle 返回默认关闭按钮样式
func DefaultCloseButtonStyle() CloseButtonStyle {
	return CloseButtonStyle{
		Child:           utils.GlyphClose,
		ForegroundColor: NewHexColor(0x21, 0x00, 0x5D, 0xff),
		BackgroundColor: NewHexColor(0xEA, 0xDD, 0xFF, 0xff),
	}
}
