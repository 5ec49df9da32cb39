// Package layout 计算展开菜单中每个动作按钮的位置
//
// 纯几何计算，不依赖渲染框架：
//   - 方向角（度）：0° 指向左侧，90° 指向上方
//   - 最大距离：进度为 1 时按钮离触发按钮角点的径向距离
//   - 偏移量：polar(方向, 最大距离 × 进度)
//
// 偏移量以触发按钮的右下角为锚点，dx 向左为正，dy 向上为正，
// 由 ToScreen 转换为屏幕坐标（y 向下）。
package layout

import (
	"fmt"
	"math"
)

// Type 展开方式
type Type int

const (
	// TypeFan 扇形展开，以竖直方向为对称轴
	TypeFan Type = iota
	// TypeUp 竖直向上堆叠
	TypeUp
	// TypeLeft 水平向左堆叠
	TypeLeft
)

// String 返回展开方式名称（与配置文件一致）
func (t Type) String() string {
	switch t {
	case TypeFan:
		return "fan"
	case TypeUp:
		return "up"
	case TypeLeft:
		return "left"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType 解析展开方式名称
func ParseType(name string) (Type, error) {
	switch name {
	case "fan":
		return TypeFan, nil
	case "up":
		return TypeUp, nil
	case "left":
		return TypeLeft, nil
	default:
		return TypeFan, fmt.Errorf("unknown layout type %q (want fan, up or left)", name)
	}
}

// MarshalText 实现 encoding.TextMarshaler
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Offset 二维偏移
type Offset struct {
	DX, DY float64
}

// Length 偏移量的长度
func (o Offset) Length() float64 {
	return math.Hypot(o.DX, o.DY)
}

// Spec 布局参数，构造后不可变
type Spec struct {
	Type Type
	// FanAngle 扇形张角（度），仅 TypeFan 使用
	FanAngle float64
	// Distance 基础径向距离
	Distance float64
	// SizeOffset 由展开后按钮尺寸决定的额外距离
	SizeOffset float64
	// ChildrenOffset 所有子按钮的固定微调
	ChildrenOffset Offset
}

// Placement 单个动作按钮在某一进度下的布局结果
type Placement struct {
	DirectionDegrees float64
	MaxDistance      float64
	Offset           Offset
}

// Direction 计算第 index 个按钮的方向角（度）
//
// 扇形：step = fanAngle / (count-1)，单个按钮时 step = 0，
// 方向 = step×index + (90 - fanAngle)/2，使扇形关于竖直方向对称。
func Direction(index, count int, spec Spec) float64 {
	switch spec.Type {
	case TypeUp:
		return 90
	case TypeLeft:
		return 0
	default:
		step := 0.0
		if count > 1 {
			step = spec.FanAngle / float64(count-1)
		}
		return step*float64(index) + (90-spec.FanAngle)/2
	}
}

// MaxDistance 计算第 index 个按钮的最大径向距离
//
// 扇形：所有按钮距离相同 = distance + sizeOffset
// 堆叠：distance × (index+1) + sizeOffset，逐个向外
func MaxDistance(index int, spec Spec) float64 {
	switch spec.Type {
	case TypeUp, TypeLeft:
		return spec.Distance*float64(index+1) + spec.SizeOffset
	default:
		return spec.Distance + spec.SizeOffset
	}
}

// Polar 极坐标转直角坐标
func Polar(directionDegrees, distance float64) Offset {
	rad := directionDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Offset{
		DX: distance * cos,
		DY: distance * sin,
	}
}

// Place 计算第 index 个按钮在进度 progress 下的布局
//
// progress=0 时偏移为 (0,0)，所有按钮与触发按钮重合；
// progress=1 时位于完整距离处。
func Place(index, count int, spec Spec, progress float64) Placement {
	direction := Direction(index, count, spec)
	maxDistance := MaxDistance(index, spec)
	return Placement{
		DirectionDegrees: direction,
		MaxDistance:      maxDistance,
		Offset:           Polar(direction, progress*maxDistance),
	}
}

// PlaceAll 计算所有按钮的布局
func PlaceAll(count int, spec Spec, progress float64) []Placement {
	placements := make([]Placement, count)
	for i := 0; i < count; i++ {
		placements[i] = Place(i, count, spec, progress)
	}
	return placements
}

// ToScreen 将偏移量映射到屏幕坐标
//
// 按钮右下角距锚点的距离为 offset + childrenOffset（右、下方向为锚点边），
// 返回按钮右下角的屏幕坐标。
//
// 参数：
//   - anchorRight, anchorBottom: 菜单区域右下角的屏幕坐标
func ToScreen(anchorRight, anchorBottom float64, offset, childrenOffset Offset) (right, bottom float64) {
	right = anchorRight - (offset.DX + childrenOffset.DX)
	bottom = anchorBottom - (offset.DY + childrenOffset.DY)
	return right, bottom
}
