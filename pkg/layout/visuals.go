package layout

import "math"

// ActionVisual 动作按钮在某一进度下的视觉状态
type ActionVisual struct {
	Placement Placement
	Rotation  float64 // 弧度，收起时 π/2，展开时 0
	Opacity   float64
}

// ToggleVisual 开启/关闭按钮在某一进度下的视觉状态
type ToggleVisual struct {
	Opacity      float64
	Scale        float64
	IconRotation float64 // 弧度
	Interactive  bool
}

// VisualizeAction 计算第 index 个动作按钮的位置、旋转和透明度
// 透明度直接等于进度
func VisualizeAction(index, count int, spec Spec, progress float64) ActionVisual {
	return ActionVisual{
		Placement: Place(index, count, spec, progress),
		Rotation:  (1 - progress) * math.Pi / 2,
		Opacity:   clamp01(progress),
	}
}

// VisualizeOpenButton 计算开启按钮的视觉状态
// 随进度淡出并缩放到 endScale，图标转过 -180°；仅在收起状态可点击
func VisualizeOpenButton(progress, endScale float64, open bool) ToggleVisual {
	return ToggleVisual{
		Opacity:      clamp01(1 - progress),
		Scale:        1 + (endScale-1)*progress,
		IconRotation: -math.Pi * progress,
		Interactive:  !open,
	}
}

// VisualizeCloseButton 计算关闭按钮的视觉状态
// 透明度与开启按钮互补；仅在展开状态可点击
func VisualizeCloseButton(progress float64, open bool) ToggleVisual {
	return ToggleVisual{
		Opacity:     clamp01(progress),
		Scale:       1,
		Interactive: open,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
