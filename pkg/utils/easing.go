package utils

import (
	"fmt"
	"math"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
//
// 菜单收起时的默认曲线
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（适合"弹性"效果）
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// FastOutSlowIn Material 标准曲线 cubic-bezier(0.4, 0.0, 0.2, 1.0)
// 菜单展开时的默认曲线
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// EaseInOut 标准缓入缓出曲线 cubic-bezier(0.42, 0.0, 0.58, 1.0)
// 遮罩层淡入淡出使用
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier 返回与 CSS cubic-bezier() 等价的缓动函数
// 曲线起点 (0,0)，终点 (1,1)，(x1,y1) 和 (x2,y2) 为两个控制点
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// 牛顿迭代求解 x(u) = t
		u := t
		for range 8 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, Clamp01(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// 牛顿法不收敛时退化为二分法
		lo, hi := 0.0, 1.0
		u = Clamp01(u)
		for range 20 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleBezier(y1, y2, u)
	}
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

// easingByName 配置文件中可用的曲线名称
var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"easeOutCubic":   EaseOutCubic,
	"easeInCubic":    EaseInCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutQuad":    EaseOutQuad,
	"easeInQuad":     EaseInQuad,
	"easeOutExpo":    EaseOutExpo,
	"fastOutSlowIn":  FastOutSlowIn,
	"easeInOut":      EaseInOut,
}

// EasingByName 根据名称查找缓动函数
// 未知名称返回错误
func EasingByName(name string) (EasingFunc, error) {
	fn, ok := easingByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing curve %q", name)
	}
	return fn, nil
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 范围内
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
