// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TapSlop 按下与释放之间允许的最大移动距离（像素）
// 超过此距离视为拖动，不触发点击
const TapSlop = 12.0

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	return ebiten.CursorPosition()
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时 TouchPosition 已失效，使用保存的最后触摸位置
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// TapTracker 点击识别器
// 按下和释放位置距离不超过 TapSlop 时识别为一次点击
//
// 与 ebiten 输入解耦：由 PollTap 每帧喂入按下/释放事件，测试可直接调用 Press/Release
type TapTracker struct {
	pressed        bool
	startX, startY int
}

// Press 记录按下位置
func (t *TapTracker) Press(x, y int) {
	t.pressed = true
	t.startX, t.startY = x, y
}

// Release 记录释放，返回是否构成一次点击
func (t *TapTracker) Release(x, y int) bool {
	if !t.pressed {
		return false
	}
	t.pressed = false
	dx := float64(x - t.startX)
	dy := float64(y - t.startY)
	return math.Hypot(dx, dy) <= TapSlop
}

// IsPressed 是否处于按下状态
func (t *TapTracker) IsPressed() bool {
	return t.pressed
}

// PollTap 读取本帧的 ebiten 输入并返回是否完成一次点击及其位置
// 应在每帧 Update 中调用一次
func (t *TapTracker) PollTap() (bool, int, int) {
	UpdateLastTouchPosition()

	if pressed, x, y := IsPointerJustPressed(); pressed {
		t.Press(x, y)
	}
	if released, x, y := IsPointerJustReleased(); released {
		if t.Release(x, y) {
			return true, x, y
		}
	}
	return false, 0, 0
}
