package config

// 逻辑屏幕尺寸，Ebitengine 负责缩放到实际窗口
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)
