package scenes

import (
	"github.com/gonewx/fab/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 场景 ID，供 SceneManager.LoadScene 使用
const (
	SceneShowcase = "showcase"
	SceneDetail   = "detail"
)

// DefaultHeroTag 配置未设置过渡标识时详情页使用的标识
const DefaultHeroTag = "fab"
