// Package scenes 包含游戏的场景实现
package scenes

import (
	"github.com/gonewx/invasion/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现都满足该接口
type Scene = game.Scene

// 编译期检查
var (
	_ Scene         = (*GameScene)(nil)
	_ game.Closable = (*GameScene)(nil)
)
