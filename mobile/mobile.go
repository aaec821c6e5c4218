//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.invasion -o build/android/invasion.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Invasion.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/app"
	"github.com/gonewx/invasion/pkg/embedded"
)

func init() {
	// 配置文件嵌入在 data 包中，桌面端与移动端共用
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
