package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the arena with its overlays).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，用于场景被替换时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 被 SceneManager.SwitchTo 替换
//   - SceneManager.Close（应用退出）
type Closable interface {
	Close()
}
