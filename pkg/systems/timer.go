package systems

import "github.com/gonewx/invasion/pkg/components"

// timerEpsilon 浮点累加误差容限，避免 1.5 秒的计时器在第 91 步才就绪
const timerEpsilon = 1e-9

// tickTimer 推进计时器，返回计时器是否就绪
// 就绪后保持就绪，直到调用 consumeTimer
func tickTimer(timer *components.TimerComponent, deltaTime float64) bool {
	if timer.IsReady {
		return true
	}
	timer.CurrentTime += deltaTime
	if timer.CurrentTime >= timer.TargetTime-timerEpsilon {
		timer.IsReady = true
	}
	return timer.IsReady
}

// consumeTimer 消费一次就绪状态并重新开始计时
func consumeTimer(timer *components.TimerComponent) {
	timer.IsReady = false
	timer.CurrentTime = 0
}
