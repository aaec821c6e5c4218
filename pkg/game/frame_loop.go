package game

import (
	"log"
	"time"

	"github.com/gonewx/invasion/pkg/config"
)

// StepFunc 执行一个固定模拟步
// 返回 false 表示对局已结束，帧循环随之停止
type StepFunc func() bool

// FrameLoop 把真实经过的时间换算成固定步长的模拟步
//
// 累加器超过一个步长就执行一步，单次 Advance 最多补偿 MaxCatchUpTicks 步，
// 多余的积压直接丢弃。
type FrameLoop struct {
	step        StepFunc
	tick        time.Duration
	maxCatchUp  int
	accumulator time.Duration
	running     bool
	closed      bool
}

// NewFrameLoop 创建帧循环，创建后即处于运行状态
func NewFrameLoop(step StepFunc) *FrameLoop {
	return &FrameLoop{
		step:       step,
		tick:       config.TickDuration,
		maxCatchUp: config.MaxCatchUpTicks,
		running:    true,
	}
}

// Advance 累加经过的时间并执行到期的模拟步
// 返回本次执行的步数
func (l *FrameLoop) Advance(elapsed time.Duration) int {
	if !l.running || l.closed || elapsed <= 0 {
		return 0
	}

	l.accumulator += elapsed
	ticks := 0
	for l.accumulator >= l.tick {
		if ticks >= l.maxCatchUp {
			// 丢弃积压，避免卡顿后连续追帧
			l.accumulator = 0
			break
		}
		l.accumulator -= l.tick
		ticks++
		if !l.step() {
			l.running = false
			l.accumulator = 0
			log.Printf("[FrameLoop] 对局结束，停止模拟")
			break
		}
	}
	return ticks
}

// Running 帧循环是否仍在推进
func (l *FrameLoop) Running() bool {
	return l.running && !l.closed
}

// Resume 重新开始推进（用于重新开始对局）
// 已关闭的帧循环不能恢复
func (l *FrameLoop) Resume() bool {
	if l.closed {
		return false
	}
	l.running = true
	l.accumulator = 0
	return true
}

// Close 停止帧循环，之后的 Advance 不再执行任何步
func (l *FrameLoop) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.running = false
	log.Printf("[FrameLoop] 已关闭")
}
