package components

// TimerComponent 通用计时器组件
// 用于处理按模拟时间周期触发的行为（如敌人生成、Boss 射击）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}
