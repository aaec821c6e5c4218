package game

import "log"

// Phase 对局阶段
type Phase int

const (
	// PhaseNotStarted 标题画面，等待开始
	PhaseNotStarted Phase = iota
	// PhasePlaying 正常进行，模拟逐步推进
	PhasePlaying
	// PhasePaused 暂停
	PhasePaused
	// PhaseShopping 商店打开，模拟暂停
	PhaseShopping
	// PhaseWaveTransition 波次过场，只推进过场计时
	PhaseWaveTransition
	// PhaseGameOver 游戏结束，只能通过 Restart 离开
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseShopping:
		return "Shopping"
	case PhaseWaveTransition:
		return "WaveTransition"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Phase 返回当前阶段
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// IsPlaying 模拟是否应该推进
func (gs *GameState) IsPlaying() bool {
	return gs.phase == PhasePlaying
}

// IsGameOver 是否已结束
func (gs *GameState) IsGameOver() bool {
	return gs.phase == PhaseGameOver
}

// Banner 返回当前波次过场的提示语
func (gs *GameState) Banner() string {
	return gs.banner
}

// TransitionRemaining 返回波次过场剩余时间（秒）
func (gs *GameState) TransitionRemaining() float64 {
	return gs.transitionRemaining
}

func (gs *GameState) setPhase(p Phase) {
	if gs.phase != p {
		log.Printf("[GameState] 阶段切换: %s -> %s", gs.phase, p)
	}
	gs.phase = p
}

// Start 从标题画面开始游戏，先播放第一波的过场
func (gs *GameState) Start() bool {
	if gs.phase != PhaseNotStarted {
		return false
	}
	gs.BeginWaveTransition()
	return true
}

// BeginWaveTransition 进入当前波次的过场
func (gs *GameState) BeginWaveTransition() {
	gs.transitionRemaining = gs.tuning.WaveTransition
	gs.banner = gs.catalog.WaveBanner(gs.Wave, gs.tuning.Boss.Wave)
	gs.setPhase(PhaseWaveTransition)
}

// UpdateTransition 推进波次过场计时
// 过场结束时切换到 Playing 并返回 true
func (gs *GameState) UpdateTransition(deltaTime float64) bool {
	if gs.phase != PhaseWaveTransition {
		return false
	}
	gs.transitionRemaining -= deltaTime
	if gs.transitionRemaining > 0 {
		return false
	}
	gs.transitionRemaining = 0
	gs.setPhase(PhasePlaying)
	return true
}

// TogglePause 在 Playing/WaveTransition 与 Paused 之间切换
// 其它阶段调用无效，返回 false
func (gs *GameState) TogglePause() bool {
	switch gs.phase {
	case PhasePlaying, PhaseWaveTransition:
		gs.pauseReturn = gs.phase
		gs.setPhase(PhasePaused)
		return true
	case PhasePaused:
		gs.setPhase(gs.pauseReturn)
		return true
	}
	return false
}

// OpenShop 打开商店，记住打开前的阶段
// 商店已打开时返回 false
func (gs *GameState) OpenShop() bool {
	if gs.phase == PhaseShopping {
		return false
	}
	gs.shopReturn = gs.phase
	gs.setPhase(PhaseShopping)
	return true
}

// CloseShop 关闭商店并返回打开前的阶段
func (gs *GameState) CloseShop() bool {
	if gs.phase != PhaseShopping {
		return false
	}
	gs.setPhase(gs.shopReturn)
	return true
}

// EnterGameOver 进入游戏结束阶段，只生效一次
func (gs *GameState) EnterGameOver() bool {
	if gs.phase == PhaseGameOver {
		return false
	}
	gs.setPhase(PhaseGameOver)
	log.Printf("[GameState] 游戏结束: 分数 %d，波次 %d，金币 %d", gs.Score, gs.Wave, gs.Coins)
	return true
}

// Restart 游戏结束后重新开始
// 重置本局进度并播放起始波次的过场
func (gs *GameState) Restart() bool {
	if gs.phase != PhaseGameOver {
		return false
	}
	gs.ResetRun()
	gs.BeginWaveTransition()
	return true
}
