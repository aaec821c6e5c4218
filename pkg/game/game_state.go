package game

import (
	"log"

	"github.com/gonewx/invasion/pkg/config"
)

// GameState 存储一局游戏的经济与进度数据
//
// 一局对局中只有一个实例，由 World 持有并显式传递给各系统。
// 重新开始时 ResetRun 只重置本局进度，金币、皮肤和升级保留。
type GameState struct {
	Score     int
	Coins     int
	Health    int
	MaxHealth int

	// 波次进度
	Wave    int
	Kills   int // 本波击杀数
	Spawned int // 本波已生成的敌人数
	Lost    int // 本波未被击杀就消失的敌人数（越界或撞击玩家）

	// 玩家属性（由升级决定）
	FireRateMs       int
	ProjectileRadius float64

	UpgradeLevels map[config.UpgradeKind]int
	OwnedSkins    map[string]bool
	EquippedSkin  string

	// 阶段状态，见 phase.go
	phase               Phase
	pauseReturn         Phase   // 取消暂停后返回的阶段
	shopReturn          Phase   // 关闭商店后返回的阶段
	transitionRemaining float64 // 波次过场剩余时间（秒）
	banner              string  // 当前过场提示语
	startWave           int

	tuning  *config.Tuning
	catalog *config.Catalog
}

// NewGameState 创建初始游戏状态
// startWave 小于 1 时从第 1 波开始
func NewGameState(tuning *config.Tuning, catalog *config.Catalog, startWave int) *GameState {
	if startWave < 1 {
		startWave = 1
	}
	defaultSkin := catalog.DefaultSkin().Key
	gs := &GameState{
		MaxHealth:        tuning.Player.StartHealth,
		FireRateMs:       tuning.Player.StartFireRateMs,
		ProjectileRadius: tuning.Player.StartProjectileRadius,
		UpgradeLevels:    make(map[config.UpgradeKind]int),
		OwnedSkins:       map[string]bool{defaultSkin: true},
		EquippedSkin:     defaultSkin,
		startWave:        startWave,
		tuning:           tuning,
		catalog:          catalog,
	}
	gs.ResetRun()
	return gs
}

// ResetRun 重置本局进度
// 保留金币、已拥有的皮肤、升级等级以及升级带来的属性
func (gs *GameState) ResetRun() {
	gs.Score = 0
	gs.Health = gs.MaxHealth
	gs.Wave = gs.startWave
	gs.resetWaveCounters()
	gs.phase = PhaseNotStarted
	gs.pauseReturn = PhaseNotStarted
	gs.shopReturn = PhaseNotStarted
	gs.transitionRemaining = 0
	gs.banner = ""
}

func (gs *GameState) resetWaveCounters() {
	gs.Kills = 0
	gs.Spawned = 0
	gs.Lost = 0
}

// ApplyDamage 扣除生命值，结果限制在 [0, MaxHealth]
// 返回扣除后生命值是否归零
func (gs *GameState) ApplyDamage(amount int) bool {
	gs.Health -= amount
	if gs.Health < 0 {
		gs.Health = 0
	}
	if gs.Health > gs.MaxHealth {
		gs.Health = gs.MaxHealth
	}
	return gs.Health == 0
}

// AddScore 增加分数，忽略负数
func (gs *GameState) AddScore(amount int) {
	if amount > 0 {
		gs.Score += amount
	}
}

// AddCoins 增加金币，忽略负数
func (gs *GameState) AddCoins(amount int) {
	if amount > 0 {
		gs.Coins += amount
	}
}

// SpendCoins 扣除金币，如果金币不足返回 false
// 只有当金币充足时才会扣除
func (gs *GameState) SpendCoins(amount int) bool {
	if amount < 0 || gs.Coins < amount {
		return false
	}
	gs.Coins -= amount
	return true
}

// ========== 波次进度 ==========

// Quota 返回当前波次需要击杀的敌人数量
func (gs *GameState) Quota() int {
	return gs.tuning.Quota(gs.Wave)
}

// IsBossWave 当前是否为 Boss 波次
func (gs *GameState) IsBossWave() bool {
	return gs.tuning.IsBossWave(gs.Wave)
}

// CanSpawnEnemy 判断本波是否还需要生成敌人
// 已击杀数加上仍存活的敌人数达到配额后停止生成
func (gs *GameState) CanSpawnEnemy() bool {
	if gs.IsBossWave() {
		return false
	}
	return gs.Spawned-gs.Lost < gs.Quota()
}

// RecordSpawn 记录一次敌人生成
func (gs *GameState) RecordSpawn() {
	gs.Spawned++
}

// RecordKill 记录一次击杀
func (gs *GameState) RecordKill() {
	gs.Kills++
}

// RecordLoss 记录一个未被击杀就消失的敌人，它的配额名额重新开放
func (gs *GameState) RecordLoss() {
	gs.Lost++
}

// IsWaveComplete 判断普通波次是否完成
// 击杀数达到配额且场上没有存活敌人
func (gs *GameState) IsWaveComplete(aliveEnemies int) bool {
	if gs.IsBossWave() {
		return false
	}
	return gs.Kills >= gs.Quota() && aliveEnemies == 0
}

// AdvanceWave 进入下一波并重置本波计数
func (gs *GameState) AdvanceWave() {
	gs.Wave++
	gs.resetWaveCounters()
	log.Printf("[GameState] 进入第 %d 波，配额 %d", gs.Wave, gs.Quota())
}

// ========== 商店 ==========

// BuySkin 购买或装备皮肤
// 已拥有的皮肤直接装备；未拥有时金币足够则购买并装备
// 未知皮肤或金币不足时返回 false，状态不变
func (gs *GameState) BuySkin(key string) bool {
	skin, ok := gs.catalog.GetSkin(key)
	if !ok {
		return false
	}
	if gs.OwnedSkins[key] {
		gs.EquippedSkin = key
		return true
	}
	if !gs.SpendCoins(skin.Price) {
		return false
	}
	gs.OwnedSkins[key] = true
	gs.EquippedSkin = key
	log.Printf("[GameState] 购买皮肤 %s，花费 %d", skin.Name, skin.Price)
	return true
}

// BuyUpgrade 购买升级项的下一档
// 已满级、未知升级项或金币不足时返回 false，状态不变
func (gs *GameState) BuyUpgrade(kind config.UpgradeKind) bool {
	tier, ok := gs.catalog.GetTier(kind, gs.UpgradeLevels[kind])
	if !ok {
		return false
	}
	if !gs.SpendCoins(tier.Price) {
		return false
	}
	gs.UpgradeLevels[kind]++

	switch kind {
	case config.UpgradeFireRate:
		gs.FireRateMs = tier.Value
	case config.UpgradeHealth:
		// 生命上限提升时同时回满
		gs.MaxHealth = tier.Value
		gs.Health = tier.Value
	case config.UpgradeProjectileSize:
		gs.ProjectileRadius = float64(tier.Value)
	}
	log.Printf("[GameState] 升级 %s 到 %d 级，花费 %d", kind, gs.UpgradeLevels[kind], tier.Price)
	return true
}

// NextUpgrade 返回升级项的下一档，已满级时返回 false
func (gs *GameState) NextUpgrade(kind config.UpgradeKind) (config.UpgradeTier, bool) {
	return gs.catalog.GetTier(kind, gs.UpgradeLevels[kind])
}

// Skin 返回当前装备的皮肤
func (gs *GameState) Skin() config.Skin {
	if skin, ok := gs.catalog.GetSkin(gs.EquippedSkin); ok {
		return skin
	}
	return gs.catalog.DefaultSkin()
}
