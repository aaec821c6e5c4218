package config

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invasion/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ArenaTuning 场地边界配置
type ArenaTuning struct {
	Width       float64 `yaml:"width"`       // 场地宽度
	Height      float64 `yaml:"height"`      // 场地高度
	EnemyMargin float64 `yaml:"enemyMargin"` // 敌人越界判定的额外边距
}

// AvatarTuning 玩家角色配置
type AvatarTuning struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Size           float64 `yaml:"size"`
	MuzzleDistance float64 `yaml:"muzzleDistance"` // 子弹生成点距角色中心的距离
	FlameStep      float64 `yaml:"flameStep"`      // 喷射火焰相位每步增量（弧度）
}

// PlayerTuning 玩家初始属性
type PlayerTuning struct {
	StartHealth           int     `yaml:"startHealth"`
	StartFireRateMs       int     `yaml:"startFireRateMs"`       // 射击冷却（毫秒）
	StartProjectileRadius float64 `yaml:"startProjectileRadius"` // 子弹半径
	ProjectileSpeed       float64 `yaml:"projectileSpeed"`       // 子弹速度（像素/步）
}

// EnemyTuning 普通敌人配置
type EnemyTuning struct {
	Size            float64 `yaml:"size"`
	SpawnInterval   float64 `yaml:"spawnInterval"` // 生成间隔（秒）
	SpawnOffset     float64 `yaml:"spawnOffset"`   // 生成点在场地外的距离
	BaseSpeedMin    float64 `yaml:"baseSpeedMin"`
	BaseSpeedMax    float64 `yaml:"baseSpeedMax"`
	SpeedPerWave    float64 `yaml:"speedPerWave"`
	ContactDistance float64 `yaml:"contactDistance"` // 撞击玩家的判定距离
	ContactDamage   int     `yaml:"contactDamage"`
	KillScore       int     `yaml:"killScore"`
	KillCoins       int     `yaml:"killCoins"`
	QuotaBase       int     `yaml:"quotaBase"`
	QuotaPerWave    int     `yaml:"quotaPerWave"`
}

// BossTuning Boss 配置
type BossTuning struct {
	Wave              int      `yaml:"wave"` // Boss 出现的波次
	X                 float64  `yaml:"x"`
	Y                 float64  `yaml:"y"`
	Size              float64  `yaml:"size"`
	Health            int      `yaml:"health"`
	SpeedX            float64  `yaml:"speedX"`
	MinX              float64  `yaml:"minX"`
	MaxX              float64  `yaml:"maxX"`
	FireInterval      float64  `yaml:"fireInterval"` // 射击间隔（秒）
	ProjectileSpeed   float64  `yaml:"projectileSpeed"`
	ProjectileRadius  float64  `yaml:"projectileRadius"`
	InterceptDistance float64  `yaml:"interceptDistance"` // Boss 子弹被玩家子弹拦截的判定距离
	HitDistance       float64  `yaml:"hitDistance"`       // Boss 子弹命中玩家的判定距离
	HitDamage         int      `yaml:"hitDamage"`
	HitScore          int      `yaml:"hitScore"` // 玩家每次命中 Boss 获得的分数
	Palette           []string `yaml:"palette"`
}

// EffectTuning 爆炸与粒子配置（纯视觉）
type EffectTuning struct {
	ExplosionGrowth  float64  `yaml:"explosionGrowth"`
	ExplosionFade    float64  `yaml:"explosionFade"`
	ParticleCount    int      `yaml:"particleCount"`
	ParticleLife     int      `yaml:"particleLife"` // 粒子寿命（步）
	ParticleSpeedMin float64  `yaml:"particleSpeedMin"`
	ParticleSpeedMax float64  `yaml:"particleSpeedMax"`
	ParticleColors   []string `yaml:"particleColors"`
}

// Tuning 游戏数值配置
type Tuning struct {
	Arena          ArenaTuning  `yaml:"arena"`
	Avatar         AvatarTuning `yaml:"avatar"`
	Player         PlayerTuning `yaml:"player"`
	Enemy          EnemyTuning  `yaml:"enemy"`
	Boss           BossTuning   `yaml:"boss"`
	Effects        EffectTuning `yaml:"effects"`
	WaveTransition float64      `yaml:"waveTransition"` // 波次过场时长（秒）

	bossPalette    []color.RGBA
	particleColors []color.RGBA
}

// DefaultTuning 返回内置的默认数值
// YAML 中缺省的字段保持这里的值
func DefaultTuning() *Tuning {
	t := &Tuning{
		Arena: ArenaTuning{Width: GameWindowWidth, Height: GameWindowHeight, EnemyMargin: 100},
		Avatar: AvatarTuning{
			X: 400, Y: 300, Size: 60,
			MuzzleDistance: 40,
			FlameStep:      0.2,
		},
		Player: PlayerTuning{
			StartHealth:           100,
			StartFireRateMs:       200,
			StartProjectileRadius: 6,
			ProjectileSpeed:       10,
		},
		Enemy: EnemyTuning{
			Size:            40,
			SpawnInterval:   1.5,
			SpawnOffset:     50,
			BaseSpeedMin:    2.0,
			BaseSpeedMax:    3.5,
			SpeedPerWave:    0.3,
			ContactDistance: 50,
			ContactDamage:   10,
			KillScore:       100,
			KillCoins:       1,
			QuotaBase:       5,
			QuotaPerWave:    2,
		},
		Boss: BossTuning{
			Wave: 11, X: 400, Y: 100, Size: 80, Health: 100,
			SpeedX: 2, MinX: 100, MaxX: 700,
			FireInterval:      2.0,
			ProjectileSpeed:   3,
			ProjectileRadius:  12,
			InterceptDistance: 20,
			HitDistance:       40,
			HitDamage:         15,
			HitScore:          50,
			Palette:           []string{"#9333ea", "#ef4444", "#3b82f6", "#22c55e", "#f59e0b", "#eab308"},
		},
		Effects: EffectTuning{
			ExplosionGrowth:  2,
			ExplosionFade:    0.05,
			ParticleCount:    15,
			ParticleLife:     30,
			ParticleSpeedMin: 2,
			ParticleSpeedMax: 5,
			ParticleColors:   []string{"#fbbf24", "#f97316"},
		},
		WaveTransition: 2.5,
	}
	// 内置默认值一定合法
	if err := t.compile(); err != nil {
		panic(fmt.Sprintf("default tuning is invalid: %v", err))
	}
	return t
}

// LoadTuning 从嵌入的 YAML 文件加载数值配置
func LoadTuning(filepath string) (*Tuning, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", filepath, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", filepath, err)
	}
	return t, nil
}

// ParseTuning 解析 YAML 数据，未出现的字段使用默认值
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.compile(); err != nil {
		return nil, err
	}
	return t, nil
}

// compile 校验配置并预解析颜色
func (t *Tuning) compile() error {
	if err := validateTuning(t); err != nil {
		return err
	}
	palette, err := parseHexColors("boss.palette", t.Boss.Palette)
	if err != nil {
		return err
	}
	particles, err := parseHexColors("effects.particleColors", t.Effects.ParticleColors)
	if err != nil {
		return err
	}
	t.bossPalette = palette
	t.particleColors = particles
	return nil
}

// validateTuning 验证数值配置的合法性
func validateTuning(t *Tuning) error {
	if t.Arena.Width <= 0 || t.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %.0fx%.0f", t.Arena.Width, t.Arena.Height)
	}
	if t.Arena.EnemyMargin < 0 {
		return fmt.Errorf("arena.enemyMargin cannot be negative, got %f", t.Arena.EnemyMargin)
	}
	if t.Player.StartHealth <= 0 {
		return fmt.Errorf("player.startHealth must be positive, got %d", t.Player.StartHealth)
	}
	if t.Player.StartFireRateMs < 0 {
		return fmt.Errorf("player.startFireRateMs cannot be negative, got %d", t.Player.StartFireRateMs)
	}
	if t.Player.ProjectileSpeed <= 0 {
		return fmt.Errorf("player.projectileSpeed must be positive, got %f", t.Player.ProjectileSpeed)
	}
	if t.Enemy.SpawnInterval <= 0 {
		return fmt.Errorf("enemy.spawnInterval must be positive, got %f", t.Enemy.SpawnInterval)
	}
	if t.Enemy.BaseSpeedMax < t.Enemy.BaseSpeedMin {
		return fmt.Errorf("enemy.baseSpeedMax (%f) must be >= baseSpeedMin (%f)", t.Enemy.BaseSpeedMax, t.Enemy.BaseSpeedMin)
	}
	if t.Enemy.QuotaBase < 0 || t.Enemy.QuotaPerWave < 0 {
		return fmt.Errorf("enemy quota parameters cannot be negative")
	}
	if t.Enemy.QuotaBase+t.Enemy.QuotaPerWave == 0 {
		return fmt.Errorf("enemy quota must be at least 1 on wave 1")
	}
	if t.Boss.Wave < 1 {
		return fmt.Errorf("boss.wave must be at least 1, got %d", t.Boss.Wave)
	}
	if t.Boss.Health <= 0 {
		return fmt.Errorf("boss.health must be positive, got %d", t.Boss.Health)
	}
	if t.Boss.MinX >= t.Boss.MaxX {
		return fmt.Errorf("boss.minX (%f) must be < boss.maxX (%f)", t.Boss.MinX, t.Boss.MaxX)
	}
	if t.Boss.FireInterval <= 0 {
		return fmt.Errorf("boss.fireInterval must be positive, got %f", t.Boss.FireInterval)
	}
	if len(t.Boss.Palette) == 0 {
		return fmt.Errorf("boss.palette requires at least one color")
	}
	if t.Effects.ParticleCount < 0 || t.Effects.ParticleLife <= 0 {
		return fmt.Errorf("effects: particleCount must be >= 0 and particleLife > 0")
	}
	if t.Effects.ExplosionFade <= 0 {
		return fmt.Errorf("effects.explosionFade must be positive, got %f", t.Effects.ExplosionFade)
	}
	if len(t.Effects.ParticleColors) == 0 {
		return fmt.Errorf("effects.particleColors requires at least one color")
	}
	if t.WaveTransition < 0 {
		return fmt.Errorf("waveTransition cannot be negative, got %f", t.WaveTransition)
	}
	return nil
}

// Quota 返回指定波次需要击杀的敌人数量
func (t *Tuning) Quota(wave int) int {
	return t.Enemy.QuotaBase + t.Enemy.QuotaPerWave*wave
}

// IsBossWave 判断指定波次是否为 Boss 波次
func (t *Tuning) IsBossWave(wave int) bool {
	return wave == t.Boss.Wave
}

// BossPalette 返回 Boss 子弹的颜色表
func (t *Tuning) BossPalette() []color.RGBA {
	return t.bossPalette
}

// ParticleColors 返回爆炸粒子的颜色表
func (t *Tuning) ParticleColors() []color.RGBA {
	return t.particleColors
}
