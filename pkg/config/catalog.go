package config

import (
	"fmt"
	"image/color"

	"github.com/gonewx/invasion/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// UpgradeKind 升级项类型
type UpgradeKind string

const (
	// UpgradeFireRate 射击冷却（毫秒，越小越快）
	UpgradeFireRate UpgradeKind = "fireRate"
	// UpgradeHealth 最大生命值
	UpgradeHealth UpgradeKind = "health"
	// UpgradeProjectileSize 子弹半径
	UpgradeProjectileSize UpgradeKind = "projectileSize"
)

// UpgradeKinds 按商店显示顺序排列的升级项
var UpgradeKinds = []UpgradeKind{UpgradeFireRate, UpgradeHealth, UpgradeProjectileSize}

// Skin 皮肤定义（只读）
type Skin struct {
	Key       string
	Name      string
	Price     int
	Primary   color.RGBA
	Secondary color.RGBA
}

// UpgradeTier 单个升级档位
type UpgradeTier struct {
	Price int `yaml:"price"`
	Value int `yaml:"value"` // 购买后属性变为该值
}

// WaveProfile 波次外观：敌人颜色与过场提示语
type WaveProfile struct {
	Color  color.RGBA
	Banner string
}

// Catalog 商店与波次外观的只读目录
type Catalog struct {
	Skins             []Skin
	Upgrades          map[UpgradeKind][]UpgradeTier
	Waves             []WaveProfile // 下标 0 对应第 1 波
	FallbackWaveColor color.RGBA    // 超出 Waves 范围时的敌人颜色
	BossBanner        string
	VictoryBanner     string // Boss 之后的波次提示语
}

// catalogFile 目录 YAML 文件的原始结构
type catalogFile struct {
	Skins []struct {
		Key       string `yaml:"key"`
		Name      string `yaml:"name"`
		Price     int    `yaml:"price"`
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
	} `yaml:"skins"`
	Upgrades map[UpgradeKind][]UpgradeTier `yaml:"upgrades"`
	Waves    []struct {
		Color  string `yaml:"color"`
		Banner string `yaml:"banner"`
	} `yaml:"waves"`
	FallbackWaveColor string `yaml:"fallbackWaveColor"`
	BossBanner        string `yaml:"bossBanner"`
	VictoryBanner     string `yaml:"victoryBanner"`
}

// LoadCatalog 从嵌入的 YAML 文件加载商店目录
func LoadCatalog(filepath string) (*Catalog, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filepath, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", filepath, err)
	}
	return c, nil
}

// ParseCatalog 解析并校验目录 YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if len(raw.Skins) == 0 {
		return nil, fmt.Errorf("at least one skin is required")
	}

	catalog := &Catalog{
		Upgrades:      make(map[UpgradeKind][]UpgradeTier),
		BossBanner:    raw.BossBanner,
		VictoryBanner: raw.VictoryBanner,
	}

	seen := make(map[string]bool)
	for i, s := range raw.Skins {
		if s.Key == "" {
			return nil, fmt.Errorf("skins[%d]: key cannot be empty", i)
		}
		if seen[s.Key] {
			return nil, fmt.Errorf("skin %s: duplicate key", s.Key)
		}
		seen[s.Key] = true
		if s.Price < 0 {
			return nil, fmt.Errorf("skin %s: price cannot be negative, got %d", s.Key, s.Price)
		}
		primary, err := ParseHexColor(s.Primary)
		if err != nil {
			return nil, fmt.Errorf("skin %s primary: %w", s.Key, err)
		}
		secondary, err := ParseHexColor(s.Secondary)
		if err != nil {
			return nil, fmt.Errorf("skin %s secondary: %w", s.Key, err)
		}
		catalog.Skins = append(catalog.Skins, Skin{
			Key:       s.Key,
			Name:      s.Name,
			Price:     s.Price,
			Primary:   primary,
			Secondary: secondary,
		})
	}
	if catalog.Skins[0].Price != 0 {
		return nil, fmt.Errorf("skin %s: the first skin is the default and must be free", catalog.Skins[0].Key)
	}

	for _, kind := range UpgradeKinds {
		tiers, ok := raw.Upgrades[kind]
		if !ok || len(tiers) == 0 {
			return nil, fmt.Errorf("upgrade %s: at least one tier is required", kind)
		}
		for i, tier := range tiers {
			if tier.Price < 0 {
				return nil, fmt.Errorf("upgrade %s tier %d: price cannot be negative, got %d", kind, i+1, tier.Price)
			}
			if tier.Value <= 0 {
				return nil, fmt.Errorf("upgrade %s tier %d: value must be positive, got %d", kind, i+1, tier.Value)
			}
		}
		catalog.Upgrades[kind] = tiers
	}
	for kind := range raw.Upgrades {
		if _, known := catalog.Upgrades[kind]; !known {
			return nil, fmt.Errorf("unknown upgrade kind %q", kind)
		}
	}

	for i, w := range raw.Waves {
		c, err := ParseHexColor(w.Color)
		if err != nil {
			return nil, fmt.Errorf("waves[%d]: %w", i, err)
		}
		catalog.Waves = append(catalog.Waves, WaveProfile{Color: c, Banner: w.Banner})
	}

	fallback, err := ParseHexColor(raw.FallbackWaveColor)
	if err != nil {
		return nil, fmt.Errorf("fallbackWaveColor: %w", err)
	}
	catalog.FallbackWaveColor = fallback

	return catalog, nil
}

// GetSkin 按 key 查找皮肤
func (c *Catalog) GetSkin(key string) (Skin, bool) {
	for _, s := range c.Skins {
		if s.Key == key {
			return s, true
		}
	}
	return Skin{}, false
}

// DefaultSkin 返回默认皮肤（目录中的第一项）
func (c *Catalog) DefaultSkin() Skin {
	return c.Skins[0]
}

// GetTier 返回升级项在指定等级（0 表示尚未购买）时的下一档
// 已满级时返回 false
func (c *Catalog) GetTier(kind UpgradeKind, level int) (UpgradeTier, bool) {
	tiers := c.Upgrades[kind]
	if level < 0 || level >= len(tiers) {
		return UpgradeTier{}, false
	}
	return tiers[level], true
}

// MaxLevel 返回升级项的最高等级
func (c *Catalog) MaxLevel(kind UpgradeKind) int {
	return len(c.Upgrades[kind])
}

// WaveColor 返回指定波次的敌人颜色
func (c *Catalog) WaveColor(wave int) color.RGBA {
	if wave >= 1 && wave <= len(c.Waves) {
		return c.Waves[wave-1].Color
	}
	return c.FallbackWaveColor
}

// WaveBanner 返回指定波次的过场提示语
func (c *Catalog) WaveBanner(wave, bossWave int) string {
	switch {
	case wave == bossWave:
		return c.BossBanner
	case wave > bossWave:
		return c.VictoryBanner
	case wave >= 1 && wave <= len(c.Waves):
		return c.Waves[wave-1].Banner
	}
	return ""
}
