package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor 将 "#rrggbb" 格式的颜色字符串解析为不透明的 color.RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// parseHexColors 批量解析颜色，出错时返回出错项的下标
func parseHexColors(field string, hexes []string) ([]color.RGBA, error) {
	result := make([]color.RGBA, 0, len(hexes))
	for i, hex := range hexes {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		result = append(result, c)
	}
	return result, nil
}

// BlendColor 在 Lab 色彩空间中混合两种颜色
// t=0 返回 a，t=1 返回 b；alpha 取 a 的值
func BlendColor(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(color.RGBA{R: a.R, G: a.G, B: a.B, A: 255})
	cb, _ := colorful.MakeColor(color.RGBA{R: b.R, G: b.G, B: b.B, A: 255})
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: a.A}
}

// WithAlpha 返回指定透明度的非预乘颜色
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
