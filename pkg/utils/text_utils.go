package utils

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// NewBitmapFace 返回内置的 7x13 点阵字体
// 游戏不携带字体文件，所有文字都用这款字体按比例放大绘制
func NewBitmapFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// TextStyle 文字绘制参数
type TextStyle struct {
	Scale float64     // 缩放倍数，0 视为 1
	Align text.Align  // 水平对齐方式，锚点为 (x, y)
	Color color.Color // nil 时为白色
}

// DrawText 在 (x, y) 处绘制单行文字，y 为文字顶部
func DrawText(screen *ebiten.Image, str string, face text.Face, x, y float64, style TextStyle) {
	if str == "" || face == nil {
		return
	}
	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = style.Align
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	if style.Color != nil {
		op.ColorScale.ScaleWithColor(style.Color)
	}
	text.Draw(screen, str, face, op)
}

// MeasureText 返回文字在指定缩放下的宽高
func MeasureText(str string, face text.Face, scale float64) (float64, float64) {
	if str == "" || face == nil {
		return 0, 0
	}
	if scale <= 0 {
		scale = 1
	}
	w, h := text.Measure(str, face, 0)
	return w * scale, h * scale
}

// WrapText 将文本按单词换行，使每行宽度不超过 maxWidth
// 单个单词超宽时独占一行
func WrapText(str string, face text.Face, scale, maxWidth float64) []string {
	if str == "" || face == nil || maxWidth <= 0 {
		return []string{str}
	}
	if w, _ := MeasureText(str, face, scale); w <= maxWidth {
		return []string{str}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(str) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if w, _ := MeasureText(candidate, face, scale); w <= maxWidth || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{str}
	}
	return lines
}
