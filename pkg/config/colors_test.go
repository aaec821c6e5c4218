package config

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{name: "红色", hex: "#dc2626", want: color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 255}},
		{name: "大写", hex: "#FBBF24", want: color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 255}},
		{name: "短格式", hex: "#fff", want: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{name: "缺少井号", hex: "dc2626", wantErr: true},
		{name: "非法字符", hex: "#zzzzzz", wantErr: true},
		{name: "空字符串", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseHexColor(%q) expected error, got %v", tt.hex, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHexColorsReportsIndex(t *testing.T) {
	_, err := parseHexColors("boss.palette", []string{"#ffffff", "bad"})
	if err == nil {
		t.Fatal("expected error for invalid palette entry")
	}
	if got := err.Error(); !strings.HasPrefix(got, "boss.palette[1]") {
		t.Errorf("error should name the offending index, got %q", got)
	}
}

func TestBlendColor(t *testing.T) {
	red := color.RGBA{R: 255, A: 200}
	blue := color.RGBA{B: 255, A: 255}

	// Lab 往返转换有舍入误差
	if got := BlendColor(red, blue, 0); got.R < 250 || got.B > 5 {
		t.Errorf("BlendColor(t=0) = %v, want red", got)
	}
	if got := BlendColor(red, blue, 1); got.B < 250 || got.R > 5 {
		t.Errorf("BlendColor(t=1) = %v, want blue", got)
	}
	if got := BlendColor(red, blue, 0.5); got.A != 200 {
		t.Errorf("BlendColor should keep alpha of the first color, got %d", got.A)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	tests := []struct {
		alpha float64
		want  uint8
	}{
		{alpha: 1, want: 255},
		{alpha: 0, want: 0},
		{alpha: -0.5, want: 0},
		{alpha: 2, want: 255},
		{alpha: 0.5, want: 127},
	}
	for _, tt := range tests {
		got := WithAlpha(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("WithAlpha(%.2f).A = %d, want %d", tt.alpha, got.A, tt.want)
		}
		if got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("WithAlpha changed RGB channels: %v", got)
		}
	}
}
