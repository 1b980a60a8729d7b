package core

import "testing"

func TestWarmColor(t *testing.T) {
	tests := []struct {
		hue  float64
		want Color
	}{
		{-5, ColorBrightRed},
		{0, ColorBrightRed},
		{19.9, ColorBrightRed},
		{20, ColorOrange},
		{39, ColorOrange},
		{40, ColorYellow},
		{75, ColorYellow},
	}
	for _, tc := range tests {
		if got := WarmColor(tc.hue); got != tc.want {
			t.Errorf("WarmColor(%g) = %d, expected %d", tc.hue, got, tc.want)
		}
	}
}

func TestDim(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorBrightRed, ColorRed},
		{ColorBrightCyan, ColorCyan},
		{ColorOrange, ColorYellow},
		{ColorGray, ColorDarkGray},
		{ColorDarkGray, ColorDarkGray},
		{ColorDefault, ColorDefault},
	}
	for _, tc := range tests {
		if got := tc.in.Dim(); got != tc.want {
			t.Errorf("%d.Dim() = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
