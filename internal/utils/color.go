// internal/utils/color.go
package utils

import "image/color"

// LerpColor линейно интерполирует между двумя цветами по каждому каналу.
// При t=0 возвращает ровно a, при t=1 ровно b.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// ScaleAlpha возвращает цвет с альфой, умноженной на k (0..1).
func ScaleAlpha(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	}
	if k > 1 {
		k = 1
	}
	c.A = uint8(float64(c.A) * k)
	return c
}
