package render

import "image/color"

// fillVerticalGradientRGBA writes a top-to-bottom linear gradient into buf,
// which must hold 4*w*h bytes of RGBA pixels.
func fillVerticalGradientRGBA(buf []byte, w, h int, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		k := 0.0
		if h > 1 {
			k = float64(y) / float64(h-1)
		}
		r := uint8(float64(top.R) + (float64(bottom.R)-float64(top.R))*k)
		g := uint8(float64(top.G) + (float64(bottom.G)-float64(top.G))*k)
		b := uint8(float64(top.B) + (float64(bottom.B)-float64(top.B))*k)
		a := uint8(float64(top.A) + (float64(bottom.A)-float64(top.A))*k)
		base := y * w * 4
		for x := 0; x < w; x++ {
			i := base + x*4
			buf[i+0] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = a
		}
	}
}
