//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Gradient paints a cached vertical-gradient background image.
type Gradient struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGradient allocates and fills a w*h gradient running from top to bottom.
func NewGradient(w, h int, top, bottom color.RGBA) *Gradient {
	g := &Gradient{w: w, h: h, buf: make([]byte, 4*w*h)}
	g.img = ebiten.NewImage(w, h)
	fillVerticalGradientRGBA(g.buf, w, h, top, bottom)
	g.img.WritePixels(g.buf)
	return g
}

// Draw blits the gradient onto dst at the origin.
func (g *Gradient) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	dst.DrawImage(g.img, op)
}

// Size returns the dimensions of the underlying image.
func (g *Gradient) Size() (int, int) { return g.w, g.h }
