package render

import (
	"image"
	"image/color"
	"image/draw"
)

// drawCheckerboard fills rect of dst with squares of the given size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.SetRGBA(x, y, light)
			} else {
				dst.SetRGBA(x, y, dark)
			}
		}
	}
}

type backdropKey struct {
	bounds      image.Rectangle
	light, dark color.RGBA
}

// drawBackdrop fills dst with a checkerboard cached per size and palette.
func (r *Renderer) drawBackdrop(dst *image.RGBA, light, dark color.RGBA) {
	key := backdropKey{dst.Bounds(), light, dark}
	if r.backdrop == nil || r.backdropKey != key {
		r.backdrop = image.NewRGBA(key.bounds)
		drawCheckerboard(r.backdrop, key.bounds, checkerSize, light, dark)
		r.backdropKey = key
	}
	draw.Draw(dst, key.bounds, r.backdrop, key.bounds.Min, draw.Src)
}
