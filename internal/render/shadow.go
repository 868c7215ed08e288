package render

import (
	"image"
)

// ShadowOptions configures the drop shadow drawn under the photo.
type ShadowOptions struct {
	Radius int
	Offset image.Point
}

// DefaultShadowOptions returns a soft shadow offset down and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{Radius: 12, Offset: image.Pt(8, 8)}
}

// BoxShadow returns the blurred coverage mask of a size.X by size.Y box,
// padded by radius on every side. The mask origin sits radius pixels up
// and left of the box.
func BoxShadow(size image.Point, radius int) *image.Alpha {
	if size.X <= 0 || size.Y <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	radius = max(radius, 0)
	box := image.Rect(radius, radius, radius+size.X, radius+size.Y)
	return ShadowMask(box, box.Inset(-radius), radius)
}

// ShadowMask returns the blurred coverage of box for the pixels inside
// window only. The mask is bounded by window and shares box's
// coordinates, so its size never exceeds the window.
func ShadowMask(box, window image.Rectangle, radius int) *image.Alpha {
	radius = max(radius, 0)
	window = window.Intersect(box.Inset(-radius))
	if box.Empty() || window.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	// blurring a pixel reads at most radius pixels away in each axis
	work := image.NewAlpha(window.Inset(-radius))
	fill := box.Intersect(work.Rect)
	for y := fill.Min.Y; y < fill.Max.Y; y++ {
		row := work.Pix[work.PixOffset(fill.Min.X, y):work.PixOffset(fill.Max.X, y)]
		for i := range row {
			row[i] = 0xff
		}
	}
	boxBlur(work, radius)
	return work.SubImage(window).(*image.Alpha)
}

// boxBlur applies a separable box blur of the given radius in place.
func boxBlur(img *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	tmp := make([]uint8, w*h)
	div := 2*radius + 1

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp[y*w+x] = uint8((prefix[x1+1] - prefix[x0]) / div)
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp[y*w+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			img.Pix[y*img.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / div)
		}
	}
}
