package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	messageFaceOnce sync.Once
	messageFace     font.Face = basicfont.Face7x13
)

// overlayFace returns the large face used for messages, falling back to
// basicfont if Go Regular cannot be loaded.
func overlayFace() font.Face {
	messageFaceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 28, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return
		}
		messageFace = face
	})
	return messageFace
}

// drawCentered writes s centred in rect.
func drawCentered(dst *image.RGBA, rect image.Rectangle, face font.Face, col color.Color, s string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	m := face.Metrics()
	w := d.MeasureString(s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	x := rect.Min.X + (rect.Dx()-w)/2
	y := rect.Min.Y + (rect.Dy()-h)/2 + m.Ascent.Ceil()
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// MeasureLabel reports the pixel width of a button label.
func MeasureLabel(s string) int {
	return MeasureWith(basicfont.Face7x13, s)
}

// MeasureWith reports the pixel width of s in face.
func MeasureWith(face font.Face, s string) int {
	return (&font.Drawer{Face: face}).MeasureString(s).Ceil()
}
