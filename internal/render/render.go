// Package render rasterises viewer frames into RGBA buffers.
package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"

	"github.com/example/photoviewer/internal/theme"
)

const checkerSize = 8

// ButtonState is the interaction state a button is drawn in.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Kind selects how a layer is painted.
type Kind int

const (
	// KindPhoto draws Image scaled into Rect above a drop shadow.
	KindPhoto Kind = iota
	// KindPanel fills Rect with the panel background.
	KindPanel
	// KindButton draws a bordered button with a centred Label.
	KindButton
)

// Layer is one painted element, in window coordinates.
type Layer struct {
	Kind  Kind
	Rect  image.Rectangle
	Image image.Image
	Label string
	State ButtonState
}

// Frame is an immutable snapshot of everything on screen.
type Frame struct {
	Size    image.Point
	Theme   *theme.Theme
	Shadow  ShadowOptions
	Layers  []Layer
	Message string
}

// Renderer draws frames and keeps caches between them. It is not safe
// for concurrent use.
type Renderer struct {
	backdrop    *image.RGBA
	backdropKey backdropKey

	shadow    *image.Alpha
	shadowKey shadowKey
}

type shadowKey struct {
	box, window image.Rectangle
	radius      int
}

// NewRenderer returns a Renderer with empty caches.
func NewRenderer() *Renderer { return &Renderer{} }

// Draw paints f into dst back to front. It stops early and returns the
// context error when ctx is cancelled.
func (r *Renderer) Draw(ctx context.Context, dst *image.RGBA, f Frame) error {
	th := f.Theme
	if th == nil {
		th = theme.Default()
	}
	r.drawBackdrop(dst, th.CheckerLight, th.CheckerDark)
	for _, l := range f.Layers {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch l.Kind {
		case KindPhoto:
			if err := r.drawPhoto(ctx, dst, l, th, f.Shadow); err != nil {
				return err
			}
		case KindPanel:
			draw.Draw(dst, l.Rect, image.NewUniform(th.PanelBackground), image.Point{}, draw.Over)
		case KindButton:
			drawButton(dst, l, th)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.Message != "" {
		drawMessage(dst, f.Message, th)
	}
	return nil
}

// drawPhoto paints the shadow and the scaled photo. Both are limited to
// dst, so the cost does not grow with the zoom level.
func (r *Renderer) drawPhoto(ctx context.Context, dst *image.RGBA, l Layer, th *theme.Theme, opts ShadowOptions) error {
	if l.Rect.Empty() || l.Image == nil {
		return nil
	}
	b := dst.Bounds()
	shadowBox := l.Rect.Add(opts.Offset)
	if !l.Rect.Overlaps(b) && !shadowBox.Inset(-opts.Radius).Overlaps(b) {
		return nil
	}
	key := shadowKey{box: shadowBox, window: b, radius: opts.Radius}
	if r.shadow == nil || r.shadowKey != key {
		r.shadow = ShadowMask(shadowBox, b, opts.Radius)
		r.shadowKey = key
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	mb := r.shadow.Bounds()
	draw.DrawMask(dst, mb, image.NewUniform(th.Shadow), image.Point{}, r.shadow, mb.Min, draw.Over)

	// Scale clips to dst, so only the visible part is resampled.
	xdraw.ApproxBiLinear.Scale(dst, l.Rect, l.Image, l.Image.Bounds(), xdraw.Over, nil)
	return nil
}

func drawButton(dst *image.RGBA, l Layer, th *theme.Theme) {
	bg := th.ButtonBackground
	switch l.State {
	case StateHover:
		bg = th.ButtonBackgroundHover
	case StatePressed:
		bg = th.ButtonBackgroundPress
	}
	draw.Draw(dst, l.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	drawRect(dst, l.Rect, th.ButtonBorder, 1)
	if l.Label != "" {
		drawCentered(dst, l.Rect, basicfont.Face7x13, th.ButtonText, l.Label)
	}
}

func drawMessage(dst *image.RGBA, msg string, th *theme.Theme) {
	face := overlayFace()
	b := dst.Bounds()
	w := MeasureWith(face, msg)
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	rect := image.Rect(0, 0, w+24, h+24).Add(image.Pt(b.Min.X+(b.Dx()-w-24)/2, b.Min.Y+(b.Dy()-h-24)/2))
	draw.Draw(dst, rect, image.NewUniform(th.MessageBackground), image.Point{}, draw.Over)
	drawRect(dst, rect, th.MessageBorder, 2)
	drawCentered(dst, rect, face, th.MessageText, msg)
}

// drawRect outlines rect with lines thick pixels wide, inside rect.
func drawRect(dst *image.RGBA, rect image.Rectangle, col color.RGBA, thick int) {
	u := image.NewUniform(col)
	for _, edge := range []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thick),
		image.Rect(rect.Min.X, rect.Max.Y-thick, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thick, rect.Max.Y),
		image.Rect(rect.Max.X-thick, rect.Min.Y, rect.Max.X, rect.Max.Y),
	} {
		draw.Draw(dst, edge.Intersect(rect), u, image.Point{}, draw.Src)
	}
}
