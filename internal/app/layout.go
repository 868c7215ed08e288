package app

import (
	"image"

	"github.com/example/photoviewer/internal/render"
	"github.com/example/photoviewer/internal/scene"
	"github.com/example/photoviewer/internal/viewer"
)

const (
	panelHeight  = 44
	buttonHeight = 28
	buttonGap    = 6
	buttonPad    = 16
	buttonMinW   = 48
)

const (
	classDraggable = "draggable"
	classPanel     = "controlContainer"
	classControl   = "control"
	idPhoto        = "photo"
	idStage        = "stage"
)

var controlLabels = map[string]string{
	viewer.ControlLeft:     "Left",
	viewer.ControlUp:       "Up",
	viewer.ControlDown:     "Down",
	viewer.ControlRight:    "Right",
	viewer.ControlIncrease: "Zoom +",
	viewer.ControlReduce:   "Zoom -",
	viewer.ControlBack:     "Reset",
}

// layout is the node tree the viewer works on.
type layout struct {
	doc       *scene.Document
	stage     *scene.Node
	photo     *scene.Node
	container *scene.Node
	buttons   map[string]*scene.Node
}

// fitSize scales content down, never up, to fit inside avail while
// keeping its aspect ratio.
func fitSize(content, avail image.Point) (float64, float64) {
	w, h := float64(content.X), float64(content.Y)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	s := 1.0
	if aw := float64(avail.X); aw > 0 && w*s > aw {
		s = aw / w
	}
	if ah := float64(avail.Y); ah > 0 && h*s > ah {
		s = ah / h
	}
	if h*s < 1 {
		s = 1 / h
	}
	return w * s, h * s
}

// buildLayout creates the document for a window of the given size with
// img placed at the top left of the stage.
func buildLayout(size image.Point, img image.Image) *layout {
	l := &layout{
		doc:     scene.NewDocument(float64(size.X), float64(size.Y)),
		buttons: make(map[string]*scene.Node, len(viewer.Controls)),
	}
	l.stage = l.doc.Root().AppendChild(scene.NewNode(idStage, "", 0, 0))

	stageSize := image.Pt(size.X, size.Y-panelHeight)
	w, h := fitSize(img.Bounds().Size(), stageSize)
	l.photo = l.stage.AppendChild(scene.NewNode(idPhoto, classDraggable, w, h))
	l.photo.Image = img

	l.container = l.doc.Root().AppendChild(scene.NewNode("", classPanel, 0, panelHeight))
	l.container.SetPosition(scene.PositionAbsolute)
	for _, id := range viewer.Controls {
		b := l.container.AppendChild(scene.NewNode(id, classControl, 0, buttonHeight))
		b.Label = controlLabels[id]
		b.SetPosition(scene.PositionAbsolute)
		b.SetWidth(float64(max(render.MeasureLabel(b.Label)+buttonPad, buttonMinW)))
		l.buttons[id] = b
	}
	l.resize(size)
	return l
}

// resize re-anchors the stage and the bottom control bar. The photo
// keeps whatever geometry the controllers gave it.
func (l *layout) resize(size image.Point) {
	w, h := float64(size.X), float64(size.Y)
	l.doc.Resize(w, h)
	l.stage.SetWidth(w)
	l.stage.SetHeight(max(h-panelHeight, 0))

	l.container.SetLeft(0)
	l.container.SetTop(h - panelHeight)
	l.container.SetWidth(w)

	total := float64(buttonGap * (len(viewer.Controls) - 1))
	for _, id := range viewer.Controls {
		total += l.buttons[id].Style().Width
	}
	x := max((w-total)/2, buttonGap)
	for _, id := range viewer.Controls {
		b := l.buttons[id]
		b.SetLeft(x)
		b.SetTop((panelHeight - buttonHeight) / 2)
		x += b.Style().Width + buttonGap
	}
}

// frame snapshots the tree into render layers, back to front.
func (l *layout) frame(hover, pressed *scene.Node) []render.Layer {
	var layers []render.Layer
	l.doc.Root().Walk(func(n *scene.Node) {
		rect := l.doc.Measure(n).Rect()
		switch {
		case n == l.photo:
			layers = append(layers, render.Layer{Kind: render.KindPhoto, Rect: rect, Image: n.Image})
		case n == l.container:
			layers = append(layers, render.Layer{Kind: render.KindPanel, Rect: rect})
		case n.Class == classControl:
			st := render.StateDefault
			switch {
			case n == pressed && n == hover:
				st = render.StatePressed
			case n == hover && pressed == nil:
				st = render.StateHover
			}
			layers = append(layers, render.Layer{Kind: render.KindButton, Rect: rect, Label: n.Label, State: st})
		}
	})
	return layers
}
