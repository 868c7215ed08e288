package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/photoviewer/internal/scene"
)

type fixture struct {
	doc       *scene.Document
	img       *scene.Node
	container *scene.Node
	buttons   map[string]*scene.Node
	sched     *manualScheduler
	warnings  []string
	v         *Viewer
}

func newFixture(t *testing.T, width, height float64) *fixture {
	t.Helper()
	f := &fixture{
		doc:     scene.NewDocument(1024, 768),
		sched:   &manualScheduler{},
		buttons: map[string]*scene.Node{},
	}
	f.img = f.doc.Root().AppendChild(scene.NewNode("photo", "draggable", width, height))
	f.container = f.doc.Root().AppendChild(scene.NewNode("", "controlContainer", 1024, 40))
	f.container.SetPosition(scene.PositionAbsolute)
	f.container.SetTop(728)
	for i, id := range Controls {
		b := f.container.AppendChild(scene.NewNode(id, "control", 40, 40))
		b.SetPosition(scene.PositionAbsolute)
		b.SetLeft(float64(i) * 44)
		f.buttons[id] = b
	}
	v, err := Enable(f.doc, f.doc.Root(), f.container, f.img,
		WithScheduler(f.sched),
		WithWarner(WarnFunc(func(msg string) { f.warnings = append(f.warnings, msg) })),
	)
	require.NoError(t, err)
	f.v = v
	return f
}

func (f *fixture) click(id string) {
	f.doc.Dispatch(&scene.Event{Type: scene.EventClick, Target: f.buttons[id]})
}

// press clicks and waits out the debounce delay.
func (f *fixture) press(ids ...string) {
	for _, id := range ids {
		f.click(id)
		f.sched.Advance(50 * time.Millisecond)
	}
}

func (f *fixture) pointer(kind string, x, y float64) {
	f.doc.Dispatch(&scene.Event{Type: kind, ClientX: x, ClientY: y})
}

func TestNewState(t *testing.T) {
	st, err := NewState(scene.Box{Left: 3, Top: 4, Width: 300, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 300, Height: 200}, st.Size)
	assert.Equal(t, st.Size, st.OriginalSize())
	assert.Equal(t, Point{}, st.Position)
	assert.False(t, st.Dragging)
	assert.InDelta(t, 1.5, st.Scale(), 1e-9)

	_, err = NewState(scene.Box{Width: 10})
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestBaseIsAbstract(t *testing.T) {
	var b Base
	assert.ErrorIs(t, b.Enable(nil, nil), ErrUnsupported)
	assert.ErrorIs(t, b.HandleEvent(&scene.Event{}), ErrUnsupported)
}

func TestControllersRequireElements(t *testing.T) {
	doc := scene.NewDocument(100, 100)
	st, err := NewState(scene.Box{Width: 10, Height: 10})
	require.NoError(t, err)

	d := NewDragController(doc, st)
	assert.ErrorIs(t, d.Enable(doc.Root(), nil), ErrNilElement)
	assert.ErrorIs(t, d.HandleEvent(nil), ErrNilElement)

	p := NewPanelController(doc, st)
	assert.ErrorIs(t, p.Enable(nil, doc.Root()), ErrNilElement)

	_, err = Enable(doc, doc.Root(), nil, doc.Root())
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestDragFromLiveOffset(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.img.SetPosition(scene.PositionAbsolute)
	f.img.SetLeft(20)
	f.img.SetTop(20)

	f.pointer(scene.EventPointerDown, 100, 100)
	st := f.v.State
	require.True(t, st.Dragging)
	assert.Equal(t, Vector{X: 80, Y: 80}, st.PointerOffset)

	f.pointer(scene.EventPointerMove, 150, 130)
	assert.Equal(t, Point{Left: 70, Top: 50}, st.Position)
	style := f.img.Style()
	assert.Equal(t, scene.PositionAbsolute, style.Position)
	assert.Equal(t, 70.0, style.Left)
	assert.Equal(t, 50.0, style.Top)

	f.pointer(scene.EventPointerUp, 150, 130)
	assert.False(t, st.Dragging)

	f.pointer(scene.EventPointerMove, 400, 400)
	assert.Equal(t, Point{Left: 70, Top: 50}, st.Position)
}

func TestDragIgnoresOtherTargets(t *testing.T) {
	f := newFixture(t, 300, 200)

	ev := &scene.Event{Type: scene.EventPointerDown, Target: f.buttons[ControlUp]}
	f.doc.Dispatch(ev)
	assert.False(t, f.v.State.Dragging)
	assert.True(t, ev.DefaultPrevented())

	f.pointer(scene.EventPointerDown, 900, 300)
	assert.False(t, f.v.State.Dragging)

	f.pointer(scene.EventPointerMove, 10, 10)
	assert.Equal(t, scene.PositionStatic, f.img.Style().Position)
}

func TestDragSecondPointerDownKeepsOffset(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.pointer(scene.EventPointerDown, 10, 10)
	f.pointer(scene.EventPointerDown, 50, 60)
	assert.Equal(t, Vector{X: 10, Y: 10}, f.v.State.PointerOffset)
}

func TestResolveEventFallbacks(t *testing.T) {
	f := newFixture(t, 300, 200)
	assert.NoError(t, f.v.Drag.HandleEvent(nil))
	assert.False(t, f.v.State.Dragging)

	var resolved *scene.Event
	f.doc.Bind(f.img, scene.EventPointerMove, func(*scene.Event) {
		resolved = f.v.Drag.resolveEvent(nil)
	})
	ev := &scene.Event{Type: scene.EventPointerMove, ClientX: 5, ClientY: 5}
	f.doc.Dispatch(ev)
	assert.Same(t, ev, resolved)

	assert.Same(t, f.img, target(&scene.Event{CurrentTarget: f.img}))
}

func TestPanSumsIgnoreZoom(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.press(ControlRight, ControlIncrease, ControlRight, ControlDown,
		ControlReduce, ControlLeft, ControlUp, ControlUp, ControlIncrease, ControlRight)

	assert.Equal(t, Point{Left: 120, Top: -60}, f.v.State.Position)
	assert.Equal(t, 120.0, f.img.Style().Left)
	assert.Equal(t, -60.0, f.img.Style().Top)
}

func TestZoomInThenOutIsInverse(t *testing.T) {
	f := newFixture(t, 300, 200)
	before := f.v.State.Size
	for i := 0; i < 3; i++ {
		f.press(ControlIncrease)
		assert.InDelta(t, f.v.State.Scale()*f.v.State.Size.Height, f.v.State.Size.Width, 1e-9)
	}
	assert.Equal(t, Size{Width: 750, Height: 500}, f.v.State.Size)
	for i := 0; i < 3; i++ {
		f.press(ControlReduce)
		assert.InDelta(t, f.v.State.Scale()*f.v.State.Size.Height, f.v.State.Size.Width, 1e-9)
	}
	assert.InDelta(t, before.Width, f.v.State.Size.Width, 1e-9)
	assert.InDelta(t, before.Height, f.v.State.Size.Height, 1e-9)
	assert.Empty(t, f.warnings)
	assert.InDelta(t, 300, f.img.Style().Width, 1e-9)
}

func TestZoomOutRejectedBelowMinimum(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.v.State.Size = Size{Width: 40, Height: 30}
	f.v.State.Position = Point{Left: 5, Top: 6}

	f.press(ControlReduce)
	assert.Equal(t, Size{Width: 40, Height: 30}, f.v.State.Size)
	assert.Equal(t, Point{Left: 5, Top: 6}, f.v.State.Position)
	assert.Equal(t, []string{ReduceWarning}, f.warnings)

	f.press(ControlReduce)
	assert.Len(t, f.warnings, 2)
}

func TestResetScenarioAndIdempotence(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.press(ControlIncrease, ControlIncrease, ControlRight)
	require.Equal(t, Point{Left: 60}, f.v.State.Position)

	f.press(ControlBack)
	assert.Equal(t, Size{Width: 300, Height: 200}, f.v.State.Size)
	assert.Equal(t, Point{}, f.v.State.Position)
	once := *f.v.State
	onceStyle := f.img.Style()

	f.press(ControlBack)
	assert.Equal(t, once, *f.v.State)
	assert.Equal(t, onceStyle, f.img.Style())
	assert.Equal(t, scene.Style{Position: scene.PositionAbsolute, Width: 300, Height: 200}, onceStyle)
}

func TestClickStormAppliesOnce(t *testing.T) {
	f := newFixture(t, 300, 200)
	for i := 0; i < 5; i++ {
		f.click(ControlIncrease)
		f.sched.Advance(2 * time.Millisecond)
	}
	assert.True(t, f.v.Panel.Pending())
	assert.Equal(t, Size{Width: 300, Height: 200}, f.v.State.Size)

	f.sched.Advance(50 * time.Millisecond)
	assert.Equal(t, Size{Width: 450, Height: 300}, f.v.State.Size)
	assert.False(t, f.v.Panel.Pending())
}

func TestClickStormKeepsLastControl(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.click(ControlIncrease)
	f.click(ControlRight)
	f.sched.Advance(50 * time.Millisecond)
	assert.Equal(t, Size{Width: 300, Height: 200}, f.v.State.Size)
	assert.Equal(t, Point{Left: 60}, f.v.State.Position)
}

func TestPanelSwitchesToAbsoluteOnce(t *testing.T) {
	f := newFixture(t, 300, 200)
	require.Equal(t, scene.PositionStatic, f.img.Style().Position)

	// a click on the container gap still positions the element
	f.doc.Dispatch(&scene.Event{Type: scene.EventClick, Target: f.container})
	f.sched.Advance(50 * time.Millisecond)
	assert.Equal(t, scene.PositionAbsolute, f.img.Style().Position)
	assert.Equal(t, Point{}, f.v.State.Position)

	f.img.SetPosition(scene.PositionStatic)
	f.press(ControlDown)
	assert.Equal(t, scene.PositionStatic, f.img.Style().Position)
	assert.Equal(t, 60.0, f.img.Style().Top)
}

func TestDragThenPanelContinues(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.pointer(scene.EventPointerDown, 10, 10)
	f.pointer(scene.EventPointerMove, 110, 60)
	f.pointer(scene.EventPointerUp, 110, 60)
	require.Equal(t, Point{Left: 100, Top: 50}, f.v.State.Position)

	f.press(ControlRight, ControlDown)
	assert.Equal(t, Point{Left: 160, Top: 110}, f.v.State.Position)

	// drag picks up the geometry the panel wrote
	f.pointer(scene.EventPointerDown, 170, 120)
	assert.Equal(t, Vector{X: 10, Y: 10}, f.v.State.PointerOffset)
}

func TestCloseDropsPendingClick(t *testing.T) {
	f := newFixture(t, 300, 200)
	f.click(ControlIncrease)
	f.v.Close()
	f.sched.Advance(time.Second)
	assert.Equal(t, Size{Width: 300, Height: 200}, f.v.State.Size)
}

func TestCustomSettings(t *testing.T) {
	doc := scene.NewDocument(500, 500)
	img := doc.Root().AppendChild(scene.NewNode("img", "", 100, 100))
	panel := doc.Root().AppendChild(scene.NewNode("", "", 10, 10))
	btn := panel.AppendChild(scene.NewNode(ControlRight, "", 10, 10))
	sched := &manualScheduler{}
	v, err := Enable(doc, doc.Root(), panel, img,
		WithScheduler(sched),
		WithSettings(Settings{PanStep: 5, ZoomStep: 10, MinWidth: 1, Debounce: 10 * time.Millisecond}),
	)
	require.NoError(t, err)

	doc.Dispatch(&scene.Event{Type: scene.EventClick, Target: btn})
	sched.Advance(10 * time.Millisecond)
	assert.Equal(t, Point{Left: 5}, v.State.Position)
}
