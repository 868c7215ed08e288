package scene

// Event type names understood by the viewer.
const (
	EventPointerDown = "pointerdown"
	EventPointerMove = "pointermove"
	EventPointerUp   = "pointerup"
	EventClick       = "click"
)

// Event is dispatched through a Document.
type Event struct {
	Type    string
	ClientX float64
	ClientY float64
	// Target is the node the event was aimed at. Dispatch fills it by hit
	// testing when left nil.
	Target *Node
	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event's default host behaviour as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// Document is the root of a scene and the entry point for events.
type Document struct {
	root    *Node
	current *Event
}

// NewDocument creates a document whose root spans width x height.
func NewDocument(width, height float64) *Document {
	root := NewNode("document", "document", width, height)
	return &Document{root: root}
}

// Root returns the document node.
func (d *Document) Root() *Node { return d.root }

// Resize updates the root's extent.
func (d *Document) Resize(width, height float64) {
	d.root.SetWidth(width)
	d.root.SetHeight(height)
}

// Bind registers fn on n for events named name.
func (d *Document) Bind(n *Node, name string, fn Listener) {
	n.AddEventListener(name, fn)
}

// Measure returns n's box in window coordinates, summing offsets through
// the offset-parent chain.
func (d *Document) Measure(n *Node) Box {
	left, top := n.Offset()
	for p := n.OffsetParent(); p != nil; p = p.OffsetParent() {
		pl, pt := p.Offset()
		left += pl
		top += pt
	}
	st := n.Style()
	return Box{Left: left, Top: top, Width: st.Width, Height: st.Height}
}

// HitTest returns the deepest top-most node under (x, y). It returns the
// root when nothing else contains the point.
func (d *Document) HitTest(x, y float64) *Node {
	if hit := d.hitTest(d.root, x, y); hit != nil {
		return hit
	}
	return d.root
}

func (d *Document) hitTest(n *Node, x, y float64) *Node {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := d.hitTest(children[i], x, y); hit != nil {
			return hit
		}
	}
	if n != d.root && d.Measure(n).Contains(x, y) {
		return n
	}
	return nil
}

// Dispatch delivers ev to its target and then to each ancestor.
func (d *Document) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = d.HitTest(ev.ClientX, ev.ClientY)
	}
	prev := d.current
	d.current = ev
	defer func() { d.current = prev }()

	for n := ev.Target; n != nil && !ev.stopped; n = n.Parent() {
		ev.CurrentTarget = n
		n.fire(ev)
	}
	ev.CurrentTarget = nil
}

// Current returns the event being dispatched, or nil outside Dispatch.
func (d *Document) Current() *Event { return d.current }
