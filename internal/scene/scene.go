// Package scene implements the small retained element tree the viewer
// window is built from. It plays the part of a page: nodes carry a style
// that can be written to directly, report their offsets through the
// offset-parent chain, and receive events that bubble towards the root.
package scene

import (
	"image"
)

// Box is a layout box in window coordinates.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside b. Boxes with a
// non-positive extent contain nothing.
func (b Box) Contains(x, y float64) bool {
	if b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return x >= b.Left && x < b.Left+b.Width && y >= b.Top && y < b.Top+b.Height
}

// Rect rounds b to integer pixel coordinates. Boxes with no area map
// to an empty rectangle at their origin.
func (b Box) Rect() image.Rectangle {
	x0 := int(b.Left)
	y0 := int(b.Top)
	if b.Width <= 0 || b.Height <= 0 {
		return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x0, y0)}
	}
	return image.Rect(x0, y0, x0+int(b.Width), y0+int(b.Height))
}

// Position is the positioning mode of a node.
type Position int

const (
	// PositionStatic places the node at its parent's content origin.
	PositionStatic Position = iota
	// PositionAbsolute places the node at Left/Top of its offset parent.
	PositionAbsolute
)

func (p Position) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "static"
}

// Style holds the properties the viewer writes.
type Style struct {
	Position Position
	Left     float64
	Top      float64
	Width    float64
	Height   float64
}

// Listener handles an event delivered to a node.
type Listener func(ev *Event)

// Node is an element of the scene.
type Node struct {
	ID    string
	Class string
	// Label is drawn centred inside the node when non-empty.
	Label string
	// Image is drawn scaled into the node's box when non-nil.
	Image image.Image

	style     Style
	parent    *Node
	children  []*Node
	listeners map[string][]Listener
}

// NewNode creates a detached static node of the given size.
func NewNode(id, class string, width, height float64) *Node {
	return &Node{
		ID:    id,
		Class: class,
		style: Style{Width: width, Height: height},
	}
}

// AppendChild attaches child as the last (top-most) child of n.
func (n *Node) AppendChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the children of n in paint order.
func (n *Node) Children() []*Node { return n.children }

// Style returns a copy of the node's current style.
func (n *Node) Style() Style { return n.style }

// SetPosition switches the positioning mode.
func (n *Node) SetPosition(p Position) { n.style.Position = p }

// SetLeft writes the left offset.
func (n *Node) SetLeft(v float64) { n.style.Left = v }

// SetTop writes the top offset.
func (n *Node) SetTop(v float64) { n.style.Top = v }

// SetWidth writes the width.
func (n *Node) SetWidth(v float64) { n.style.Width = v }

// SetHeight writes the height.
func (n *Node) SetHeight(v float64) { n.style.Height = v }

// Offset returns the node's offset relative to its offset parent.
func (n *Node) Offset() (left, top float64) {
	if n.style.Position == PositionAbsolute {
		return n.style.Left, n.style.Top
	}
	return 0, 0
}

// OffsetParent returns the nearest absolutely positioned ancestor, or
// the root of the tree. The root itself has no offset parent.
func (n *Node) OffsetParent() *Node {
	if n.parent == nil {
		return nil
	}
	p := n.parent
	for p.parent != nil {
		if p.style.Position == PositionAbsolute {
			return p
		}
		p = p.parent
	}
	return p
}

// AddEventListener registers fn for events named name.
func (n *Node) AddEventListener(name string, fn Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[name] = append(n.listeners[name], fn)
}

func (n *Node) fire(ev *Event) {
	for _, fn := range n.listeners[ev.Type] {
		fn(ev)
	}
}

// Walk calls fn for n and every descendant in paint order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
