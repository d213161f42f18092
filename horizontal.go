package linear

// HorizontalLayout places the children side by side from left to right.
// The zero value has no alignment on either axis.
type HorizontalLayout struct {
	hAlign *HorizontalAlignment
	vAlign *VerticalAlignment
}

// NewHorizontalLayout creates a row layout. A nil alignment leaves the
// corresponding axis unset. The alignment values are copied.
func NewHorizontalLayout(h *HorizontalAlignment, v *VerticalAlignment) HorizontalLayout {
	l := HorizontalLayout{}
	if h != nil {
		l.hAlign = Align(*h)
	}
	if v != nil {
		l.vAlign = Align(*v)
	}
	return l
}

// HorizontalAlign returns the horizontal alignment and whether it is set.
func (l HorizontalLayout) HorizontalAlign() (HorizontalAlignment, bool) {
	if l.hAlign == nil {
		return 0, false
	}
	return *l.hAlign, true
}

// VerticalAlign returns the vertical alignment and whether it is set.
func (l HorizontalLayout) VerticalAlign() (VerticalAlignment, bool) {
	if l.vAlign == nil {
		return 0, false
	}
	return *l.vAlign, true
}

// Arrange places the children next to each other. The y coordinate of each
// child is resolved independently by the vertical alignment, while the x
// coordinate follows a running cursor. A right alignment shifts the whole row
// afterwards so that its last child touches the container's right edge.
func (l HorizontalLayout) Arrange(children []Drawable, container Rect) []Placement {
	result := make([]Placement, 0, len(children))

	var x float32
	for _, child := range children {
		width, height := child.Size()

		y := container.Pos.Y
		if l.vAlign != nil {
			switch *l.vAlign {
			case Bottom:
				y = container.Pos.Y + container.Size.Y - height
			case VerticalCenter:
				y = container.Pos.Y + (container.Size.Y-height)/2
			}
		}

		childX := x + container.Pos.X
		if l.hAlign != nil && *l.hAlign == HorizontalCenter {
			childX = container.Pos.X + (container.Size.X-width)/2
		}

		result = append(result, Placement{X: childX, Y: y, Width: width, Height: height})
		x += width
	}

	if l.hAlign != nil && *l.hAlign == Right && len(children) > 0 {
		alignRight(result, container)
	}
	return result
}

// alignRight translates the already placed row so the right edge of the last
// placement lines up with the right edge of the container.
func alignRight(placements []Placement, container Rect) {
	last := placements[len(placements)-1]
	width := last.X + last.Width - container.Pos.X
	shift := container.Pos.X + container.Size.X - width - container.Pos.X

	for i := range placements {
		placements[i].X += shift
	}
}
