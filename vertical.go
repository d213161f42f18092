package linear

// VerticalLayout stacks the children from top to bottom.
// The zero value has no alignment on either axis.
type VerticalLayout struct {
	vAlign *VerticalAlignment
	hAlign *HorizontalAlignment
}

// NewVerticalLayout creates a stacking layout. A nil alignment leaves the
// corresponding axis unset. The alignment values are copied.
func NewVerticalLayout(v *VerticalAlignment, h *HorizontalAlignment) VerticalLayout {
	l := VerticalLayout{}
	if v != nil {
		l.vAlign = Align(*v)
	}
	if h != nil {
		l.hAlign = Align(*h)
	}
	return l
}

// VerticalAlign returns the vertical alignment and whether it is set.
func (l VerticalLayout) VerticalAlign() (VerticalAlignment, bool) {
	if l.vAlign == nil {
		return 0, false
	}
	return *l.vAlign, true
}

// HorizontalAlign returns the horizontal alignment and whether it is set.
func (l VerticalLayout) HorizontalAlign() (HorizontalAlignment, bool) {
	if l.hAlign == nil {
		return 0, false
	}
	return *l.hAlign, true
}

// Arrange places the children one below the other. The x coordinate of each
// child is resolved independently by the horizontal alignment, while the y
// coordinate follows a running cursor. A bottom alignment shifts the whole
// stack afterwards so that its last child touches the container's bottom edge.
func (l VerticalLayout) Arrange(children []Drawable, container Rect) []Placement {
	result := make([]Placement, 0, len(children))

	var y float32
	for _, child := range children {
		width, height := child.Size()

		x := container.Pos.X
		if l.hAlign != nil {
			switch *l.hAlign {
			case Right:
				x = container.Pos.X + container.Size.X - width
			case HorizontalCenter:
				x = container.Pos.X + (container.Size.X-width)/2
			}
		}

		childY := y + container.Pos.Y
		if l.vAlign != nil && *l.vAlign == VerticalCenter {
			childY = container.Pos.Y + (container.Size.Y-height)/2
		}

		result = append(result, Placement{X: x, Y: childY, Width: width, Height: height})
		y += height
	}

	if l.vAlign != nil && *l.vAlign == Bottom && len(children) > 0 {
		alignBottom(result, container)
	}
	return result
}

// alignBottom translates the already stacked placements so the bottom edge of
// the last one lines up with the bottom edge of the container.
func alignBottom(placements []Placement, container Rect) {
	last := placements[len(placements)-1]
	height := last.Y + last.Height - container.Pos.Y
	shift := container.Pos.Y + container.Size.Y - height - container.Pos.Y

	for i := range placements {
		placements[i].Y += shift
	}
}
