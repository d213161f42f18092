package linear

// Layout arranges children inside a container rectangle.
// The returned slice has one Placement per child, in the same order as children.
// Implementations must not retain or modify the children.
type Layout interface {
	Arrange(children []Drawable, container Rect) []Placement
}

// Placement is the resolved position and size of a single child.
type Placement struct {
	X, Y          float32
	Width, Height float32
}

// Rect converts the placement into a Rect.
func (p Placement) Rect() Rect {
	return NewRect(p.X, p.Y, p.Width, p.Height)
}

// Bounds returns the rectangle enclosing every placement.
// The zero Rect is returned for an empty slice.
func Bounds(placements []Placement) Rect {
	if len(placements) == 0 {
		return Rect{}
	}
	r := placements[0].Rect()
	for _, p := range placements[1:] {
		r = r.Union(p.Rect())
	}
	return r
}

var (
	_ Layout = VerticalLayout{}
	_ Layout = HorizontalLayout{}
)
