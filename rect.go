package linear

// Point is a two dimensional vector used both for positions and sizes.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect describes a rectangle by its top-left position and its size.
// The size is expected to be non-negative, but this is never enforced.
type Rect struct {
	Pos  Point
	Size Point
}

// NewRect creates a rectangle from its (x, y, width, height) components.
func NewRect(x, y, w, h float32) Rect {
	return Rect{
		Pos:  Point{X: x, Y: y},
		Size: Point{X: w, Y: h},
	}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return r.Pos
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return r.Pos.Add(r.Size)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Pos.Y + r.Size.Y
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether s lies entirely inside r.
func (r Rect) Contains(s Rect) bool {
	return s.Pos.X >= r.Pos.X && s.Pos.Y >= r.Pos.Y &&
		s.Right() <= r.Right() && s.Bottom() <= r.Bottom()
}

// Union returns the smallest rectangle enclosing both r and s.
func (r Rect) Union(s Rect) Rect {
	x0, y0 := min(r.Pos.X, s.Pos.X), min(r.Pos.Y, s.Pos.Y)
	x1, y1 := max(r.Right(), s.Right()), max(r.Bottom(), s.Bottom())

	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Drawable is the capability the layouts need from a child: its intrinsic size.
// Size is queried once per child on every arrangement pass and should not change
// while the pass is running.
type Drawable interface {
	Size() (width, height float32)
}
