package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockDrawable struct {
	size  [2]float32
	calls int
}

func (m *mockDrawable) Size() (float32, float32) {
	m.calls++
	return m.size[0], m.size[1]
}

func boxes(sizes ...[2]float32) []Drawable {
	children := make([]Drawable, 0, len(sizes))
	for _, s := range sizes {
		children = append(children, &mockDrawable{size: s})
	}
	return children
}

func allLayouts() map[string]Layout {
	return map[string]Layout{
		"vertical":                 VerticalLayout{},
		"vertical-bottom-right":    NewVerticalLayout(Align(Bottom), Align(Right)),
		"vertical-center-center":   NewVerticalLayout(Align(VerticalCenter), Align(HorizontalCenter)),
		"horizontal":               HorizontalLayout{},
		"horizontal-right-bottom":  NewHorizontalLayout(Align(Right), Align(Bottom)),
		"horizontal-center-center": NewHorizontalLayout(Align(HorizontalCenter), Align(VerticalCenter)),
	}
}

func TestLayout_EmptyChildren(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			res := l.Arrange(nil, NewRect(10, 10, 100, 100))
			assert.NotNil(t, res)
			assert.Empty(t, res)

			res = l.Arrange([]Drawable{}, Rect{})
			assert.Empty(t, res)
		})
	}
}

func TestLayout_OrderAndSizePassthrough(t *testing.T) {
	sizes := [][2]float32{{10, 10}, {30, 5}, {0, 0}, {120, 45}, {7.5, 3.25}}

	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			children := boxes(sizes...)
			res := l.Arrange(children, NewRect(-20, 40, 300, 200))

			assert.Len(t, res, len(children))
			for i, p := range res {
				assert.Equal(t, sizes[i][0], p.Width)
				assert.Equal(t, sizes[i][1], p.Height)
			}
		})
	}
}

func TestLayout_SizeQueriedOncePerChild(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			children := boxes([2]float32{10, 20}, [2]float32{5, 5})
			l.Arrange(children, NewRect(0, 0, 100, 100))

			for _, c := range children {
				assert.Equal(t, 1, c.(*mockDrawable).calls)
			}
		})
	}
}

func TestLayout_Idempotent(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			children := boxes([2]float32{20, 10}, [2]float32{10, 20}, [2]float32{40, 40})
			rect := NewRect(100, 100, 800, 800)

			assert.Equal(t, l.Arrange(children, rect), l.Arrange(children, rect))
		})
	}
}

func TestLayout_DegenerateContainer(t *testing.T) {
	for name, l := range allLayouts() {
		t.Run(name, func(t *testing.T) {
			children := boxes([2]float32{50, 50}, [2]float32{-10, 20})

			assert.NotPanics(t, func() {
				res := l.Arrange(children, NewRect(0, 0, 0, 0))
				assert.Len(t, res, 2)
			})
			assert.NotPanics(t, func() {
				l.Arrange(children, NewRect(5, 5, -100, -100))
			})
		})
	}
}

func TestLayout_Bounds(t *testing.T) {
	assert.Equal(t, Rect{}, Bounds(nil))

	res := VerticalLayout{}.Arrange(boxes([2]float32{10, 10}, [2]float32{30, 20}), NewRect(100, 200, 400, 400))
	assert.Equal(t, NewRect(100, 200, 30, 30), Bounds(res))
	assert.Equal(t, NewRect(100, 210, 30, 20), res[1].Rect())
}

func TestLayout_ConcurrentArrange(t *testing.T) {
	l := NewVerticalLayout(Align(Bottom), Align(HorizontalCenter))
	rect := NewRect(0, 0, 640, 480)
	want := l.Arrange(boxes([2]float32{20, 10}, [2]float32{10, 20}), rect)

	done := make(chan []Placement)
	for i := 0; i < 8; i++ {
		go func() {
			done <- l.Arrange(boxes([2]float32{20, 10}, [2]float32{10, 20}), rect)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
