/*
Package linear is a single pass layout engine which arranges drawable children
inside a container rectangle, either stacked top to bottom or placed side by side.

Each layout is configured once with an optional alignment on both axes. An unset
alignment leaves the children at their natural, accumulated offset. The layouts
never resize the children, they only compute their positions.

A simple example:

	package main

	import (
		"fmt"

		"github.com/esimov/linear"
	)

	type box struct{ w, h float32 }

	func (b box) Size() (float32, float32) { return b.w, b.h }

	func main() {
		l := linear.NewVerticalLayout(linear.Align(linear.Bottom), nil)
		children := []linear.Drawable{box{20, 10}, box{10, 20}}

		for _, p := range l.Arrange(children, linear.NewRect(100, 100, 800, 800)) {
			fmt.Println(p.X, p.Y, p.Width, p.Height)
		}
	}
*/
package linear
