// Package scene describes a set of boxes arranged by one of the linear layouts.
// A scene is usually decoded from a TOML or YAML file and consumed by the
// render and preview packages as well as by the command line tool.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/esimov/linear"
	"github.com/esimov/linear/utils"
)

var (
	// ErrUnknownDirection is returned for a layout direction other than vertical or horizontal.
	ErrUnknownDirection = errors.New("unknown layout direction")
	// ErrInvalidSize is returned when a child has a negative or non finite size.
	ErrInvalidSize = errors.New("invalid child size")
	// ErrInvalidContainer is returned when a container value is not finite.
	ErrInvalidContainer = errors.New("invalid container")
	// ErrInvalidColor is returned when a child color cannot be parsed.
	ErrInvalidColor = errors.New("invalid child color")
)

// Direction is the main axis along which the children are stacked.
type Direction string

const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

// DefaultColor is used for the children without an explicit color.
var DefaultColor = color.NRGBA{R: 33, G: 150, B: 243, A: 0xff}

// Container is the rectangle the children are arranged in.
type Container struct {
	X      float32 `toml:"x" yaml:"x"`
	Y      float32 `toml:"y" yaml:"y"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// Rect converts the container into a linear.Rect.
func (c Container) Rect() linear.Rect {
	return linear.NewRect(c.X, c.Y, c.Width, c.Height)
}

// LayoutSpec selects the layout strategy and its optional alignments.
type LayoutSpec struct {
	Direction Direction                   `toml:"direction" yaml:"direction"`
	HAlign    *linear.HorizontalAlignment `toml:"halign,omitempty" yaml:"halign,omitempty"`
	VAlign    *linear.VerticalAlignment   `toml:"valign,omitempty" yaml:"valign,omitempty"`
}

// Box is a plain rectangular child with a fixed intrinsic size.
type Box struct {
	Name   string  `toml:"name" yaml:"name"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Color  string  `toml:"color,omitempty" yaml:"color,omitempty"`
}

// Size implements linear.Drawable.
func (b Box) Size() (float32, float32) {
	return b.Width, b.Height
}

// Fill returns the color of the box, falling back to DefaultColor.
func (b Box) Fill() (color.NRGBA, error) {
	if b.Color == "" {
		return DefaultColor, nil
	}
	c, err := utils.HexToRGBA(b.Color)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, b.Name, err)
	}
	return c, nil
}

// Scene holds everything needed for an arrangement pass.
type Scene struct {
	Title     string     `toml:"title" yaml:"title"`
	Container Container  `toml:"container" yaml:"container"`
	Layout    LayoutSpec `toml:"layout" yaml:"layout"`
	Children  []Box      `toml:"children" yaml:"children"`
}

// Validate checks the values a layout never checks by itself.
// A scene without children or with an empty container is still valid.
func (s *Scene) Validate() error {
	if _, err := s.Strategy(); err != nil {
		return err
	}
	c := s.Container
	for _, v := range []float32{c.X, c.Y, c.Width, c.Height} {
		if !finite(v) {
			return fmt.Errorf("%w: %vx%v at (%v, %v)", ErrInvalidContainer, c.Width, c.Height, c.X, c.Y)
		}
	}
	for i, b := range s.Children {
		if !validSize(b.Width) || !validSize(b.Height) {
			return fmt.Errorf("%w: child %d (%q) has size %vx%v", ErrInvalidSize, i, b.Name, b.Width, b.Height)
		}
		if _, err := b.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func validSize(v float32) bool {
	return v >= 0 && finite(v)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Strategy builds the layout described by the scene.
// An empty direction defaults to vertical.
func (s *Scene) Strategy() (linear.Layout, error) {
	switch Direction(strings.ToLower(string(s.Layout.Direction))) {
	case Vertical, "":
		return linear.NewVerticalLayout(s.Layout.VAlign, s.Layout.HAlign), nil
	case Horizontal:
		return linear.NewHorizontalLayout(s.Layout.HAlign, s.Layout.VAlign), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDirection, s.Layout.Direction)
}

// Drawables returns the children as drawables, preserving their order.
func (s *Scene) Drawables() []linear.Drawable {
	children := make([]linear.Drawable, len(s.Children))
	for i, b := range s.Children {
		children[i] = b
	}
	return children
}

// Arrange runs the scene layout against the scene container.
func (s *Scene) Arrange() ([]linear.Placement, error) {
	return s.ArrangeIn(s.Container.Rect())
}

// ArrangeIn runs the scene layout against an arbitrary container,
// for example the current size of a window.
func (s *Scene) ArrangeIn(container linear.Rect) ([]linear.Placement, error) {
	l, err := s.Strategy()
	if err != nil {
		return nil, err
	}
	placements := l.Arrange(s.Drawables(), container)

	linear.Logger().Debug("scene arranged",
		"title", s.Title,
		"direction", s.Layout.Direction,
		"children", len(placements),
	)
	return placements, nil
}

// Overflow returns the indices of the placements that are not entirely
// inside the container rectangle.
func Overflow(container linear.Rect, placements []linear.Placement) []int {
	var out []int
	for i, p := range placements {
		if !container.Contains(p.Rect()) {
			out = append(out, i)
		}
	}
	return out
}
