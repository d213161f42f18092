// Package render paints an arranged scene into an image without requiring a window.
// It is mainly used to inspect the result of an arrangement pass: the container
// is outlined and every child is filled with its own color and labeled with its name.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/linear"
	"github.com/esimov/linear/scene"
	"github.com/esimov/linear/utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MaxCanvasSize is the largest width or height, in pixels, of a rendered image.
const MaxCanvasSize = 1 << 14

// ErrCanvasTooLarge is returned when the scene geometry, margin and scale
// would produce an image larger than MaxCanvasSize on either side.
var ErrCanvasTooLarge = errors.New("canvas too large")

// Options controls the appearance of the rendered image.
type Options struct {
	Margin     int
	Scale      float64
	Opacity    float64
	Blend      BlendMode
	Background color.NRGBA
	Outline    color.NRGBA
	Labels     bool
}

// DefaultOptions mirrors the clear color of the preview window.
var DefaultOptions = Options{
	Margin:     10,
	Scale:      1,
	Opacity:    0.85,
	Blend:      Normal,
	Background: color.NRGBA{R: 51, G: 76, B: 76, A: 0xff},
	Outline:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Labels:     true,
}

// Item is a single placed child ready to be painted.
type Item struct {
	linear.Placement
	Fill  color.NRGBA
	Label string
}

// Canvas holds the painted image and the translation applied to the layout
// coordinates, so callers can map a placement back to pixel coordinates.
type Canvas struct {
	Img    *image.NRGBA
	Offset image.Point
	opts   Options
}

// Scene arranges the scene against its own container and paints the result.
func Scene(sc *scene.Scene, opts Options) (*image.NRGBA, error) {
	placements, err := sc.Arrange()
	if err != nil {
		return nil, err
	}

	items := make([]Item, len(placements))
	for i, p := range placements {
		fill, err := sc.Children[i].Fill()
		if err != nil {
			return nil, err
		}
		items[i] = Item{Placement: p, Fill: fill, Label: sc.Children[i].Name}
	}

	if overflow := scene.Overflow(sc.Container.Rect(), placements); len(overflow) > 0 {
		linear.Logger().Debug("children placed outside of the container",
			"title", sc.Title, "indices", fmt.Sprint(overflow))
	}

	c, err := Draw(sc.Container.Rect(), items, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sc.Title, err)
	}
	return c.Scaled(), nil
}

// Draw paints the container outline and the items on a new canvas. The canvas
// is large enough to hold the origin, the container and every item, because
// a layout is free to place children outside of the container.
func Draw(container linear.Rect, items []Item, opts Options) (*Canvas, error) {
	bounds := linear.Rect{}.Union(container)
	for _, it := range items {
		bounds = bounds.Union(it.Rect())
	}
	if err := checkSize(bounds, opts); err != nil {
		return nil, err
	}

	offset := image.Pt(
		opts.Margin-utils.Floor(bounds.Pos.X),
		opts.Margin-utils.Floor(bounds.Pos.Y),
	)
	width := utils.Ceil(bounds.Right()) - utils.Floor(bounds.Pos.X) + 2*opts.Margin
	height := utils.Ceil(bounds.Bottom()) - utils.Floor(bounds.Pos.Y) + 2*opts.Margin

	c := &Canvas{
		Img:    imaging.New(utils.Max(width, 1), utils.Max(height, 1), opts.Background),
		Offset: offset,
		opts:   opts,
	}

	for _, it := range items {
		c.fill(it)
	}
	c.outline(container)

	if opts.Labels {
		for _, it := range items {
			c.label(it)
		}
	}
	linear.Logger().Debug("canvas painted", "width", width, "height", height, "items", len(items))

	return c, nil
}

// checkSize rejects the bounds which would not fit in MaxCanvasSize once the
// margin and the scale are applied. The check is done on floats, before any
// conversion to int can overflow.
func checkSize(bounds linear.Rect, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	for _, side := range []float32{bounds.Size.X, bounds.Size.Y} {
		px := (float64(side) + 2*float64(opts.Margin) + 2) * utils.Max(scale, 1)
		if math.IsNaN(px) || px > MaxCanvasSize {
			return fmt.Errorf("%w: %vx%v exceeds %d pixels", ErrCanvasTooLarge,
				bounds.Size.X, bounds.Size.Y, MaxCanvasSize)
		}
	}
	return nil
}

// Bounds converts a layout rectangle to the pixel rectangle it covers on the canvas.
func (c *Canvas) Bounds(r linear.Rect) image.Rectangle {
	return image.Rect(
		utils.Floor(r.Pos.X), utils.Floor(r.Pos.Y),
		utils.Ceil(r.Right()), utils.Ceil(r.Bottom()),
	).Add(c.Offset)
}

// Scaled returns the canvas image resized by the scale option.
func (c *Canvas) Scaled() *image.NRGBA {
	if c.opts.Scale <= 0 || c.opts.Scale == 1 {
		return c.Img
	}
	w := int(float64(c.Img.Bounds().Dx()) * c.opts.Scale)
	return imaging.Resize(c.Img, utils.Max(w, 1), 0, imaging.NearestNeighbor)
}

func (c *Canvas) fill(it Item) {
	if it.Width <= 0 || it.Height <= 0 {
		return
	}
	fillRect(c.Img, c.Bounds(it.Rect()), it.Fill, c.opts.Blend, c.opts.Opacity)
}

// outline draws a one pixel wide frame around the container.
func (c *Canvas) outline(container linear.Rect) {
	r := c.Bounds(container)
	src := image.NewUniform(c.opts.Outline)

	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.Img, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// label writes the item name in its top-left corner, provided the item is
// tall enough to hold a line of text.
func (c *Canvas) label(it Item) {
	face := basicfont.Face7x13
	if it.Label == "" || it.Height < float32(face.Height) {
		return
	}
	r := c.Bounds(it.Rect())

	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(contrast(it.Fill)),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+face.Ascent),
	}
	d.DrawString(it.Label)
}

// contrast picks black or white text depending on the luminance of the fill.
func contrast(c color.NRGBA) color.NRGBA {
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if lum > 140 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// Supported reports whether Encode can write an image named filename.
func Supported(filename string) bool {
	_, err := imaging.FormatFromFilename(filepath.Base(filename))
	return err == nil
}

// Encode writes the image to w in the format matching the filename extension.
// An empty filename or the pipe name "-" produces a PNG image.
func Encode(w io.Writer, img image.Image, filename string) error {
	format := imaging.PNG
	if filename != "" && filename != "-" {
		f, err := imaging.FormatFromFilename(filepath.Base(filename))
		if err != nil {
			return fmt.Errorf("unable to encode %s: %w", filename, err)
		}
		format = f
	}
	return imaging.Encode(w, img, format)
}
