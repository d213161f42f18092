package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/esimov/linear"
	"github.com/esimov/linear/scene"
	"github.com/stretchr/testify/assert"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func opaqueOptions() Options {
	opts := DefaultOptions
	opts.Opacity = 1
	opts.Labels = false
	return opts
}

func testScene() *scene.Scene {
	return &scene.Scene{
		Title:     "test",
		Container: scene.Container{X: 10, Y: 10, Width: 100, Height: 50},
		Layout:    scene.LayoutSpec{Direction: scene.Vertical},
		Children: []scene.Box{
			{Name: "a", Width: 40, Height: 20, Color: "#ff0000"},
			{Name: "b", Width: 20, Height: 20, Color: "#00ff00"},
		},
	}
}

func TestRender_Scene(t *testing.T) {
	assert := assert.New(t)
	opts := opaqueOptions()

	img, err := Scene(testScene(), opts)
	assert.NoError(err)

	// Origin and container are enclosed, plus the margin on every side.
	assert.Equal(image.Rect(0, 0, 130, 80), img.Bounds())

	assert.Equal(opts.Background, img.NRGBAAt(5, 5))
	assert.Equal(color.NRGBA{R: 0xff, A: 0xff}, img.NRGBAAt(30, 30))
	assert.Equal(color.NRGBA{G: 0xff, A: 0xff}, img.NRGBAAt(30, 50))
	assert.Equal(opts.Background, img.NRGBAAt(50, 50))

	// The container outline is painted over the children.
	assert.Equal(opts.Outline, img.NRGBAAt(20, 25))
	assert.Equal(opts.Outline, img.NRGBAAt(119, 65))
}

func TestRender_SceneError(t *testing.T) {
	sc := testScene()
	sc.Layout.Direction = "diagonal"

	_, err := Scene(sc, DefaultOptions)
	assert.ErrorIs(t, err, scene.ErrUnknownDirection)
}

func TestRender_CanvasGrowsWithOverflow(t *testing.T) {
	assert := assert.New(t)
	opts := opaqueOptions()
	opts.Margin = 0

	items := []Item{{
		Placement: linear.Placement{X: -30, Y: -20, Width: 10, Height: 10},
		Fill:      white,
	}}
	c, err := Draw(linear.NewRect(0, 0, 50, 50), items, opts)
	assert.NoError(err)

	assert.Equal(image.Pt(30, 20), c.Offset)
	assert.Equal(image.Rect(0, 0, 80, 70), c.Img.Bounds())
	assert.Equal(image.Rect(0, 0, 10, 10), c.Bounds(items[0].Rect()))
	assert.Equal(white, c.Img.NRGBAAt(5, 5))
}

func TestRender_MultiplyOverlap(t *testing.T) {
	assert := assert.New(t)
	opts := opaqueOptions()
	opts.Margin = 0
	opts.Background = white
	opts.Blend = Multiply

	items := []Item{
		{Placement: linear.Placement{X: 0, Y: 0, Width: 10, Height: 10}, Fill: color.NRGBA{R: 200, G: 100, B: 50, A: 0xff}},
		{Placement: linear.Placement{X: 5, Y: 0, Width: 10, Height: 10}, Fill: color.NRGBA{R: 128, G: 128, B: 128, A: 0xff}},
	}
	c, err := Draw(linear.NewRect(0, 0, 20, 20), items, opts)
	assert.NoError(err)

	assert.Equal(color.NRGBA{R: 200, G: 100, B: 50, A: 0xff}, c.Img.NRGBAAt(2, 5))
	assert.Equal(color.NRGBA{R: 100, G: 50, B: 25, A: 0xff}, c.Img.NRGBAAt(7, 5))
	assert.Equal(color.NRGBA{R: 128, G: 128, B: 128, A: 0xff}, c.Img.NRGBAAt(12, 5))
}

func TestRender_Labels(t *testing.T) {
	opts := opaqueOptions()
	opts.Labels = true

	plain, err := Scene(testScene(), opaqueOptions())
	assert.NoError(t, err)
	labeled, err := Scene(testScene(), opts)
	assert.NoError(t, err)

	assert.NotEqual(t, plain.Pix, labeled.Pix)
	assert.Equal(t, black, contrast(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
	assert.Equal(t, white, contrast(color.NRGBA{R: 0x10, G: 0x10, B: 0x40, A: 0xff}))
}

func TestRender_CanvasTooLarge(t *testing.T) {
	assert := assert.New(t)

	sc := testScene()
	sc.Container = scene.Container{Width: 1e9, Height: 1e9}
	assert.NoError(sc.Validate())

	img, err := Scene(sc, DefaultOptions)
	assert.ErrorIs(err, ErrCanvasTooLarge)
	assert.Nil(img)

	// A child far away from the origin grows the canvas as well.
	items := []Item{{Placement: linear.Placement{X: -1e7, Y: 0, Width: 10, Height: 10}, Fill: white}}
	_, err = Draw(linear.NewRect(0, 0, 50, 50), items, DefaultOptions)
	assert.ErrorIs(err, ErrCanvasTooLarge)

	// The scale is taken into account before resizing.
	opts := DefaultOptions
	opts.Scale = 1000
	_, err = Scene(testScene(), opts)
	assert.ErrorIs(err, ErrCanvasTooLarge)

	opts.Scale = 2
	_, err = Scene(testScene(), opts)
	assert.NoError(err)
}

func TestRender_Scaled(t *testing.T) {
	opts := opaqueOptions()
	opts.Scale = 2

	img, err := Scene(testScene(), opts)
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 260, 160), img.Bounds())
}

func TestRender_Encode(t *testing.T) {
	assert := assert.New(t)
	img, err := Scene(testScene(), DefaultOptions)
	assert.NoError(err)

	for _, name := range []string{"", "-", "out/scene.png", "scene.jpg", "scene.bmp"} {
		var buf bytes.Buffer
		assert.NoError(Encode(&buf, img, name))

		dec, err := imaging.Decode(&buf)
		assert.NoError(err)
		assert.Equal(img.Bounds().Size(), dec.Bounds().Size())
	}

	assert.Error(Encode(&bytes.Buffer{}, img, "scene.xyz"))
}

func TestRender_Supported(t *testing.T) {
	assert.True(t, Supported("out/scene.PNG"))
	assert.True(t, Supported("scene.jpeg"))
	assert.False(t, Supported("scene.toml"))
}
