// Package preview shows an arranged scene in a Gio window.
// The scene is arranged again on every frame, so resizing the window
// updates the placement of the children when the scene has no fixed container.
package preview

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/esimov/linear"
	"github.com/esimov/linear/scene"
	"github.com/esimov/linear/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	defaultWidth  = 800
	defaultHeight = 800
	defaultTitle  = "OxideUI"
)

var defaultBkgColor = color.NRGBA{R: 51, G: 76, B: 76, A: 0xff}

// Options configures the preview window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background color.NRGBA
	// Fit arranges the children against the window even if the scene defines a container.
	Fit bool
}

// Gui is the basic struct containing all of the information needed for the UI operation.
type Gui struct {
	cfg   Options
	scene *scene.Scene
	fills []color.NRGBA
}

// New initializes the Gio interface for the scene.
func New(sc *scene.Scene, opts Options) (*Gui, error) {
	if opts.Title == "" {
		opts.Title = defaultTitle
		if sc.Title != "" {
			opts.Title = sc.Title
		}
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.Background == (color.NRGBA{}) {
		opts.Background = defaultBkgColor
	}

	fills := make([]color.NRGBA, len(sc.Children))
	for i, b := range sc.Children {
		c, err := b.Fill()
		if err != nil {
			return nil, err
		}
		fills[i] = c
	}
	if _, err := sc.Strategy(); err != nil {
		return nil, err
	}

	return &Gui{cfg: opts, scene: sc, fills: fills}, nil
}

// Run is the core method of the Gio GUI application. It blocks until the
// window is closed, either by the user or by pressing the Escape key.
// Like every Gio window it needs app.Main to be running on the main goroutine.
func (g *Gui) Run() error {
	w := new(app.Window)
	w.Option(
		app.Title(g.cfg.Title),
		app.Size(unit.Dp(g.cfg.Width), unit.Dp(g.cfg.Height)),
	)

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			linear.Logger().Debug("preview window closed", "err", e.Err)
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					w.Perform(system.ActionClose)
				}
			}
			g.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// draw fills the window with the background color, arranges the scene
// and paints every child at its resolved position.
func (g *Gui) draw(gtx C) D {
	paint.Fill(gtx.Ops, g.cfg.Background)

	container := g.container(gtx.Constraints.Max)
	placements, err := g.scene.ArrangeIn(container)
	if err != nil {
		return D{Size: gtx.Constraints.Max}
	}

	for i, p := range placements {
		r := toRect(p.Rect())
		if r.Empty() {
			continue
		}
		paint.FillShape(gtx.Ops, g.fills[i], clip.Rect(r).Op())
	}
	return D{Size: gtx.Constraints.Max}
}

// container returns the rectangle the children are arranged in: the scene
// container if one is defined, otherwise the whole window.
func (g *Gui) container(size image.Point) linear.Rect {
	c := g.scene.Container.Rect()
	if g.cfg.Fit || c.Empty() {
		return linear.NewRect(0, 0, float32(size.X), float32(size.Y))
	}
	return c
}

// toRect converts a layout rectangle to the integer pixel rectangle covering it.
func toRect(r linear.Rect) image.Rectangle {
	return image.Rect(
		utils.Floor(r.Pos.X), utils.Floor(r.Pos.Y),
		utils.Ceil(r.Right()), utils.Ceil(r.Bottom()),
	)
}
