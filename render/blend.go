package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/esimov/linear/utils"
)

// BlendMode defines how a box is mixed with whatever was painted below it.
// Overlapping placements are legal, the blend modes make them visible.
type BlendMode string

const (
	Normal     BlendMode = "normal"
	Darken     BlendMode = "darken"
	Lighten    BlendMode = "lighten"
	Multiply   BlendMode = "multiply"
	Screen     BlendMode = "screen"
	Overlay    BlendMode = "overlay"
	Difference BlendMode = "difference"
)

var blendModes = []BlendMode{Normal, Darken, Lighten, Multiply, Screen, Overlay, Difference}

// ParseBlendMode returns the blend mode with the given name.
func ParseBlendMode(s string) (BlendMode, error) {
	m := BlendMode(strings.ToLower(s))
	if !utils.Contains(blendModes, m) {
		return "", fmt.Errorf("unsupported blend mode %q", s)
	}
	return m, nil
}

// blendChannel applies the blend formula over two normalized channel values,
// where b is the backdrop and s is the source.
func blendChannel(mode BlendMode, b, s float64) float64 {
	switch mode {
	case Darken:
		return utils.Min(b, s)
	case Lighten:
		return utils.Max(b, s)
	case Multiply:
		return b * s
	case Screen:
		return 1 - (1-b)*(1-s)
	case Overlay:
		if b <= 0.5 {
			return 2 * b * s
		}
		return 1 - 2*(1-b)*(1-s)
	case Difference:
		return utils.Abs(b - s)
	}
	return s
}

// blendColor mixes src over dst. The opacity scales the contribution of the
// blended color, the result keeps the backdrop alpha combined with the source alpha.
func blendColor(mode BlendMode, dst, src color.NRGBA, opacity float64) color.NRGBA {
	as := float64(src.A) / 255 * utils.Clamp(opacity, 0, 1)
	ab := float64(dst.A) / 255

	mix := func(cb, cs uint8) uint8 {
		b, s := float64(cb)/255, float64(cs)/255
		// Without a backdrop the blend formula falls back to the source color.
		v := (1-ab)*s + ab*blendChannel(mode, b, s)
		out := as*v + (1-as)*b
		return uint8(utils.Clamp(out*255+0.5, 0, 255))
	}

	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: uint8(utils.Clamp((as+ab*(1-as))*255+0.5, 0, 255)),
	}
}

// fillRect blends a solid color into the r region of dst.
func fillRect(dst *image.NRGBA, r image.Rectangle, col color.NRGBA, mode BlendMode, opacity float64) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, blendColor(mode, dst.NRGBAAt(x, y), col, opacity))
		}
	}
}
