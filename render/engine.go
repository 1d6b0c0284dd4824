package render

import (
	"image"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/fontbake/fontbake/core/font"
)

// Metrics carries the font-level geometry shared by all characters of a
// typecase.
type Metrics struct {
	LineHeight int // rows per character bitmap (ascent + descent)
	MaxAdvance int // canvas width, covering the widest glyph of the charset
	Baseline   int // y-offset of the baseline from the canvas top
}

// Engine is the rasterization capability the bitmap builder depends on:
// font-level metrics, per-character advance widths, and drawing a single
// glyph onto a caller-provided canvas.
type Engine interface {
	Measure() Metrics
	Advance(c rune) int
	Rasterize(c rune, canvas draw.Image)
}

type faceEngine struct {
	face    xfont.Face
	metrics Metrics
}

// NewEngine binds an Engine to a typecase. Metrics are computed once and
// shared by all characters rendered through this engine, so glyphs of the
// same font and size align on a common baseline and row count.
func NewEngine(tc *font.TypeCase) Engine {
	face := tc.Face()
	m := face.Metrics()
	eng := faceEngine{face: face}
	eng.metrics.LineHeight = (m.Ascent + m.Descent).Ceil()
	// One pixel above the overline position, so ascenders are not clipped
	// at the canvas top.
	eng.metrics.Baseline = m.Ascent.Ceil() - 1
	for c := rune(0); c <= 255; c++ {
		if a, ok := face.GlyphAdvance(c); ok && a.Ceil() > eng.metrics.MaxAdvance {
			eng.metrics.MaxAdvance = a.Ceil()
		}
	}
	tracer().Debugf("engine metrics: height=%d, baseline=%d, max advance=%d",
		eng.metrics.LineHeight, eng.metrics.Baseline, eng.metrics.MaxAdvance)
	return eng
}

func (eng faceEngine) Measure() Metrics {
	return eng.metrics
}

// Advance returns the advance width of c in pixels. Characters without a
// glyph in the font have advance 0.
func (eng faceEngine) Advance(c rune) int {
	a, ok := eng.face.GlyphAdvance(c)
	if !ok {
		return 0
	}
	return a.Ceil()
}

// Rasterize draws c in white at horizontal origin 0 onto the canvas, with
// the baseline at the engine's baseline offset.
func (eng faceEngine) Rasterize(c rune, canvas draw.Image) {
	d := &xfont.Drawer{
		Dst:  canvas,
		Src:  image.White,
		Face: eng.face,
		Dot:  fixed.P(0, eng.metrics.Baseline),
	}
	d.DrawString(string(c))
}
