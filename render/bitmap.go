package render

import (
	"image"
	"image/draw"
)

// CharBitmap is the intensity grid of one glyph. Rows has the font's line
// height as its length, each row Width cells. A character without a glyph
// has Width 0 and empty rows, which is valid.
type CharBitmap struct {
	Width int
	Rows  [][]int
}

// FontTable collects the bitmaps of one font at one size over a character
// range, indexed by (character − Range.From), together with the metadata
// needed to use them.
type FontTable struct {
	Name       string
	Size       int
	LineHeight int
	Range      CharRange
	Bitmaps    []CharBitmap
}

// BuildTable renders every character of the descriptor's range through the
// engine and collects the bitmaps, in ascending code order, into a font
// table.
//
// Each character gets a fresh black canvas of the engine's maximum advance
// width, so no pixels bleed over from the previous glyph. The bitmap is
// cropped to the character's own advance width, not padded to the canvas
// width.
func BuildTable(desc Descriptor, eng Engine) *FontTable {
	m := eng.Measure()
	tracer().Infof("building table for %s at %d: %d characters",
		desc.Name, desc.Size, desc.Range.Len())
	table := &FontTable{
		Name:       desc.Name,
		Size:       desc.Size,
		LineHeight: m.LineHeight,
		Range:      desc.Range,
		Bitmaps:    make([]CharBitmap, 0, desc.Range.Len()),
	}
	for c := rune(desc.Range.From); c <= rune(desc.Range.To); c++ {
		canvas := image.NewRGBA(image.Rect(0, 0, m.MaxAdvance, m.LineHeight))
		draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
		eng.Rasterize(c, canvas)
		w := eng.Advance(c)
		bm := CharBitmap{Width: w, Rows: make([][]int, m.LineHeight)}
		for y := 0; y < m.LineHeight; y++ {
			row := make([]int, w)
			for x := 0; x < w; x++ {
				row[x] = Normalize(canvas.At(x, y), IntensityCeiling)
			}
			bm.Rows[y] = row
		}
		table.Bitmaps = append(table.Bitmaps, bm)
	}
	return table
}
