/*
Package render turns characters of a typecase into intensity bitmaps.

For every character of a range, the glyph is drawn white-on-black onto a
fresh canvas sized to the font's metrics, and the canvas pixels are folded
into integer intensity values 0…255. The resulting per-character bitmaps,
collected into a FontTable, are the in-memory form of what fontbake emits
as an array literal.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontbake.render'.
func tracer() tracing.Trace {
	return tracing.Select("fontbake.render")
}
