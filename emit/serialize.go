package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fontbake/fontbake/render"
)

// Serializer renders font tables into the array grammar, appending to a
// single output sink. It never reorders or deduplicates entries; one font
// table produces exactly one brace group.
type Serializer struct {
	w io.Writer
}

// NewSerializer creates a serializer writing to w.
func NewSerializer(w io.Writer) *Serializer {
	return &Serializer{w: w}
}

// indent returns tabs tab characters.
func indent(tabs int) string {
	return strings.Repeat("\t", tabs)
}

// OpenTable prints the opening array declaration. Type and name are copied
// verbatim into the declaration line.
func (s *Serializer) OpenTable(arrtype, name string) {
	fmt.Fprintf(s.w, "%s %s =\n", arrtype, name)
	fmt.Fprint(s.w, "{\n")
}

// CloseTable prints the array closing sequence.
func (s *Serializer) CloseTable() {
	fmt.Fprint(s.w, "};\n")
}

// AppendTable prints one font table as a nested brace group: name, size,
// line height, range, then one entry per character in ascending code
// order, each with its width and its row-major pixel grid.
func (s *Serializer) AppendTable(t *render.FontTable) {
	tracer().Debugf("emitting table %s/%d with %d characters", t.Name, t.Size, len(t.Bitmaps))
	fmt.Fprintf(s.w, "%s{\n", indent(1))
	fmt.Fprintf(s.w, "%s\"%s\",\n", indent(2), t.Name)
	fmt.Fprintf(s.w, "%s%d,\n", indent(2), t.Size)
	fmt.Fprintf(s.w, "%s%d,\n", indent(2), t.LineHeight)
	fmt.Fprintf(s.w, "%s%d,\n", indent(2), t.Range.From)
	fmt.Fprintf(s.w, "%s%d,\n", indent(2), t.Range.To)
	fmt.Fprintf(s.w, "%s{\n", indent(2))
	for _, bm := range t.Bitmaps {
		fmt.Fprintf(s.w, "%s{\n", indent(3))
		fmt.Fprintf(s.w, "%s%d,\n", indent(4), bm.Width)
		fmt.Fprintf(s.w, "%s{\n", indent(4))
		for _, row := range bm.Rows {
			fmt.Fprint(s.w, indent(5))
			for _, px := range row {
				fmt.Fprintf(s.w, "%d,", px)
			}
			fmt.Fprint(s.w, "\n")
		}
		fmt.Fprintf(s.w, "%s}\n", indent(4))
		fmt.Fprintf(s.w, "%s},\n", indent(3))
	}
	fmt.Fprintf(s.w, "%s}\n", indent(2))
	fmt.Fprintf(s.w, "%s}\n", indent(1))
}
