package emit

import (
	"strconv"

	"github.com/fontbake/fontbake/render"
)

// TableSource builds a font table for a font name at a size. The character
// range and the rasterization engine are the source's business; the
// sequencer only sequences.
type TableSource interface {
	BuildTable(fontname string, size int) (*render.FontTable, error)
}

// Sequencer consumes the interleaved font-name/size token stream of the
// command line. A non-numeric token names the font from there on; every
// positive-integer token produces one font table for the current name, so
// a single name may be followed by several sizes.
//
// A size token arriving before any font name is silently ignored. This
// mirrors the behavior of the original generator and may well be an
// unintended gap there, but output compatibility wins; see DESIGN.md.
type Sequencer struct {
	src      TableSource
	ser      *Serializer
	fontname string
}

// NewSequencer creates a sequencer which appends every built table to ser.
func NewSequencer(src TableSource, ser *Serializer) *Sequencer {
	return &Sequencer{src: src, ser: ser}
}

// FeedToken applies the transition rule for a single token.
func (seq *Sequencer) FeedToken(token string) error {
	n, err := strconv.Atoi(token)
	if err != nil {
		// not a number: token names the font for the sizes that follow
		seq.fontname = token
		return nil
	}
	if seq.fontname == "" {
		tracer().Infof("ignoring size token %q: no font name seen yet", token)
		return nil
	}
	if n <= 0 {
		tracer().Infof("ignoring size token %q: not a positive size", token)
		return nil
	}
	t, err := seq.src.BuildTable(seq.fontname, n)
	if err != nil {
		return err
	}
	seq.ser.AppendTable(t)
	return nil
}

// Feed runs the token stream to exhaustion, emitting one font table per
// (name, size) combination encountered.
func (seq *Sequencer) Feed(tokens []string) error {
	for _, token := range tokens {
		if err := seq.FeedToken(token); err != nil {
			return err
		}
	}
	return nil
}
