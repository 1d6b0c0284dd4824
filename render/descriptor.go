package render

import "github.com/fontbake/fontbake/core"

// CharRange is a closed interval of 8-bit character codes.
type CharRange struct {
	From, To uint8
}

// NewCharRange creates a character range from…to (inclusive).
// Returns an error if from > to.
func NewCharRange(from, to uint8) (CharRange, error) {
	if from > to {
		return CharRange{}, core.Error(core.EINVALID,
			"invalid character range: from=%d > to=%d", from, to)
	}
	return CharRange{From: from, To: to}, nil
}

// Len returns the number of character codes in the range.
func (r CharRange) Len() int {
	return int(r.To) - int(r.From) + 1
}

// ClampCode coerces a character code to the range 0…255. Values above 255
// are treated as 0.
func ClampCode(code uint64) uint8 {
	if code > 255 {
		return 0
	}
	return uint8(code)
}

// Descriptor names one font table to be built: a font at a size, with the
// character range to render. It is immutable after creation and consumed
// by exactly one BuildTable call.
type Descriptor struct {
	Name  string
	Size  int
	Range CharRange
}
