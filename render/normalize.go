package render

import "image/color"

// IntensityCeiling is the upper bound of normalized intensity values in
// emitted tables.
const IntensityCeiling = 255

// Normalize returns a single number representing the color intensity of a
// pixel sample, rescaled to the range 0…ceiling: an all-zero sample maps
// to 0, an all-255 sample to ceiling.
//
// The three channels are weighted equally; this is a brightness estimate,
// not perceptual luminance.
func Normalize(sample color.Color, ceiling int) int {
	r, g, b, _ := sample.RGBA() // 16 bit per channel
	return int(r>>8+g>>8+b>>8) * ceiling / (3 * 0xFF)
}
