package locate

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fontbake/fontbake/core/font"
)

// The Go font families ship with x/image and are always available, similar
// to fonts packaged with an application bundle. They are keyed by their
// normalized names plus a few aliases.
var builtinFonts = map[string][]byte{
	"go":             goregular.TTF,
	"go_regular":     goregular.TTF,
	"go_sans":        goregular.TTF,
	"go_bold":        gobold.TTF,
	"go_italic":      goitalic.TTF,
	"go_bold_italic": gobolditalic.TTF,
	"go_mono":        gomono.TTF,
	"go_mono_bold":   gomonobold.TTF,
	"go_mono_italic": gomonoitalic.TTF,
}

// findBuiltinFont looks up a font among the builtin Go fonts, using the
// normalized font name.
func findBuiltinFont(name string) (*font.ScalableFont, bool) {
	ttf, ok := builtinFonts[font.NormalizeFontname(name)]
	if !ok {
		return nil, false
	}
	f, err := font.ParseOpenTypeFont(ttf)
	if err != nil {
		// builtin fonts are known-good, a parse failure is a programming error
		panic(err)
	}
	f.Filepath = "internal"
	tracer().Debugf("found %s as builtin Go font %s", name, f.Fontname)
	return f, true
}
