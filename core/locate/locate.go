package locate

import (
	"context"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"

	"github.com/fontbake/fontbake/core"
	"github.com/fontbake/fontbake/core/font"
)

// NotFound returns an application error for a missing font.
func NotFound(fontname string) error {
	return core.Error(core.EMISSING, "font not found: %s, substituting fallback font", fontname)
}

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the await-side of ResolveTypeCase.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

// ResolveTypeCase resolves a font by name and prepares a typecase of the
// given size from it.
//
// Sources are tried in order: the global font registry, the builtin Go
// fonts, system fonts (go-findfont file search, then fontconfig if
// configured). If no source provides the font, a typecase derived from the
// fallback font is returned together with an error describing the miss, so
// callers can still produce output.
func ResolveTypeCase(conf schuko.Configuration, name string, style xfont.Style,
	weight xfont.Weight, size float64) TypeCasePromise {
	//
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		if t, err := font.GlobalRegistry().TypeCase(name, size); err == nil {
			result.font = t
			ch <- result
			close(ch)
			return
		}
		f, found := findBuiltinFont(name)
		if !found {
			fpath, err := findfont.Find(name) // try to find as system font file
			if err == nil && fpath != "" {
				tracer().Debugf("%s is a system font", name)
				f, result.err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f == nil {
			desc, variant := findFontConfigFont(conf, name, style, weight)
			if desc.Path != "" {
				tracer().Debugf("fontconfig lists %s variant %s at %s", desc.Family, variant, desc.Path)
				f, result.err = font.LoadOpenTypeFont(desc.Path)
			}
		}
		if f != nil {
			f.Fontname = name
			font.GlobalRegistry().StoreFont(f)
			result.font, result.err = font.GlobalRegistry().TypeCase(name, size)
		} else {
			result.font, _ = font.GlobalRegistry().TypeCase(name, size) // fallback font
			result.err = NotFound(name)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
