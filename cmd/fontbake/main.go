/*
fontbake generates font bitmap arrays that can be used to render text by
copying the needed character bitmaps into a framebuffer.

Usage:

	fontbake [ascii-from] [ascii-to] [type] [array-name] [[font-name] [font-size ..] ..]

Example:

	fontbake 33 127 uint8_t fonts Arial 12 18 "Go Mono" 32

generates Arial bitmaps in sizes 12 and 18 and Go Mono bitmaps in size 32
for ascii characters 33 to 127 (decimal), wrapped in an array literal
`uint8_t fonts = {…};` on stdout.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/fontbake/fontbake/core"
	"github.com/fontbake/fontbake/core/font"
	"github.com/fontbake/fontbake/core/locate"
	"github.com/fontbake/fontbake/emit"
	"github.com/fontbake/fontbake/render"
)

// tracer traces with key 'fontbake.cli'.
func tracer() tracing.Trace {
	return tracing.Select("fontbake.cli")
}

func main() {
	initDisplay()

	// command line flags; positional arguments follow them
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontbake.cli":       *tlevel,
		"trace.fontbake.fonts":     *tlevel,
		"trace.fontbake.resources": *tlevel,
		"trace.fontbake.render":    *tlevel,
		"trace.fontbake.emit":      *tlevel,
		"app-key":                  "fontbake",
		"fontconfig":               os.Getenv("FONTBAKE_FCLIST"),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	args := flag.Args()
	if len(args) < 6 {
		usage()
		os.Exit(1)
	}
	rng, err := parseRange(args[0], args[1])
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	arrtype, arrname := args[2], args[3]

	ser := emit.NewSerializer(os.Stdout)
	ser.OpenTable(arrtype, arrname)
	src := &tableSource{conf: conf, rng: rng}
	seq := emit.NewSequencer(src, ser)
	if err := seq.Feed(args[4:]); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	ser.CloseTable()
}

func usage() {
	pterm.Info.Println("fontbake renders characters into embeddable bitmap arrays")
	fmt.Printf("Basic usage: %s [ascii-from] [ascii-to] [type] [arr-name] [[font-name] [font-size] ..]\n",
		os.Args[0])
}

// We use pterm for moderately fancy diagnostics. The array literal itself
// is written raw.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// parseRange reads the from/to arguments. Codes above 255 coerce to 0,
// like in the original generator; from > to fails.
func parseRange(fromArg, toArg string) (render.CharRange, error) {
	from, err := strconv.ParseUint(fromArg, 10, 64)
	if err != nil {
		return render.CharRange{}, core.WrapError(err, core.EUSAGE,
			"character code is not a number: %s", fromArg)
	}
	to, err := strconv.ParseUint(toArg, 10, 64)
	if err != nil {
		return render.CharRange{}, core.WrapError(err, core.EUSAGE,
			"character code is not a number: %s", toArg)
	}
	return render.NewCharRange(render.ClampCode(from), render.ClampCode(to))
}

// tableSource resolves fonts and builds tables for the sequencer. Fonts
// which cannot be located are substituted by the fallback font, with a
// notice on stderr, so a typo in one font name does not abort the batch.
type tableSource struct {
	conf schuko.Configuration
	rng  render.CharRange
}

func (src *tableSource) BuildTable(fontname string, size int) (*render.FontTable, error) {
	style, weight := font.GuessStyleAndWeight(fontname)
	tc, err := locate.ResolveTypeCase(src.conf, fontname, style, weight, float64(size)).TypeCase()
	if err != nil {
		core.UserError(err)
	}
	if tc == nil {
		return nil, err
	}
	tracer().Infof("rendering %s at %dpt", fontname, size)
	desc := render.Descriptor{Name: fontname, Size: size, Range: src.rng}
	return render.BuildTable(desc, render.NewEngine(tc)), nil
}
