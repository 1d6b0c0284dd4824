package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/fontbake/fontbake/core"
	"github.com/fontbake/fontbake/render"
)

type build struct {
	fontname string
	size     int
}

// recordingSource records build requests and hands out tiny valid tables.
type recordingSource struct {
	builds []build
	fail   error
}

func (src *recordingSource) BuildTable(fontname string, size int) (*render.FontTable, error) {
	if src.fail != nil {
		return nil, src.fail
	}
	src.builds = append(src.builds, build{fontname, size})
	rng, _ := render.NewCharRange(65, 65)
	return &render.FontTable{
		Name:       fontname,
		Size:       size,
		LineHeight: 1,
		Range:      rng,
		Bitmaps:    []render.CharBitmap{{Width: 1, Rows: [][]int{{0}}}},
	}, nil
}

func feed(t *testing.T, src TableSource, tokens ...string) string {
	t.Helper()
	var buf bytes.Buffer
	ser := NewSerializer(&buf)
	ser.OpenTable("uint8_t", "fonts")
	seq := NewSequencer(src, ser)
	if err := seq.Feed(tokens); err != nil {
		t.Fatal(err)
	}
	ser.CloseTable()
	return buf.String()
}

func TestSequencerOneNameManySizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{}
	out := feed(t, src, "Mono", "10", "12")
	want := []build{{"Mono", 10}, {"Mono", 12}}
	if len(src.builds) != 2 || src.builds[0] != want[0] || src.builds[1] != want[1] {
		t.Errorf("expected builds %v, have %v", want, src.builds)
	}
	if n := strings.Count(out, "\n\t{\n"); n != 2 {
		t.Errorf("expected 2 font entries in output, found %d", n)
	}
}

func TestSequencerSizeBeforeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{}
	out := feed(t, src, "12", "Mono", "10")
	if len(src.builds) != 1 || src.builds[0] != (build{"Mono", 10}) {
		t.Errorf("expected only the named size to build, have %v", src.builds)
	}
	if n := strings.Count(out, "\n\t{\n"); n != 1 {
		t.Errorf("expected 1 font entry in output, found %d", n)
	}
}

func TestSequencerNameReplacesName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{}
	feed(t, src, "Serif", "Mono", "10")
	if len(src.builds) != 1 || src.builds[0] != (build{"Mono", 10}) {
		t.Errorf("expected the later name to win, have %v", src.builds)
	}
}

func TestSequencerMalformedNumberBecomesName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{}
	feed(t, src, "Mono10", "12")
	if len(src.builds) != 1 || src.builds[0] != (build{"Mono10", 12}) {
		t.Errorf("expected 'Mono10' to act as font name, have %v", src.builds)
	}
}

func TestSequencerIgnoresNonPositiveSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{}
	feed(t, src, "Mono", "0", "-3", "10")
	if len(src.builds) != 1 || src.builds[0] != (build{"Mono", 10}) {
		t.Errorf("expected only size 10 to build, have %v", src.builds)
	}
}

func TestSequencerPropagatesBuildError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	src := &recordingSource{fail: core.Error(core.EINTERNAL, "boom")}
	var buf bytes.Buffer
	seq := NewSequencer(src, NewSerializer(&buf))
	if err := seq.Feed([]string{"Mono", "10"}); err == nil {
		t.Errorf("expected build error to propagate")
	}
}
