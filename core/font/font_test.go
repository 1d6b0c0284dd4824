package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatal("expected fallback font to be present")
	}
	if f.Fontname != "Go Sans" {
		t.Errorf("expected fallback font to be Go Sans, is %s", f.Fontname)
	}
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(12)
	if err != nil {
		t.Fatal(err)
	}
	if tc.Face() == nil {
		t.Fatal("expected typecase to carry a font face")
	}
	if tc.PtSize() != 12 {
		t.Errorf("expected typecase at 12pt, is %g", tc.PtSize())
	}
	if tc.ScalableFontParent() != FallbackFont() {
		t.Errorf("expected typecase to point back to its font")
	}
}

func TestPrepareCaseReplacesAbsurdSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(1200)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 10 {
		t.Errorf("expected absurd size to be replaced by 10pt, is %g", tc.PtSize())
	}
}

func TestNormalizeFontname(t *testing.T) {
	if n := NormalizeFontname("Go Regular.ttf"); n != "go_regular" {
		t.Errorf("expected 'go_regular', have %s", n)
	}
	if n := NormalizeTypeCaseName("Go Regular", 12); n != "go_regular-12.00" {
		t.Errorf("expected 'go_regular-12.00', have %s", n)
	}
}

func TestRegistryCachesTypecases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	reg.StoreFont(FallbackFont())
	tc1, err := reg.TypeCase("Go Sans", 12)
	if err != nil {
		t.Fatal(err)
	}
	tc2, err := reg.TypeCase("Go Sans", 12)
	if err != nil {
		t.Fatal(err)
	}
	if tc1 != tc2 {
		t.Errorf("expected the cached typecase on the second lookup")
	}
}

func TestRegistryFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	reg := NewRegistry()
	tc, err := reg.TypeCase("No Such Font", 10)
	if err == nil {
		t.Errorf("expected an error for an unknown font")
	}
	if tc == nil {
		t.Fatal("expected a fallback typecase for an unknown font")
	}
	if tc.ScalableFontParent().Fontname != "Go Sans" {
		t.Errorf("expected fallback typecase to derive from Go Sans")
	}
}

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuessStyleAndWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":  {xfont.StyleNormal, xfont.WeightBold},
		"Gill Sans Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":          {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if Matches("fonts/Clarendon-bold.ttf",
		"gill sans", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected no match for Gill Sans against Clarendon")
	}
}

func TestClosestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.fonts")
	defer teardown()
	//
	descs := []Descriptor{
		{Family: "Gill Sans", Path: "/fonts/gill.ttf", Variants: []string{"regular", "bold"}},
		{Family: "Clarendon", Path: "/fonts/clarendon.ttf", Variants: []string{"italic"}},
	}
	match, variant, conf := ClosestMatch(descs, "gill", xfont.StyleNormal, xfont.WeightNormal)
	if conf <= LowConfidence {
		t.Fatalf("expected a confident match, confidence is %d", conf)
	}
	if match.Family != "Gill Sans" || variant != "regular" {
		t.Errorf("expected Gill Sans regular, have %s %s", match.Family, variant)
	}
}
