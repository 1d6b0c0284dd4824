package emit

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/fontbake/fontbake/render"
)

func smallTable() *render.FontTable {
	rng, _ := render.NewCharRange(65, 66)
	return &render.FontTable{
		Name:       "Mono",
		Size:       10,
		LineHeight: 2,
		Range:      rng,
		Bitmaps: []render.CharBitmap{
			{Width: 2, Rows: [][]int{{0, 255}, {10, 20}}},
			{Width: 0, Rows: [][]int{{}, {}}},
		},
	}
}

func TestSerializeGolden(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	var buf bytes.Buffer
	ser := NewSerializer(&buf)
	ser.OpenTable("uint8_t", "fonts")
	ser.AppendTable(smallTable())
	ser.CloseTable()

	want := "uint8_t fonts =\n" +
		"{\n" +
		"\t{\n" +
		"\t\t\"Mono\",\n" +
		"\t\t10,\n" +
		"\t\t2,\n" +
		"\t\t65,\n" +
		"\t\t66,\n" +
		"\t\t{\n" +
		"\t\t\t{\n" +
		"\t\t\t\t2,\n" +
		"\t\t\t\t{\n" +
		"\t\t\t\t\t0,255,\n" +
		"\t\t\t\t\t10,20,\n" +
		"\t\t\t\t}\n" +
		"\t\t\t},\n" +
		"\t\t\t{\n" +
		"\t\t\t\t0,\n" +
		"\t\t\t\t{\n" +
		"\t\t\t\t\t\n" +
		"\t\t\t\t\t\n" +
		"\t\t\t\t}\n" +
		"\t\t\t},\n" +
		"\t\t}\n" +
		"\t}\n" +
		"};\n"
	assert.Equal(t, want, buf.String())
}

func TestSerializeStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	var one, two bytes.Buffer
	for _, buf := range []*bytes.Buffer{&one, &two} {
		ser := NewSerializer(buf)
		ser.OpenTable("const uint8_t", "glyphs")
		ser.AppendTable(smallTable())
		ser.CloseTable()
	}
	if !bytes.Equal(one.Bytes(), two.Bytes()) {
		t.Errorf("expected byte-identical output across runs")
	}
}

func TestSerializeEmptyArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbake.emit")
	defer teardown()
	//
	// the wrapper is printed even if no font descriptor was processed
	var buf bytes.Buffer
	ser := NewSerializer(&buf)
	ser.OpenTable("uint8_t", "fonts")
	ser.CloseTable()
	assert.Equal(t, "uint8_t fonts =\n{\n};\n", buf.String())
}
