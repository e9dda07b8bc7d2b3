package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
		"go-bolditalic":                          {xfont.StyleItalic, xfont.WeightBold},
		"go-italic":                              {xfont.StyleItalic, xfont.WeightNormal},
		"go-mono":                                {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if !Matches("Microsoft/Gill Sans MT Bold Italic.ttf",
		"gill sans", xfont.StyleItalic, xfont.WeightBold) {
		t.Errorf("expected match for Gill, haven't")
	}
	if Matches("Cambria Math.ttf",
		"cambria", xfont.StyleItalic, xfont.WeightNormal) {
		t.Errorf("did not expect italic match for Cambria Math")
	}
}

func TestPackagedFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	names := PackagedFontNames()
	require.Contains(t, names, "go-regular")
	for _, name := range names {
		f, ok := PackagedFont(name)
		require.True(t, ok, "expected packaged font %s to exist", name)
		assert.NotEmpty(t, f.Fontname)
		assert.Equal(t, "packaged:"+name, f.Filepath)
	}
	_, ok := PackagedFont("comic-sans")
	assert.False(t, ok)
}

func TestFontMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	f, _ := PackagedFont("go-regular")
	m := f.Metrics()
	t.Logf("metrics of %s = %+v", f.Fontname, m)
	assert.Greater(t, int(m.UnitsPerEm), 0)
	assert.Greater(t, int(m.Ascent), 0, "ascent should be above baseline")
	assert.Less(t, int(m.Descent), 0, "descent should be below baseline")
	assert.GreaterOrEqual(t, int(m.LineGap), 0)
	//
	v := f.VMetrics(Uniform(float32(m.UnitsPerEm)))
	assert.InDelta(t, float64(m.Ascent), float64(v.Ascent), 1e-3)
	assert.InDelta(t, float64(m.Descent), float64(v.Descent), 1e-3)
	assert.InDelta(t, float64(m.LineGap), float64(v.LineGap), 1e-3)
	//
	v12 := f.VMetrics(Uniform(12))
	v24 := f.VMetrics(Uniform(24))
	assert.InDelta(t, 2*v12.Ascent, v24.Ascent, 1e-4)
}

func TestGlyphAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	f, _ := PackagedFont("go-regular")
	var buf sfnt.Buffer
	assert.NotEqual(t, sfnt.GlyphIndex(0), f.GlyphIndex(&buf, 'A'))
	assert.Greater(t, int(f.GlyphAdvance(&buf, 'W')), int(f.GlyphAdvance(&buf, 'i')),
		"expected W to be wider than i in a proportional font")
	//
	mono, _ := PackagedFont("go-mono")
	assert.Equal(t, mono.GlyphAdvance(nil, 'W'), mono.GlyphAdvance(nil, 'i'),
		"expected all glyphs of a monospace font to have equal advance")
	//
	missing := rune(0x10FFFD) // private use, not in Go fonts
	assert.Equal(t, sfnt.GlyphIndex(0), f.GlyphIndex(&buf, missing))
	notdef := f.GlyphAdvance(&buf, missing)
	assert.GreaterOrEqual(t, int(notdef), 0)
}

func TestScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.fonts")
	defer teardown()
	//
	assert.Equal(t, Scale{X: 11, Y: 11}, Uniform(11))
	assert.True(t, Scale{X: 11}.IsZero())
	assert.Equal(t, "11.00bp", Uniform(11).String())
	assert.Equal(t, "10.00x12.00bp", Scale{X: 10, Y: 12}.String())
}
