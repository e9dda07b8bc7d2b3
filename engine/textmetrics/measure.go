package textmetrics

import (
	"github.com/npillmayer/mdpdf/core/dimen"
	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/mdpdf/engine/style"
	"golang.org/x/image/font/sfnt"
)

// WidthOfText returns the width of a string set in font f at a given scale.
//
// The advances of all glyphs are summed up in font design units, then
// converted to points: width = Σ advance * scale.X / units-per-em.
// Code-points without a glyph in f contribute the advance of the font's
// '.notdef' glyph. Kerning is not applied.
func WidthOfText(f *font.ScalableFont, scale font.Scale, text string) dimen.Points {
	upem := f.UnitsPerEm()
	if upem == 0 || text == "" {
		return 0
	}
	var buf sfnt.Buffer
	var sum int64
	for _, r := range text {
		sum += int64(f.GlyphAdvance(&buf, r))
	}
	return dimen.Points(float64(sum) * float64(scale.X) / float64(upem))
}

// FontHeight returns the height of a line of text set in font f at a given
// scale, i.e. ascent - descent + line gap.
func FontHeight(f *font.ScalableFont, scale font.Scale) dimen.Points {
	v := f.VMetrics(scale)
	return dimen.Points(v.Ascent - v.Descent + v.LineGap)
}

// StyledWidth returns the width of a run of text with a given style.
func StyledWidth(res Resources, s style.Style, text string) dimen.Points {
	f := FontFromStyle(res, s)
	scale := ScaleFromStyle(res.Config(), s)
	w := WidthOfText(f, scale, text)
	tracer().Debugf("width of %q in %s at %s = %s", text, f, scale, w)
	return w
}

// StyledHeight returns the line height for text with a given style.
func StyledHeight(res Resources, s style.Style) dimen.Points {
	f := FontFromStyle(res, s)
	return FontHeight(f, ScaleFromStyle(res.Config(), s))
}
