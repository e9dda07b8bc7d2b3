package font

import (
	"fmt"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ScalableFont is a parsed OpenType/TrueType font.
type ScalableFont struct {
	Fontname string     // full font name from the font's name table
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
	metrics  FontMetricsInfo
}

// FontMetricsInfo contains selected metric information for a font, in font
// design units. Following the OpenType convention, the y-axis points upwards,
// i.e. Descent is usually negative.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // ad-hoc units per em
	Ascent, Descent sfnt.Units // ascender and descender
	LineGap         sfnt.Units // typographic line gap
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data and caches the font's vertical metrics.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	var buf sfnt.Buffer
	f.Fontname, _ = f.SFNT.Name(&buf, sfnt.NameIDFull)
	upem := f.SFNT.UnitsPerEm()
	f.metrics.UnitsPerEm = upem
	// with ppem set to units-per-em, sfnt reports metrics in design units
	m, err := f.SFNT.Metrics(&buf, fixed.Int26_6(upem), xfont.HintingNone)
	if err != nil {
		return nil, err
	}
	f.metrics.Ascent = sfnt.Units(m.Ascent)
	f.metrics.Descent = -sfnt.Units(m.Descent)
	f.metrics.LineGap = sfnt.Units(m.Height - m.Ascent - m.Descent)
	tracer().Debugf("parsed font %s, units per em = %d", f.Fontname, upem)
	return f, nil
}

// UnitsPerEm returns the size of the font's design-unit grid.
func (sf *ScalableFont) UnitsPerEm() sfnt.Units {
	return sf.metrics.UnitsPerEm
}

// Metrics returns the font's vertical metrics in design units.
func (sf *ScalableFont) Metrics() FontMetricsInfo {
	return sf.metrics
}

// GlyphIndex returns the glyph index for a code-point.
// If the code-point cannot be found, 0 (the '.notdef' glyph) is returned.
//
// buf may be nil; clients iterating over many code-points should provide a
// buffer to avoid allocations. A buffer must not be shared between goroutines.
func (sf *ScalableFont) GlyphIndex(buf *sfnt.Buffer, r rune) sfnt.GlyphIndex {
	gid, err := sf.SFNT.GlyphIndex(buf, r)
	if err != nil {
		tracer().Debugf("glyph index for %#U: %v", r, err)
		return 0
	}
	return gid
}

// GlyphAdvance returns the advance width of the glyph for a code-point, in
// design units. Code-points without a glyph get the advance of '.notdef'.
func (sf *ScalableFont) GlyphAdvance(buf *sfnt.Buffer, r rune) sfnt.Units {
	gid := sf.GlyphIndex(buf, r)
	adv, err := sf.SFNT.GlyphAdvance(buf, gid, fixed.Int26_6(sf.metrics.UnitsPerEm), xfont.HintingNone)
	if err != nil {
		tracer().Errorf("advance of glyph %d in font %s: %v", gid, sf.Fontname, err)
		return 0
	}
	return sfnt.Units(adv)
}

// VMetrics returns the vertical metrics of a font at a given scale, in points.
func (sf *ScalableFont) VMetrics(scale Scale) VMetrics {
	if sf.metrics.UnitsPerEm == 0 {
		return VMetrics{}
	}
	f := scale.Y / float32(sf.metrics.UnitsPerEm)
	return VMetrics{
		Ascent:  float32(sf.metrics.Ascent) * f,
		Descent: float32(sf.metrics.Descent) * f,
		LineGap: float32(sf.metrics.LineGap) * f,
	}
}

func (sf *ScalableFont) String() string {
	return sf.Fontname
}

// --- Scale -----------------------------------------------------------------

// Scale is the size a font is set at, in points per em.
// X and Y usually are identical; different values distort the font.
type Scale struct {
	X, Y float32
}

// Uniform returns a scale with identical horizontal and vertical magnification.
func Uniform(size float32) Scale {
	return Scale{X: size, Y: size}
}

// IsZero is true for scales which render nothing.
func (s Scale) IsZero() bool {
	return s.X == 0 || s.Y == 0
}

func (s Scale) String() string {
	if s.X == s.Y {
		return fmt.Sprintf("%.2fbp", s.X)
	}
	return fmt.Sprintf("%.2fx%.2fbp", s.X, s.Y)
}

// VMetrics are the vertical metrics of a font at a given scale.
// The y-axis points upwards, i.e. Descent is usually negative.
type VMetrics struct {
	Ascent, Descent, LineGap float32
}
