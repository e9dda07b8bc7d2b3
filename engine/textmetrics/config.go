package textmetrics

import (
	"strconv"
	"strings"

	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/core/dimen"
	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"
)

// FontRole is a logical font, resolved to a concrete font by the configuration.
type FontRole int

// Font roles
const (
	RoleRegular FontRole = iota
	RoleBold
	RoleItalic
	RoleBoldItalic
	RoleMono
)

var roleNames = [...]string{"regular", "bold", "italic", "bold-italic", "mono"}

func (r FontRole) String() string {
	if r < RoleRegular || r > RoleMono {
		return "<unknown role>"
	}
	return roleNames[r]
}

// Config holds the fonts and font sizes for typesetting Markdown.
// All fields are required.
type Config struct {
	DefaultFont    string // font names, as understood by resources.ResolveFont
	BoldFont       string
	ItalicFont     string
	BoldItalicFont string
	MonoFont       string
	H1Size         font.Scale
	H2Size         font.Scale
	H3Size         font.Scale
	H4Size         font.Scale
	DefaultSize    font.Scale
}

// Configuration keys, as used by ConfigFromSettings.
const (
	KeyDefaultFont    = "font.default"
	KeyBoldFont       = "font.bold"
	KeyItalicFont     = "font.italic"
	KeyBoldItalicFont = "font.bolditalic"
	KeyMonoFont       = "font.mono"
	KeyH1Size         = "size.h1"
	KeyH2Size         = "size.h2"
	KeyH3Size         = "size.h3"
	KeyH4Size         = "size.h4"
	KeyDefaultSize    = "size.default"
)

// DefaultConfig returns a configuration using the packaged Go fonts.
func DefaultConfig() *Config {
	return &Config{
		DefaultFont:    "go-regular",
		BoldFont:       "go-bold",
		ItalicFont:     "go-italic",
		BoldItalicFont: "go-bolditalic",
		MonoFont:       "go-mono",
		H1Size:         font.Uniform(24),
		H2Size:         font.Uniform(20),
		H3Size:         font.Uniform(16),
		H4Size:         font.Uniform(14),
		DefaultSize:    font.Uniform(12),
	}
}

// ConfigFromSettings reads a configuration from application settings.
// Every key has to be present; missing keys result in an error with code
// core.EMISSING, malformed sizes in an error with code core.EINVALID.
//
// Sizes are dimensions, e.g. "11pt" or "4.5mm". Plain numbers denote
// big (PDF) points.
func ConfigFromSettings(conf schuko.Configuration) (*Config, error) {
	c := &Config{}
	fonts := []struct {
		key    string
		target *string
	}{
		{KeyDefaultFont, &c.DefaultFont},
		{KeyBoldFont, &c.BoldFont},
		{KeyItalicFont, &c.ItalicFont},
		{KeyBoldItalicFont, &c.BoldItalicFont},
		{KeyMonoFont, &c.MonoFont},
	}
	for _, f := range fonts {
		v := strings.TrimSpace(conf.GetString(f.key))
		if v == "" {
			return nil, core.Error(core.EMISSING, "configuration key %s is not set", f.key)
		}
		*f.target = v
	}
	sizes := []struct {
		key    string
		target *font.Scale
	}{
		{KeyH1Size, &c.H1Size},
		{KeyH2Size, &c.H2Size},
		{KeyH3Size, &c.H3Size},
		{KeyH4Size, &c.H4Size},
		{KeyDefaultSize, &c.DefaultSize},
	}
	for _, s := range sizes {
		v := strings.TrimSpace(conf.GetString(s.key))
		if v == "" {
			return nil, core.Error(core.EMISSING, "configuration key %s is not set", s.key)
		}
		scale, err := ParseSize(v)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "configuration key %s: %s", s.key, core.UserMessage(err))
		}
		*s.target = scale
	}
	return c, nil
}

// ParseSize parses a font size into a uniform scale.
func ParseSize(s string) (font.Scale, error) {
	var pts float64
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		pts = n
	} else {
		d, pcnt, err := dimen.ParseDimen(s)
		if err != nil || pcnt {
			return font.Scale{}, core.WrapError(dimen.ErrDimenFormat, core.EINVALID,
				"not a font size: %q", s)
		}
		pts = float64(d.Points())
	}
	if pts <= 0 {
		return font.Scale{}, core.Error(core.EINVALID, "font size must be positive: %q", s)
	}
	return font.Uniform(float32(pts)), nil
}

// FontName returns the configured font name for a role.
func (c *Config) FontName(role FontRole) string {
	switch role {
	case RoleBold:
		return c.BoldFont
	case RoleItalic:
		return c.ItalicFont
	case RoleBoldItalic:
		return c.BoldItalicFont
	case RoleMono:
		return c.MonoFont
	}
	return c.DefaultFont
}

// FontNames returns the configured font names for all roles, in role order.
func (c *Config) FontNames() []string {
	names := make([]string, 0, len(roleNames))
	for r := RoleRegular; r <= RoleMono; r++ {
		names = append(names, c.FontName(r))
	}
	return names
}

// Validate checks that every field of a configuration is set.
//
// Fonts whose names suggest a style or weight different from their role
// (e.g. a regular font configured as the bold font) are reported to the
// trace, but are not considered an error.
func (c *Config) Validate() error {
	for r := RoleRegular; r <= RoleMono; r++ {
		name := c.FontName(r)
		if strings.TrimSpace(name) == "" {
			return core.Error(core.EMISSING, "no font configured for role %s", r)
		}
		c.checkRole(r, name)
	}
	for i, s := range []font.Scale{c.H1Size, c.H2Size, c.H3Size, c.H4Size, c.DefaultSize} {
		if s.X <= 0 || s.Y <= 0 {
			which := "default"
			if i < 4 {
				which = "h" + strconv.Itoa(i+1)
			}
			return core.Error(core.EINVALID, "font size for %s must be positive, is %s", which, s)
		}
	}
	return nil
}

func (c *Config) checkRole(role FontRole, name string) {
	style, weight := font.GuessStyleAndWeight(name)
	italic := style == xfont.StyleItalic || style == xfont.StyleOblique
	bold := weight >= xfont.WeightSemiBold
	switch role {
	case RoleBold:
		if !bold || italic {
			tracer().Infof("font %s does not look like a bold font", name)
		}
	case RoleItalic:
		if !italic || bold {
			tracer().Infof("font %s does not look like an italic font", name)
		}
	case RoleBoldItalic:
		if !italic || !bold {
			tracer().Infof("font %s does not look like a bold italic font", name)
		}
	}
}
