package textmetrics

import (
	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/mdpdf/engine/style"
)

// Resources provides loaded fonts and the active configuration.
//
// Font returns false for fonts which have not been loaded. For fonts named
// in the configuration, this must not happen once measuring has started.
type Resources interface {
	Font(name string) (*font.ScalableFont, bool)
	Config() *Config
}

// RoleForStyle selects the font role for a style. The first match wins:
// code is set in monospace, regardless of other classes; strong together with
// emphasis is set in bold italic; then strong in bold and emphasis in italic.
// Everything else uses the regular font.
func RoleForStyle(s style.Style) FontRole {
	strong := s.Contains(style.Strong)
	emphasis := s.Contains(style.Emphasis)
	switch {
	case s.Contains(style.Code):
		return RoleMono
	case strong && emphasis:
		return RoleBoldItalic
	case strong:
		return RoleBold
	case emphasis:
		return RoleItalic
	}
	return RoleRegular
}

// FontFromStyle returns the font to use for a style.
// The font is owned by res.
//
// If the font configured for the style's role is not loaded, FontFromStyle
// panics with an error of code core.EINVARIANT.
func FontFromStyle(res Resources, s style.Style) *font.ScalableFont {
	role := RoleForStyle(s)
	name := res.Config().FontName(role)
	f, ok := res.Font(name)
	if !ok || f == nil {
		core.Invariant("font %q for role %s is not loaded; all fonts must be loaded during start-up", name, role)
	}
	return f
}

// ScaleFromStyle returns the font size for a style.
//
// Headings take precedence over everything else. If a style contains more
// than one heading class, the deepest level wins, i.e. h4 before h3 before
// h2 before h1.
func ScaleFromStyle(conf *Config, s style.Style) font.Scale {
	switch {
	case s.Contains(style.Heading(4)):
		return conf.H4Size
	case s.Contains(style.Heading(3)):
		return conf.H3Size
	case s.Contains(style.Heading(2)):
		return conf.H2Size
	case s.Contains(style.Heading(1)):
		return conf.H1Size
	}
	return conf.DefaultSize
}
