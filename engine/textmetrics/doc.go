/*
Package textmetrics measures styled runs of text.

A run of text carries a style.Style. The style determines which of the
configured fonts to use (regular, bold, italic, bold italic or monospace)
and at which size to set it. Given font and size, package textmetrics
calculates the width of a run and the height of a line, both in PDF points.

Fonts are looked up by name from a Resources provider. All configured fonts
have to be loaded before measuring starts (see NewEnvironment). A font
missing at measuring time is a broken invariant and will panic with an error
of code core.EINVARIANT, rather than silently measuring with a different font.

All functions are free of side effects and may be called concurrently, as
long as the fonts and the configuration are not modified.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textmetrics

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mdpdf.text'
func tracer() tracing.Trace {
	return tracing.Select("mdpdf.text")
}
