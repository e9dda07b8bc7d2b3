/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "scale" is the size a scalable font is set at, given as points per em
in horizontal and vertical direction. Metrics of a scalable font are
in font design units; applying a scale converts them to points.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Fonts are parsed with golang.org/x/image/font/sfnt. Once parsed, a
ScalableFont is read-only and may be used from multiple goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mdpdf.fonts'
func tracer() tracing.Trace {
	return tracing.Select("mdpdf.fonts")
}
