/*
Package fontregistry manages a registry for loaded fonts.

A registry is filled during start-up and read during layout. Fonts are
stored under normalized names, so that "Go Regular.ttf" and "go_regular"
denote the same entry. Lookups never load anything: a font missing from the
registry has not been loaded, and it is up to the client to decide what this
means.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'mdpdf.fonts'
func tracer() tracing.Trace {
	return tracing.Select("mdpdf.fonts")
}
