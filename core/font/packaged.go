package font

import (
	"sort"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Packaged fonts are always present. We use the Go font family, which covers
// every font role a document needs: regular, bold, italic, bold italic and
// monospace.
var packagedFonts = map[string][]byte{
	"go-regular":    goregular.TTF,
	"go-bold":       gobold.TTF,
	"go-italic":     goitalic.TTF,
	"go-bolditalic": gobolditalic.TTF,
	"go-mono":       gomono.TTF,
	"go-monobold":   gomonobold.TTF,
}

// PackagedFontNames returns the names of all fonts compiled into the binary.
func PackagedFontNames() []string {
	names := make([]string, 0, len(packagedFonts))
	for n := range packagedFonts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PackagedFont parses a font compiled into the binary. name must be one of
// PackagedFontNames, otherwise PackagedFont returns false.
func PackagedFont(name string) (*ScalableFont, bool) {
	data, ok := packagedFonts[name]
	if !ok {
		return nil, false
	}
	f, err := ParseOpenTypeFont(data)
	if err != nil {
		panic("cannot parse packaged font " + name) // this cannot happen
	}
	f.Filepath = "packaged:" + name
	return f, true
}
