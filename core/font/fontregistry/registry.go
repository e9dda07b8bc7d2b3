package fontregistry

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// Registry is a type for holding information about loaded fonts for a
// typesetter.
type Registry struct {
	sync.RWMutex
	fonts map[string]*font.ScalableFont
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.ScalableFont),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
	}
}

// Font returns the font stored under name, if any.
// The font remains owned by the registry.
func (fr *Registry) Font(name string) (*font.ScalableFont, bool) {
	key := NormalizeFontname(name)
	fr.RLock()
	defer fr.RUnlock()
	f, ok := fr.fonts[key]
	return f, ok
}

// Names returns the sorted keys of all fonts in the registry.
func (fr *Registry) Names() []string {
	fr.RLock()
	defer fr.RUnlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		f, _ := fr.Font(k)
		tracer().Infof("font [%s] = %v", k, f.Fontname)
	}
	tracer().Infof("------------------------")
}

// NormalizeFontname creates a registry key from a font name or file name:
// surrounding space is trimmed, inner spaces become underscores, the
// extension of the file name is removed and the result is case folded.
// Directory components are kept, so fonts in different directories get
// different keys.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	base := filepath.Base(fname)
	if ext := filepath.Ext(base); len(ext) < len(base) {
		fname = strings.TrimSuffix(fname, ext)
	}
	return cases.Fold().String(fname)
}
