package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/mdpdf/core/font/fontregistry"
)

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is returned by ResolveFont. Calling Font or Await blocks until
// the font is loaded.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	Await(ctx context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.ScalableFont, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a font by name. name may be the name of a packaged font,
// the path of a font file, or the (file) name of a system font.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		f, err := resolveFont(name)
		ch <- fontPlusErr{font: f, err: err}
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func resolveFont(name string) (*font.ScalableFont, error) {
	if strings.TrimSpace(name) == "" {
		return nil, core.Error(core.EINVALID, "empty font name")
	}
	if f, ok := font.PackagedFont(fontregistry.NormalizeFontname(name)); ok {
		tracer().Debugf("found font %s as packaged font", name)
		return f, nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		tracer().Debugf("found font %s as font file", name)
		f, err := font.LoadOpenTypeFont(name)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot parse font file %s", name)
		}
		return f, nil
	}
	if fpath := findSystemFont(name); fpath != "" {
		tracer().Debugf("%s is a system font: %s", name, fpath)
		f, err := font.LoadOpenTypeFont(fpath)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot parse system font %s", fpath)
		}
		return f, nil
	}
	tracer().Infof("font %s not found", name)
	return nil, NotFound(name)
}

// findSystemFont tries to locate a system font file for a name. If there is no
// file with that name, findSystemFont looks for font files matching the family
// part of the name together with the style and weight indicated by its suffix,
// e.g. "DejaVuSans-Bold".
func findSystemFont(name string) string {
	if fpath, err := findfont.Find(name); err == nil && fpath != "" {
		return fpath
	}
	if filepath.Ext(name) == "" {
		if fpath, err := findfont.Find(name + ".ttf"); err == nil && fpath != "" {
			return fpath
		}
	}
	family := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if dash := strings.LastIndex(family, "-"); dash > 0 {
		family = family[:dash]
	}
	style, weight := font.GuessStyleAndWeight(name)
	for _, fpath := range findfont.List() {
		if font.Matches(fpath, family, style, weight) {
			return fpath
		}
	}
	return ""
}

// --- Start-up --------------------------------------------------------------

// LoadFonts resolves a set of fonts concurrently and stores them in a registry,
// using the names as registry keys. It returns the first error encountered, and
// clients should consider the registry unusable in this case. Different names
// which normalize to the same registry key are rejected before anything is
// loaded.
//
// LoadFonts is meant to be called once during start-up, before any layout
// activity reads from the registry.
func LoadFonts(ctx context.Context, registry *fontregistry.Registry, names ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	keys := make(map[string]string, len(names))
	for _, name := range names {
		key := fontregistry.NormalizeFontname(name)
		if other, ok := keys[key]; ok && other != name {
			return core.Error(core.EINVALID, "font names %q and %q denote the same registry key %q",
				other, name, key)
		}
		keys[key] = name
	}
	promises := make(map[string]FontPromise, len(names))
	for _, name := range names {
		if _, ok := promises[name]; ok {
			continue
		}
		if _, ok := registry.Font(name); ok {
			continue
		}
		promises[name] = ResolveFont(name)
	}
	var first error
	for name, promise := range promises {
		f, err := promise.Await(ctx)
		if err != nil {
			tracer().Errorf("cannot load font %s: %v", name, err)
			if first == nil {
				first = err
			}
			continue
		}
		registry.StoreFont(name, f)
	}
	return first
}
