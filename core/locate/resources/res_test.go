package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/core/font/fontregistry"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goitalic"
)

func TestLoadPackagedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	loader := ResolveFont("Go-Bold")
	f, err := loader.Font()
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Logf("name of font = %s", f.Fontname)
	assert.Equal(t, "packaged:go-bold", f.Filepath)
}

func TestLoadFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	//
	fontpath := filepath.Join(t.TempDir(), "MyItalic.ttf")
	require.NoError(t, os.WriteFile(fontpath, goitalic.TTF, 0644))
	f, err := ResolveFont(fontpath).Font()
	require.NoError(t, err)
	assert.Equal(t, fontpath, f.Filepath)
	//
	broken := filepath.Join(t.TempDir(), "broken.ttf")
	require.NoError(t, os.WriteFile(broken, []byte("no font"), 0644))
	_, err = ResolveFont(broken).Font()
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	//
	_, err := ResolveFont("no-such-font-anywhere-4711").Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ResolveFont("  ").Font()
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLoadFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	err := LoadFonts(context.Background(), reg, "go-regular", "go-bold", "go-mono", "go-bold")
	require.NoError(t, err)
	assert.Equal(t, []string{"go-bold", "go-mono", "go-regular"}, reg.Names())
	//
	err = LoadFonts(context.Background(), reg, "go-italic", "no-such-font-anywhere-4711")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, ok := reg.Font("go-italic")
	assert.True(t, ok, "fonts which could be resolved should be stored nevertheless")
}

func TestLoadFontsRejectsCollidingNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	err := LoadFonts(context.Background(), reg, "go-regular", "Go Italic", "go_italic.ttf")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Empty(t, reg.Names(), "nothing should be loaded for ambiguous names")
}

func TestLoadFontsCanceled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.resources")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reg := fontregistry.NewRegistry()
	err := LoadFonts(ctx, reg, "go-regular")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reg.Names())
}
