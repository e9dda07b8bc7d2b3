package main

import (
	"testing"

	"github.com/npillmayer/mdpdf/core"
	"github.com/npillmayer/mdpdf/engine/style"
	"github.com/npillmayer/mdpdf/engine/textmetrics"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.text")
	defer teardown()
	//
	s := settings{}
	require.NoError(t, s.Set("size.h1 = 30"))
	require.NoError(t, s.Set("font.mono=go-monobold"))
	assert.Equal(t, "30", s["size.h1"])
	assert.Equal(t, "go-monobold", s["font.mono"])
	assert.Contains(t, s.String(), "size.h1")
	assert.Error(t, s.Set("size.h1"))
	assert.Error(t, s.Set("=30"))
}

func TestInterpreterDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.text")
	defer teardown()
	//
	intp, err := newIntp(settings{})
	require.NoError(t, err)
	conf := intp.env.Config()
	assert.Equal(t, textmetrics.DefaultConfig().H1Size, conf.H1Size)
	assert.Equal(t, textmetrics.DefaultConfig().DefaultFont, conf.DefaultFont)
}

func TestInterpreterOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.text")
	defer teardown()
	//
	s := settings{}
	require.NoError(t, s.Set("size.h1=30"))
	require.NoError(t, s.Set("font.mono=go-monobold"))
	intp, err := newIntp(s)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, float64(intp.env.Config().H1Size.X), 1e-6)
	f := textmetrics.FontFromStyle(intp.env, style.New(style.Code))
	assert.Equal(t, "packaged:go-monobold", f.Filepath)
	//
	s = settings{}
	require.NoError(t, s.Set("size.h2=tiny"))
	_, err = newIntp(s)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.text")
	defer teardown()
	//
	intp, err := newIntp(settings{})
	require.NoError(t, err)
	assert.False(t, intp.execute(":style strong,h2"))
	assert.True(t, intp.style.Contains(style.Strong))
	assert.True(t, intp.style.Contains(style.Heading(2)))
	assert.False(t, intp.execute(":style nonsense"))
	assert.True(t, intp.style.Contains(style.Strong), "a bad style should leave the current style alone")
	assert.False(t, intp.execute("Hello World"))
	assert.False(t, intp.execute(":fonts"))
	assert.False(t, intp.execute(":config"))
	assert.False(t, intp.execute(":help"))
	assert.True(t, intp.execute("quit"))
	assert.True(t, intp.execute(":q"))
}
