package textmetrics

import (
	"context"

	"github.com/npillmayer/mdpdf/core/font"
	"github.com/npillmayer/mdpdf/core/font/fontregistry"
	"github.com/npillmayer/mdpdf/core/locate/resources"
)

// Environment is the standard Resources provider: a configuration together
// with a font registry holding all of its fonts.
type Environment struct {
	registry *fontregistry.Registry
	conf     *Config
}

var _ Resources = (*Environment)(nil)

// NewEnvironment validates a configuration and loads all of its fonts into
// registry. If registry is nil, a new registry is created.
//
// After NewEnvironment returns without error, every font the configuration
// refers to is present, which is the precondition for measuring.
func NewEnvironment(ctx context.Context, registry *fontregistry.Registry, conf *Config) (*Environment, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = fontregistry.NewRegistry()
	}
	if err := resources.LoadFonts(ctx, registry, conf.FontNames()...); err != nil {
		return nil, err
	}
	tracer().Infof("loaded fonts %v", conf.FontNames())
	return &Environment{registry: registry, conf: conf}, nil
}

// Font returns a loaded font by name.
func (env *Environment) Font(name string) (*font.ScalableFont, bool) {
	return env.registry.Font(name)
}

// Config returns the configuration of env.
func (env *Environment) Config() *Config {
	return env.conf
}

// Registry returns the font registry of env.
func (env *Environment) Registry() *fontregistry.Registry {
	return env.registry
}
