package config

import (
	"github.com/goliatone/go-tinymce/pkg/encoder"
	"github.com/goliatone/go-tinymce/pkg/options"
)

// Loaded is what Load returns: a single Configuration or a
// MultipleConfiguration. Use a type switch to tell them apart.
type Loaded interface {
	Default() *Configuration
	Profile(name string) (*Configuration, error)
}

var (
	_ Loaded = (*Configuration)(nil)
	_ Loaded = (*MultipleConfiguration)(nil)
)

// Configuration holds one editor profile. It is immutable; Merge returns a
// new value.
type Configuration struct {
	options options.Options
}

// New stores opts as given. Defaults are not merged in.
func New(opts options.Options) *Configuration {
	return &Configuration{options: opts.Clone()}
}

// NewFromMap classifies raw values through options.ValueOf and stores them.
func NewFromMap(raw map[string]any) *Configuration {
	return &Configuration{options: options.FromMap(raw)}
}

// NewDefault builds a configuration holding the provider's defaults. A nil
// provider uses Defaults().
func NewDefault(provider DefaultsProvider) *Configuration {
	return &Configuration{options: resolveDefaults(provider)}
}

// Options returns a copy of the stored options.
func (c *Configuration) Options() options.Options {
	if c == nil {
		return options.Options{}
	}
	return c.options.Clone()
}

// Merge returns a new configuration with overrides laid over the receiver's
// options.
func (c *Configuration) Merge(overrides options.Options) *Configuration {
	return &Configuration{options: c.Options().Merge(overrides)}
}

// MergeMap is Merge for raw values.
func (c *Configuration) MergeMap(overrides map[string]any) *Configuration {
	return c.Merge(options.FromMap(overrides))
}

// OptionsForTinyMCE encodes the options for the client init call, resolving
// the language from locale when the options do not set one. A nil encoder
// only knows the fallback language.
func (c *Configuration) OptionsForTinyMCE(enc *encoder.Encoder, locale string) encoder.Encoded {
	return enc.Encode(c.Options(), locale)
}

// Default returns the receiver; a single-profile document is its own default.
func (c *Configuration) Default() *Configuration {
	return c
}

// Profile returns the receiver for DefaultProfile and ErrProfileNotFound for
// any other name.
func (c *Configuration) Profile(name string) (*Configuration, error) {
	if name == "" || name == DefaultProfile {
		return c, nil
	}
	return nil, profileNotFound(name)
}
