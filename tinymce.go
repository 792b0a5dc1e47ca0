// Package tinymce wires the editor configuration pipeline together: load a
// YAML/JSON document, pick a profile, merge per-request overrides and theme
// skins, then encode the result for tinyMCE.init.
package tinymce

import (
	"github.com/goliatone/go-tinymce/pkg/config"
	"github.com/goliatone/go-tinymce/pkg/encoder"
	"github.com/goliatone/go-tinymce/pkg/options"
	"github.com/goliatone/go-tinymce/pkg/sanitize"
)

// Configuration aliases config.Configuration for callers that only import the
// root package.
type Configuration = config.Configuration

// MultipleConfiguration aliases config.MultipleConfiguration.
type MultipleConfiguration = config.MultipleConfiguration

// Loaded is either a Configuration or a MultipleConfiguration.
type Loaded = config.Loaded

// LoadError reports template, parse or shape failures.
type LoadError = config.LoadError

// Options is the editor option mapping.
type Options = options.Options

// Encoded is the payload handed to tinyMCE.init.
type Encoded = encoder.Encoded

// Function marks callback options that serializers emit as code.
type Function = encoder.Function

// ErrProfileNotFound is returned when a request names an unknown profile.
var ErrProfileNotFound = config.ErrProfileNotFound

// Load reads a configuration document. A missing file yields the defaults.
func Load(path string, fns ...config.LoaderOption) (Loaded, error) {
	return config.Load(path, fns...)
}

// Defaults returns the built-in option set.
func Defaults() Options {
	return config.Defaults()
}

// SanitizeContent cleans HTML submitted from an editor.
func SanitizeContent(html string) string {
	return sanitize.Content(html)
}
