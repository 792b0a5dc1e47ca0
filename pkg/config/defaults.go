package config

import "github.com/goliatone/go-tinymce/pkg/options"

// DefaultProfile names the profile MultipleConfiguration always carries.
const DefaultProfile = "default"

// Defaults returns the built-in option set. Every call returns a fresh copy.
func Defaults() options.Options {
	return options.Options{
		"mode":            options.Text("specific_textareas"),
		"theme":           options.Text("advanced"),
		"editor_selector": options.Text("tinymce"),
	}
}

// DefaultsProvider supplies the options used when no document is available
// and when a multi-profile document lacks a default profile.
type DefaultsProvider interface {
	Defaults() options.Options
}

// DefaultsFunc adapts a function to DefaultsProvider.
type DefaultsFunc func() options.Options

func (fn DefaultsFunc) Defaults() options.Options {
	if fn == nil {
		return Defaults()
	}
	return fn().Clone()
}

// BuiltinDefaults serves Defaults().
var BuiltinDefaults DefaultsProvider = DefaultsFunc(Defaults)

// StaticDefaults serves a copy of opts on every call.
func StaticDefaults(opts options.Options) DefaultsProvider {
	snapshot := opts.Clone()
	return DefaultsFunc(func() options.Options { return snapshot })
}

func resolveDefaults(provider DefaultsProvider) options.Options {
	if provider == nil {
		return Defaults()
	}
	return provider.Defaults().Clone()
}
