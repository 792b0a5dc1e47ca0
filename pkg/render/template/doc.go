// Package template defines the renderer-agnostic template contract used to
// interpolate configuration documents, with a pongo2-backed engine in the
// pongo subpackage.
package template
