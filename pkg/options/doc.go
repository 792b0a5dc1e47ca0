// Package options defines the editor option data model: a closed tagged
// variant Value (text, integer, boolean, list of text, callback, raw) and the
// Options mapping that configurations carry. Values are classified once at
// the document boundary via ValueOf so downstream encoding is a plain switch
// over Kind.
package options
