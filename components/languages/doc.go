// Package languages enumerates the TinyMCE language packs available to the
// editor, negotiates a pack from a request locale, and exposes a small
// net/http handler that returns JSON options for locale pickers.
//
// Language codes are derived from the `<code>.js` entries of a language-pack
// directory. The default registry reads the embedded pack set under
// data/langs; callers serving their own TinyMCE build point the registry at
// that build's langs directory with WithFS and WithDir.
package languages
