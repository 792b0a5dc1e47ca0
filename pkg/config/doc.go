// Package config resolves TinyMCE editor configuration: it loads single or
// multi-profile YAML/JSON documents (interpolated through pongo2 first),
// merges request overrides into a profile, and hands the result to the
// encoder for the client init call.
//
// A document whose top-level values are all mappings is read as named
// profiles and yields a MultipleConfiguration that always carries a
// "default" profile. Empty entries count as profiles when the document
// declares "default". Any other mapping is a single profile. A missing file
// is not an error: Load returns a Configuration holding Defaults().
package config
