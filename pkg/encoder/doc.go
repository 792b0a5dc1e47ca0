// Package encoder turns editor options into the payload passed to
// tinyMCE.init: lists collapse to comma-joined strings, callback options
// become Function values that serializers emit as raw code, and the language
// option is resolved from the request locale against a LanguageSet.
package encoder
