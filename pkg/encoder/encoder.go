package encoder

import (
	"strings"

	"github.com/goliatone/go-tinymce/pkg/options"
)

// LanguageKey is the option the encoder fills from the request locale.
const LanguageKey = "language"

// DefaultFallbackLanguage is used when the request locale has no pack.
const DefaultFallbackLanguage = "en"

// LanguageSet reports which language packs exist. components/languages.Registry
// satisfies it.
type LanguageSet interface {
	IsAvailable(code string) bool
}

// Function is a client-side function literal. Serializers must emit it as raw
// code rather than as a string literal.
type Function string

func (f Function) String() string { return string(f) }

// Encoded is the option mapping handed to the view layer. Values are string,
// int, bool, Function, or a raw pass-through value.
type Encoded map[string]any

// Option configures an Encoder.
type Option func(*Encoder)

// WithFallbackLanguage overrides the language used when the locale has no pack.
func WithFallbackLanguage(code string) Option {
	return func(e *Encoder) {
		if trimmed := strings.TrimSpace(code); trimmed != "" {
			e.fallback = trimmed
		}
	}
}

// Encoder converts Options into the client init payload.
type Encoder struct {
	langs    LanguageSet
	fallback string
}

// New builds an encoder. A nil LanguageSet leaves only the fallback language
// available.
func New(langs LanguageSet, opts ...Option) *Encoder {
	enc := &Encoder{langs: langs, fallback: DefaultFallbackLanguage}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(enc)
	}
	return enc
}

// Encode converts each option to its wire form and fills in the language when
// the input does not set one. An explicit language always wins.
func (e *Encoder) Encode(opts options.Options, locale string) Encoded {
	if e == nil {
		e = New(nil)
	}

	out := make(Encoded, len(opts)+1)
	for key, value := range opts {
		if key == LanguageKey {
			out[key] = value.Interface()
			continue
		}
		out[key] = encodeValue(value)
	}

	if _, ok := out[LanguageKey]; !ok {
		out[LanguageKey] = e.ResolveLanguage(locale)
	}
	return out
}

// ResolveLanguage returns locale when a pack exists for it, otherwise the
// fallback language.
func (e *Encoder) ResolveLanguage(locale string) string {
	if e == nil {
		return DefaultFallbackLanguage
	}
	if locale != "" && e.langs != nil && e.langs.IsAvailable(locale) {
		return locale
	}
	return e.fallback
}

// Encode is a convenience wrapper around New(langs).Encode.
func Encode(opts options.Options, locale string, langs LanguageSet) Encoded {
	return New(langs).Encode(opts, locale)
}

func encodeValue(value options.Value) any {
	switch value.Kind() {
	case options.KindList:
		items, _ := value.List()
		return strings.Join(items, ",")
	case options.KindCallback:
		source, _ := value.Text()
		return Function(source)
	default:
		return value.Interface()
	}
}
