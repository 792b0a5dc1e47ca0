package languages

import "sync"

// Registry answers which language packs exist. The code set is computed on
// first use and is read-only afterwards, so a Registry is safe to share.
type Registry struct {
	opts Options

	once  sync.Once
	codes []string
	index map[string]struct{}
	err   error
}

// NewRegistry builds a registry from default options plus overrides.
func NewRegistry(fns ...OptionFn) *Registry {
	return &Registry{opts: NewOptions(fns...)}
}

// NewRegistryWithOptions builds a registry from a pre-constructed Options value.
func NewRegistryWithOptions(opts Options) *Registry {
	return &Registry{opts: NewOptions(func(o *Options) { *o = opts })}
}

// AvailableLanguages returns every known code in lexical order.
func (r *Registry) AvailableLanguages() ([]string, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return append([]string{}, r.codes...), nil
}

// IsAvailable reports whether a pack exists for code. Discovery failures make
// every code unavailable.
func (r *Registry) IsAvailable(code string) bool {
	if r.load() != nil {
		return false
	}
	_, ok := r.index[code]
	return ok
}

// Fallback returns the code used when negotiation finds no match.
func (r *Registry) Fallback() string {
	if r == nil {
		return DefaultLanguage
	}
	return r.opts.Fallback
}

// Negotiate picks the best available pack for an Accept-Language header value.
func (r *Registry) Negotiate(acceptLanguage string) string {
	codes, err := r.AvailableLanguages()
	if err != nil {
		return r.Fallback()
	}
	return Negotiate(codes, acceptLanguage, r.Fallback())
}

func (r *Registry) load() error {
	if r == nil {
		return errNilRegistry
	}
	r.once.Do(func() {
		var codes []string
		switch {
		case r.opts.Codes != nil:
			codes = normalizeCodes(r.opts.Codes)
		case r.opts.FS != nil:
			codes, r.err = LoadCodes(r.opts.FS, r.opts.Dir)
		default:
			codes, r.err = DefaultLanguages()
		}
		if r.err != nil {
			return
		}
		r.codes = codes
		r.index = make(map[string]struct{}, len(codes))
		for _, code := range codes {
			r.index[code] = struct{}{}
		}
	})
	return r.err
}
