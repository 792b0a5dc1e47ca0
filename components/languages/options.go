package languages

import (
	"io/fs"
	"net/http"
	"strings"
)

// DefaultLanguage is the pack used when a locale is not available.
const DefaultLanguage = "en"

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// FS and Dir locate the language-pack entries. A nil FS selects the
	// embedded pack set.
	FS  fs.FS
	Dir string
	// Codes replaces directory discovery with an explicit code set.
	Codes []string
	// Fallback is returned by negotiation when nothing matches.
	Fallback string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/languages",
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchTop,
		Dir:             defaultPackDir,
		Fallback:        DefaultLanguage,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchTop
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/languages"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	opts.Dir = strings.Trim(strings.TrimSpace(opts.Dir), "/")
	if opts.Dir == "" {
		opts.Dir = "."
	}
	opts.Fallback = strings.TrimSpace(opts.Fallback)
	if opts.Fallback == "" {
		opts.Fallback = DefaultLanguage
	}
	if opts.Codes != nil {
		opts.Codes = append([]string{}, opts.Codes...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithFS reads language packs from fsys instead of the embedded set.
func WithFS(fsys fs.FS) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FS = fsys
	}
}

// WithDir sets the directory (inside the configured FS) holding `<code>.js`
// language packs.
func WithDir(dir string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Dir = dir
	}
}

// WithCodes pins the available set, skipping filesystem discovery.
func WithCodes(codes []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if codes == nil {
			o.Codes = nil
			return
		}
		o.Codes = append([]string{}, codes...)
	}
}

func WithFallback(code string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Fallback = code
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
