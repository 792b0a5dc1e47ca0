package tinymce

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tinymce/components/languages"
	"github.com/goliatone/go-tinymce/pkg/config"
	"github.com/goliatone/go-tinymce/pkg/encoder"
	"github.com/goliatone/go-tinymce/pkg/skin"
)

// Request describes one editor instance being rendered.
type Request struct {
	// Profile selects a named profile; empty selects the default.
	Profile string
	// Locale is the caller's locale. When empty it is negotiated from
	// AcceptLanguage if the language set supports negotiation.
	Locale         string
	AcceptLanguage string
	// Overrides are laid over the profile options.
	Overrides map[string]any
	// ThemeName and ThemeVariant are passed to the theme selector, if any.
	ThemeName    string
	ThemeVariant string
}

// Negotiator picks a language for an Accept-Language header value.
type Negotiator interface {
	Negotiate(acceptLanguage string) string
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithLanguages sets the language set used to resolve the language option.
// It defaults to the embedded language packs.
func WithLanguages(langs encoder.LanguageSet) PipelineOption {
	return func(p *Pipeline) {
		if langs != nil {
			p.langs = langs
		}
	}
}

// WithFallbackLanguage overrides the language used when the locale has no pack.
func WithFallbackLanguage(code string) PipelineOption {
	return func(p *Pipeline) {
		if code = strings.TrimSpace(code); code != "" {
			p.fallback = code
		}
	}
}

// WithThemeSelector resolves request themes into skin options.
func WithThemeSelector(selector theme.ThemeSelector) PipelineOption {
	return func(p *Pipeline) {
		p.skins = skin.NewResolver(selector)
	}
}

// WithPipelineLogger routes pipeline diagnostics to logger.
func WithPipelineLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Pipeline turns a loaded document and a Request into editor options.
type Pipeline struct {
	loaded   config.Loaded
	langs    encoder.LanguageSet
	fallback string
	skins    *skin.Resolver
	logger   *slog.Logger

	encoder *encoder.Encoder
}

// NewPipeline builds a pipeline over loaded. A nil document behaves like a
// missing file and serves the defaults.
func NewPipeline(loaded config.Loaded, fns ...PipelineOption) *Pipeline {
	if loaded == nil {
		loaded = config.NewDefault(nil)
	}
	p := &Pipeline{
		loaded:   loaded,
		fallback: encoder.DefaultFallbackLanguage,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(p)
	}
	if p.langs == nil {
		p.langs = languages.NewRegistry(languages.WithFallback(p.fallback))
	}
	p.encoder = encoder.New(p.langs, encoder.WithFallbackLanguage(p.fallback))
	return p
}

// Configuration returns the profile named by req with overrides and skin
// options applied.
func (p *Pipeline) Configuration(req Request) (*config.Configuration, error) {
	profile, err := p.loaded.Profile(strings.TrimSpace(req.Profile))
	if err != nil {
		return nil, fmt.Errorf("tinymce: resolve profile: %w", err)
	}

	cfg := profile
	if len(req.Overrides) > 0 {
		cfg = cfg.MergeMap(req.Overrides)
	}

	cfg, err = p.skins.Apply(cfg, req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, fmt.Errorf("tinymce: apply theme: %w", err)
	}
	return cfg, nil
}

// Resolve returns the encoded options for req.
func (p *Pipeline) Resolve(req Request) (encoder.Encoded, error) {
	cfg, err := p.Configuration(req)
	if err != nil {
		return nil, err
	}

	locale := p.locale(req)
	encoded := cfg.OptionsForTinyMCE(p.encoder, locale)

	p.logger.Debug("resolved tinymce options",
		slog.String("profile", req.Profile),
		slog.String("locale", locale),
		slog.Any("language", encoded[encoder.LanguageKey]),
	)
	return encoded, nil
}

// Script returns the tinyMCE.init call for req.
func (p *Pipeline) Script(req Request) (string, error) {
	encoded, err := p.Resolve(req)
	if err != nil {
		return "", err
	}
	script, err := encoder.InitScript(encoded)
	if err != nil {
		return "", fmt.Errorf("tinymce: build init script: %w", err)
	}
	return script, nil
}

func (p *Pipeline) locale(req Request) string {
	if locale := strings.TrimSpace(req.Locale); locale != "" {
		return locale
	}
	if req.AcceptLanguage == "" {
		return ""
	}
	if negotiator, ok := p.langs.(Negotiator); ok {
		return negotiator.Negotiate(req.AcceptLanguage)
	}
	return ""
}
