package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-tinymce/pkg/options"
	"github.com/goliatone/go-tinymce/pkg/render/template"
	"github.com/goliatone/go-tinymce/pkg/render/template/pongo"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS reads documents from fsys instead of the OS filesystem.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithTemplateRenderer replaces the pongo2 engine used for interpolation.
func WithTemplateRenderer(renderer template.TemplateRenderer) LoaderOption {
	return func(l *Loader) {
		l.renderer = renderer
	}
}

// WithTemplateData adds values visible to document templates.
func WithTemplateData(data map[string]any) LoaderOption {
	return func(l *Loader) {
		if len(data) == 0 {
			return
		}
		if l.data == nil {
			l.data = make(map[string]any, len(data))
		}
		for key, value := range data {
			l.data[strings.TrimSpace(key)] = value
		}
	}
}

// WithEnvironment controls whether the process environment is exposed to
// templates as `env`. It is on by default.
func WithEnvironment(enabled bool) LoaderOption {
	return func(l *Loader) {
		l.env = enabled
	}
}

// WithDefaults sets the provider used for missing documents and for the
// synthesized default profile.
func WithDefaults(provider DefaultsProvider) LoaderOption {
	return func(l *Loader) {
		if provider != nil {
			l.defaults = provider
		}
	}
}

// WithLogger routes loader diagnostics to logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader reads configuration documents.
type Loader struct {
	fsys     fs.FS
	renderer template.TemplateRenderer
	data     map[string]any
	env      bool
	defaults DefaultsProvider
	logger   *slog.Logger
}

// NewLoader builds a loader reading from the OS filesystem with pongo2
// interpolation and the built-in defaults.
func NewLoader(fns ...LoaderOption) *Loader {
	l := &Loader{
		env:      true,
		defaults: BuiltinDefaults,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(l)
	}
	return l
}

// Load reads the document at path. A missing or unreadable document yields a
// Configuration holding the defaults and no error. Template, parse, and shape
// failures are returned as *LoadError.
func Load(path string, fns ...LoaderOption) (Loaded, error) {
	return NewLoader(fns...).Load(path)
}

// Load reads the document at path; see the package-level Load.
func (l *Loader) Load(path string) (Loaded, error) {
	data, err := l.read(path)
	if err != nil {
		l.logger.Debug("tinymce configuration not readable, using defaults",
			slog.String("path", path),
			slog.Any("error", err),
		)
		return NewDefault(l.defaults), nil
	}

	text := string(data)
	if pongo.IsTemplateContent(text) {
		text, err = l.interpolate(path, text)
		if err != nil {
			return nil, &LoadError{Path: path, Stage: StageTemplate, Err: err}
		}
	}

	tree, err := parseDocument([]byte(text), path)
	if err != nil {
		return nil, &LoadError{Path: path, Stage: StageParse, Err: err}
	}

	loaded, err := l.build(tree)
	if err != nil {
		return nil, &LoadError{Path: path, Stage: StageShape, Err: err}
	}

	if multi, ok := loaded.(*MultipleConfiguration); ok {
		l.logger.Debug("loaded tinymce profiles",
			slog.String("path", path),
			slog.Any("profiles", multi.Names()),
		)
	} else {
		l.logger.Debug("loaded tinymce configuration", slog.String("path", path))
	}
	return loaded, nil
}

func (l *Loader) read(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fs.ErrNotExist
	}
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "/")))
	}
	return os.ReadFile(name)
}

func (l *Loader) interpolate(name, text string) (string, error) {
	renderer := l.renderer
	if renderer == nil {
		var opts []pongo.Option
		opts = append(opts, pongo.WithAutoescape(false))
		if l.fsys != nil {
			opts = append(opts, pongo.WithFS(l.fsys))
		} else {
			opts = append(opts, pongo.WithBaseDir(filepath.Dir(name)))
		}
		engine, err := pongo.New(opts...)
		if err != nil {
			return "", err
		}
		renderer = engine
	}

	data := make(map[string]any, len(l.data)+1)
	if l.env {
		data["env"] = environment()
	}
	for key, value := range l.data {
		data[key] = value
	}
	return renderer.RenderString(text, data)
}

func (l *Loader) build(tree any) (Loaded, error) {
	if tree == nil {
		return New(nil), nil
	}

	top, ok := asStringMap(tree)
	if !ok {
		return nil, fmt.Errorf("top-level value must be a mapping, got %T", tree)
	}

	if !isProfileSet(top) {
		return New(options.FromMap(top)), nil
	}

	profiles := make(map[string]*Configuration, len(top))
	for name, value := range top {
		inner, _ := asStringMap(value)
		profiles[name] = New(options.FromMap(inner))
	}
	return NewMultiple(profiles, WithDefaultsProvider(l.defaults)), nil
}

// isProfileSet reports whether every top-level value is a mapping (or empty)
// and at least one is a mapping. A document of empty entries is a profile
// set when it declares the default profile.
func isProfileSet(top map[string]any) bool {
	if len(top) == 0 {
		return false
	}
	mappings := 0
	for _, value := range top {
		if value == nil {
			continue
		}
		if _, ok := asStringMap(value); !ok {
			return false
		}
		mappings++
	}
	if mappings > 0 {
		return true
	}
	_, hasDefault := top[DefaultProfile]
	return hasDefault
}

func parseDocument(data []byte, source string) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tree any
	if strings.EqualFold(filepath.Ext(source), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&tree); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return normalize(tree), nil
	}

	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return normalize(tree), nil
}

// normalize rewrites map[any]any nodes into map[string]any so the rest of
// the loader only deals with one mapping type.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}

func asStringMap(value any) (map[string]any, bool) {
	typed, ok := value.(map[string]any)
	return typed, ok
}

func environment() map[string]any {
	env := make(map[string]any)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// IsLoadError reports whether err carries a *LoadError.
func IsLoadError(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
