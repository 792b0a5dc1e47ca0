// Package skin maps go-theme selections onto TinyMCE skin options.
package skin

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tinymce/pkg/config"
	"github.com/goliatone/go-tinymce/pkg/options"
)

// Option keys written by Apply.
const (
	SkinKey        = "skin"
	SkinVariantKey = "skin_variant"
	ContentCSSKey  = "content_css"
)

// Manifest token and asset keys read by Apply.
const (
	TokenSkin       = "tinymce.skin"
	TokenContentCSS = "tinymce.content_css"
	AssetContentCSS = "tinymce.content_css"
)

// Resolver applies theme selections to configurations.
type Resolver struct {
	selector theme.ThemeSelector
}

// NewResolver wraps a go-theme selector.
func NewResolver(selector theme.ThemeSelector) *Resolver {
	return &Resolver{selector: selector}
}

// Apply selects name/variant and fills skin, skin_variant and content_css.
// Keys the configuration already sets are left alone. A nil resolver or
// selector returns cfg unchanged.
func (r *Resolver) Apply(cfg *config.Configuration, name, variant string) (*config.Configuration, error) {
	if r == nil || r.selector == nil || cfg == nil {
		return cfg, nil
	}

	selection, err := r.selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return nil, fmt.Errorf("skin: select theme %q: %w", name, err)
	}
	if selection == nil {
		return cfg, nil
	}

	derived := Options(selection)
	current := cfg.Options()
	additions := options.Options{}
	for key, value := range derived {
		if current.Has(key) {
			continue
		}
		additions[key] = value
	}
	if len(additions) == 0 {
		return cfg, nil
	}
	return cfg.Merge(additions), nil
}

// Options derives the skin options for a selection. Variant tokens and
// assets take precedence over the manifest's base values.
func Options(selection *theme.Selection) options.Options {
	out := options.Options{}
	if selection == nil {
		return out
	}

	tokens := map[string]string{}
	files := map[string]string{}
	prefix := ""
	if manifest := selection.Manifest; manifest != nil {
		copyInto(tokens, manifest.Tokens)
		copyInto(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix
		if v, ok := manifest.Variants[selection.Variant]; ok {
			copyInto(tokens, v.Tokens)
			copyInto(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}

	skinName := strings.TrimSpace(tokens[TokenSkin])
	if skinName == "" {
		skinName = strings.TrimSpace(selection.Theme)
	}
	if skinName != "" {
		out[SkinKey] = options.Text(skinName)
	}
	if v := strings.TrimSpace(selection.Variant); v != "" {
		out[SkinVariantKey] = options.Text(v)
	}

	css := strings.TrimSpace(tokens[TokenContentCSS])
	if css == "" {
		css = assetURL(prefix, files[AssetContentCSS])
	}
	if css != "" {
		out[ContentCSSKey] = options.Text(css)
	}
	return out
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
		return file
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
}

func copyInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}
