package pongo_test

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-tinymce/pkg/render/template/pongo"
	"github.com/goliatone/go-tinymce/pkg/testsupport"
)

func TestEngine_RenderStringWithData(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderString("theme: {{ theme }}", map[string]any{"theme": "advanced"}, w)
	})
	if result != "theme: advanced" {
		t.Fatalf("unexpected result: %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch: %q", written)
	}
}

func TestEngine_AutoescapeToggle(t *testing.T) {
	escaped, err := pongo.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := escaped.RenderString("{{ value }}", map[string]any{"value": "<b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "&lt;b&gt;" {
		t.Fatalf("expected escaped output, got %q", got)
	}

	raw := newEngine(t)
	got, err = raw.RenderString("{{ value }}", map[string]any{"value": "<b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<b>" {
		t.Fatalf("expected raw output, got %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithAutoescape(false),
		pongo.WithGlobalData(map[string]any{"env": map[string]string{"CDN": "https://cdn.example.com"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := engine.GlobalContext(map[string]any{"settings": map[string]any{"skin": "o2k7"}}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderString("{{ env.CDN }}/{{ settings.skin }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "https://cdn.example.com/o2k7" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestEngine_QuoteFilter(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`title: {{ title|quote }}`, map[string]any{"title": `say "hi": now`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `title: "say \"hi\": now"` {
		t.Fatalf("unexpected result: %s", got)
	}
}

func TestEngine_TrimFilter(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		name string
		data map[string]any
		want string
	}{
		{name: "string", data: map[string]any{"v": "  o2k7 "}, want: "skin: o2k7"},
		{name: "integer", data: map[string]any{"v": 42}, want: "skin: 42"},
		{name: "missing", data: nil, want: "skin: "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.RenderString("skin: {{ v|trim }}", tc.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected result: %q", got)
			}
		})
	}
}

func TestNew_ConcurrentConstruction(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine, err := pongo.New(pongo.WithAutoescape(false))
			if err != nil {
				errs <- err
				return
			}
			if _, err := engine.RenderString("{{ 1|trim }}", nil); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent engine: %v", err)
	}
}

func TestEngine_IncludeFromFS(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithAutoescape(false),
		pongo.WithFS(fstest.MapFS{"shared.yml": {Data: []byte("theme: advanced")}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderString(`{% include "shared.yml" %}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(got) != "theme: advanced" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestEngine_ParseError(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	name := "shout_engine_test"
	err := engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderString("{{ name|"+name+" }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestIsTemplateContent(t *testing.T) {
	if pongo.IsTemplateContent("mode: textareas") {
		t.Fatalf("plain YAML reported as template")
	}
	if !pongo.IsTemplateContent("mode: {{ mode }}") {
		t.Fatalf("expression not detected")
	}
	if !pongo.IsTemplateContent("{% if x %}a{% endif %}") {
		t.Fatalf("tag not detected")
	}
}

func newEngine(t *testing.T) *pongo.Engine {
	t.Helper()

	engine, err := pongo.New(pongo.WithAutoescape(false))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
