package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const profilesDoc = `default:
  mode: textareas
  plugins: [paste, table]
compact:
  mode: exact
  oninit: function(ed) { ed.focus(); }
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tinymce.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newTestApp(environ map[string]string, driver promptDriver) (app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	if environ == nil {
		environ = map[string]string{}
	}
	return app{stdout: &stdout, stderr: &stderr, environ: environ, driver: driver}, &stdout, &stderr
}

func TestRun_JSONOutput(t *testing.T) {
	path := writeConfig(t, profilesDoc)
	a, stdout, stderr := newTestApp(nil, nil)

	code := a.run(context.Background(), []string{"-config", path, "-format", "json", "-locale", "pirate"})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	var got map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, stdout.String())
	}
	want := map[string]any{
		"mode":     "textareas",
		"plugins":  "paste,table",
		"language": "pirate",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ScriptFromEnvironment(t *testing.T) {
	path := writeConfig(t, profilesDoc)
	a, stdout, stderr := newTestApp(map[string]string{
		"TINYMCE_CONFIG":  path,
		"TINYMCE_PROFILE": "compact",
	}, nil)

	code := a.run(context.Background(), nil)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	want := `tinyMCE.init({"language":"en","mode":"exact","oninit":function(ed) { ed.focus(); }});`
	if got := strings.TrimSpace(stdout.String()); got != want {
		t.Fatalf("unexpected script:\n got %s\nwant %s", got, want)
	}
}

func TestRun_UnknownProfile(t *testing.T) {
	path := writeConfig(t, profilesDoc)
	a, _, stderr := newTestApp(map[string]string{"TINYMCE_LOG_COLORED": "false"}, nil)

	code := a.run(context.Background(), []string{"-config", path, "-profile", "ghost"})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "profile not found") {
		t.Fatalf("expected profile error in logs, got %q", stderr.String())
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	a, _, stderr := newTestApp(nil, nil)

	if code := a.run(context.Background(), []string{"-format", "xml"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "unknown format") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRun_MissingConfigUsesDefaults(t *testing.T) {
	a, stdout, stderr := newTestApp(nil, nil)

	code := a.run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yml"), "-format", "json"})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"editor_selector": "tinymce"`) {
		t.Fatalf("expected defaults in output, got %s", stdout.String())
	}
}

type stubDriver struct {
	answers map[string]string
	asked   []selectConfig
	err     error
}

func (s *stubDriver) Select(_ context.Context, cfg selectConfig) (string, error) {
	s.asked = append(s.asked, cfg)
	if s.err != nil {
		return "", s.err
	}
	return s.answers[cfg.Message], nil
}

func TestRun_Interactive(t *testing.T) {
	path := writeConfig(t, profilesDoc)
	driver := &stubDriver{answers: map[string]string{"Profile": "compact", "Language": "de"}}
	a, stdout, stderr := newTestApp(nil, driver)

	code := a.run(context.Background(), []string{"-config", path, "-format", "json", "-interactive"})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	if len(driver.asked) != 2 {
		t.Fatalf("expected two prompts, got %d", len(driver.asked))
	}
	if diff := cmp.Diff([]string{"compact", "default"}, driver.asked[0].Options); diff != "" {
		t.Fatalf("profile options mismatch (-want +got):\n%s", diff)
	}
	if indexOf(driver.asked[1].Options, "pirate") < 0 {
		t.Fatalf("expected language options to list embedded packs, got %v", driver.asked[1].Options)
	}

	var got map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got["mode"] != "exact" || got["language"] != "de" {
		t.Fatalf("unexpected output: %v", got)
	}
}

func TestRun_InteractiveAborted(t *testing.T) {
	path := writeConfig(t, profilesDoc)
	a, _, _ := newTestApp(nil, &stubDriver{err: errAborted})

	if code := a.run(context.Background(), []string{"-config", path, "-interactive"}); code != 130 {
		t.Fatalf("expected exit code 130, got %d", code)
	}
}
