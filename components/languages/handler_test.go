package languages

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func TestNewHandler_ListsAllCodesByDefault(t *testing.T) {
	h := NewHandler(WithCodes([]string{"en", "pirate"}))

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := strings.TrimSpace(res.Header.Get("Content-Type")); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}

	var payload handlerResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %#v", payload.Data)
	}
	if payload.Data[0].Value != "en" || payload.Data[0].Label != "English" {
		t.Fatalf("unexpected first option: %#v", payload.Data[0])
	}
	if payload.Data[1].Value != "pirate" || payload.Data[1].Label != "pirate" {
		t.Fatalf("unexpected second option: %#v", payload.Data[1])
	}
}

func TestNewHandler_QueryAndLimit(t *testing.T) {
	h := NewHandler(WithCodes([]string{"de", "en", "es", "pirate"}), WithMaxLimit(1))

	req := httptest.NewRequest(http.MethodGet, "/api/languages?q=e&limit=10", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Data) != 1 {
		t.Fatalf("expected limit clamp to 1, got %#v", payload.Data)
	}
}

func TestNewHandler_EmptyResultIsArray(t *testing.T) {
	h := NewHandler(WithCodes([]string{"en"}))

	req := httptest.NewRequest(http.MethodGet, "/api/languages?q=zzz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if body := strings.TrimSpace(rec.Body.String()); body != `{"data":[]}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestNewHandler_RejectsUnsupportedMethod(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestNewHandler_HeadHasNoBody(t *testing.T) {
	h := NewHandler(WithCodes([]string{"en"}))

	req := httptest.NewRequest(http.MethodHead, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestNewHandler_GuardStatus(t *testing.T) {
	h := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("login required")}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestNewHandler_DiscoveryFailure(t *testing.T) {
	h := NewHandler(WithFS(fstest.MapFS{}), WithDir("langs"))

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/api/languages" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin/", WithRoutePath("editor/langs")); got != "/admin/editor/langs" {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestComponent_RegisterRoutesSharesRegistry(t *testing.T) {
	component := New(WithCodes([]string{"en", "es"}))
	mux := http.NewServeMux()

	pattern, err := component.RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/api/languages" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}
	if !component.Registry().IsAvailable("es") {
		t.Fatalf("expected component registry to know es")
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?q=es", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
