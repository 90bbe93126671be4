package handler

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"KreyolCollector/internal/asr"
	"KreyolCollector/internal/config"
	"KreyolCollector/internal/storage"
)

// newTestRouter builds the full router against a throwaway data dir.
func newTestRouter(t *testing.T, maxFileSize int64) (*gin.Engine, *storage.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Env: "test"}
	cfg.Server.Port = 8080
	cfg.Server.MaxFileSize = maxFileSize
	cfg.Storage.DataDir = t.TempDir()

	store := storage.New(cfg.Storage.DataDir)
	if err := store.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	h := New(cfg, store, asr.NewStub())
	return NewRouter(cfg, h), store, cfg
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return body
}

// countDataFiles counts regular files below the data dir.
func countDataFiles(t *testing.T, dataDir string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(dataDir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk data dir: %v", err)
	}
	return count
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != true || body["service"] != "kreyol-collector" || body["environment"] != "test" {
		t.Fatalf("unexpected health body: %v", body)
	}
	if _, ok := body["uptime"].(float64); !ok {
		t.Fatalf("uptime missing: %v", body)
	}
}

func TestUnmatchedRouteReturnsJSON404(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "not_found" || body["ok"] != false {
		t.Fatalf("unexpected 404 body: %v", body)
	}
}

func TestWrongVerbReturnsJSON405(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	w := doRequest(router, httptest.NewRequest(http.MethodPut, "/api/samples", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "method_not_allowed" {
		t.Fatalf("unexpected 405 body: %v", body)
	}
}

func TestPreflightReturns204(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	req := httptest.NewRequest(http.MethodOptions, "/api/samples", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := doRequest(router, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("preflight missing Access-Control-Allow-Origin")
	}
	if w.Body.Len() != 0 {
		t.Fatalf("preflight body not empty: %q", w.Body.String())
	}
}

func TestBareOptionsReturns204(t *testing.T) {
	// no Origin header: still an empty 204, on known and unknown paths
	router, _, _ := newTestRouter(t, 1<<20)
	for _, path := range []string{"/api/samples", "/healthz", "/no/such/route"} {
		w := doRequest(router, httptest.NewRequest(http.MethodOptions, path, nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("OPTIONS %s: status = %d, want 204", path, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("OPTIONS %s: body not empty: %q", path, w.Body.String())
		}
	}
}

func TestRateLimiterReturns429(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	limited := false
	for i := 0; i < 40; i++ {
		w := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/samples", nil))
		switch w.Code {
		case http.StatusOK:
			continue
		case http.StatusTooManyRequests:
			body := decodeBody(t, w)
			if body["ok"] != false || body["error"] != "rate_limited" {
				t.Fatalf("unexpected 429 body: %v", body)
			}
			limited = true
		default:
			t.Fatalf("request %d: status = %d", i, w.Code)
		}
	}
	if !limited {
		t.Fatal("burst never exhausted: no 429 in 40 requests")
	}

	// unthrottled routes stay reachable
	if w := doRequest(router, httptest.NewRequest(http.MethodGet, "/healthz", nil)); w.Code != http.StatusOK {
		t.Fatalf("healthz throttled: status = %d", w.Code)
	}
}

func TestCORSHeaderOnRegularResponse(t *testing.T) {
	router, _, _ := newTestRouter(t, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	w := doRequest(router, req)
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("response missing Access-Control-Allow-Origin")
	}
}
