package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Blac-guru/lenoxhill-healthcare/internal/auth"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/cache"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/config"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/store"
	"github.com/Blac-guru/lenoxhill-healthcare/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	testAdminKey      = "test-admin-key"
	testAdminUser     = "admin"
	testAdminPassword = "swordfish-7"
	testSetupKey      = "setup-key-1"
)

func newTestRouter(t *testing.T) (*Server, chi.Router) {
	t.Helper()

	cfg := &config.Config{
		Env:            "test",
		ServerAddr:     ":0",
		FrontendOrigin: "*",

		RateLimitAppointments: 1000,
		RateLimitContact:      1000,
		RateLimitOrders:       1000,
		RateLimitWindowSec:    60,

		CacheTTLSeconds: 60,

		AdminAPIKey:       testAdminKey,
		AdminUser:         testAdminUser,
		AdminPassword:     testAdminPassword,
		AdminSetupKey:     testSetupKey,
		JWTSecret:         "test-secret",
		AccessTTLMinutes:  15,
		RefreshTTLMinutes: 60,

		Timezone: time.UTC,
	}

	s := &Server{
		Cfg:   cfg,
		Store: store.NewMemStore(),
		Val:   validation.New(),
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cache: cache.NewNoop(),
	}

	manager := &auth.Manager{
		Secret:     []byte(cfg.JWTSecret),
		AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
		Issuer:     "lenoxhill-backend",
	}

	return s, NewRouter(s, manager)
}

func doJSON(t *testing.T, r chi.Router, method, path, body string, mod func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if mod != nil {
		mod(req)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response body: %v (body %q)", err, rec.Body.String())
	}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &out)
	return out.Error
}
