package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"pay-ledger.backend/internal/interfaces/http/handlers"
)

func testRouteDeps() routeDeps {
	return routeDeps{
		walletHandler:   &handlers.WalletHandler{},
		paystackHandler: &handlers.PaystackNotificationHandler{},
		monnifyHandler:  &handlers.MonnifyNotificationHandler{},
		authMiddleware:  func(c *gin.Context) { c.Next() },
	}
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, testRouteDeps())

	expects := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/wallet"},
		{"GET", "/api/v1/wallet/transactions"},
		{"POST", "/api/v1/wallet/transactions"},
		{"POST", "/api/v1/webhooks/paystack"},
		{"POST", "/api/v1/webhooks/monnify"},
		{"GET", "/api/v1/notifications/paystack"},
		{"GET", "/api/v1/notifications/paystack/search"},
		{"GET", "/api/v1/notifications/paystack/:id"},
		{"GET", "/api/v1/notifications/monnify"},
		{"GET", "/api/v1/notifications/monnify/search"},
		{"GET", "/api/v1/notifications/monnify/:id"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)
	registerMetricsRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r)
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS origin header")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
