package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestInit(t *testing.T) {
	shutdown := Init("newskeep-test")
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	}()

	if GetTracer() == nil {
		t.Fatal("tracer not available")
	}
}

func TestMiddleware_SetsTraceHeader(t *testing.T) {
	shutdown := Init("newskeep-test")
	defer func() { _ = shutdown(context.Background()) }()

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/all-news", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Trace-Id") == "" {
		t.Error("X-Trace-Id header not set")
	}
}

func TestMiddleware_PassesThrough(t *testing.T) {
	var called bool
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("next handler not reached")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("code = %d", rec.Code)
	}
}
