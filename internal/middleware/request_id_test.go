// internal/middleware/request_id_test.go

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mcp-salesforce/internal/middleware"
)

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var downstream string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downstream = r.Header.Get(middleware.HeaderRequestID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	got := rec.Header().Get(middleware.HeaderRequestID)
	if got == "" {
		t.Fatalf("response must carry a generated request id")
	}
	// Handler hilir harus membaca id yang sama dengan yang dibalikkan ke caller.
	if downstream != got {
		t.Fatalf("downstream saw %q, response carries %q", downstream, got)
	}
}

func TestRequestIDClientValuePreserved(t *testing.T) {
	var downstream string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		downstream = r.Header.Get(middleware.HeaderRequestID)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "client-supplied-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if downstream != "client-supplied-42" {
		t.Fatalf("client id must pass through unchanged, got %q", downstream)
	}
	if rec.Header().Get(middleware.HeaderRequestID) != "client-supplied-42" {
		t.Fatalf("client id must be echoed on the response, got %q",
			rec.Header().Get(middleware.HeaderRequestID))
	}
}
