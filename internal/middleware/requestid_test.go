package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Fatal("expected a request id on the context")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("request id is not a UUID: %q", got)
	}
	if rr.Header().Get(RequestIDHeader) != got {
		t.Errorf("response header %q, context id %q", rr.Header().Get(RequestIDHeader), got)
	}
}

func TestRequestIDReusesUpstreamID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got != "upstream-id-123" {
		t.Errorf("got %q, want the upstream id", got)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if id := GetRequestID(req.Context()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
