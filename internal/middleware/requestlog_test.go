package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	var seenID string
	handler := WithRequestLogging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/analyze", nil))

	if seenID == "" {
		t.Error("expected a request id in the handler context")
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != seenID {
		t.Errorf("logged request_id %v does not match context id %q", fields["request_id"], seenID)
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("expected logged status 418, got %v", fields["status"])
	}
	if fields["path"] != "/analyze" {
		t.Errorf("expected logged path /analyze, got %v", fields["path"])
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	if got := GetRequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}
