package usecase

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testNow pins the clock for the date-windowed tools.
var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, handler http.Handler) (*Service, Credentials) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(server.Client(), logger)
	svc.now = func() time.Time { return testNow }
	return svc, Credentials{CanvasURL: server.URL, APIToken: "test-token"}
}

func ptr[T any](v T) *T { return &v }
