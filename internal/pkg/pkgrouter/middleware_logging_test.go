package pkgrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func logLines(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()
	out := map[string]map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		if msg, ok := rec["msg"].(string); ok {
			out[msg] = rec
		}
	}
	return out
}

func TestMiddlewareLoggingSuccess(t *testing.T) {
	logs := captureLogs(t)

	r := NewRouter(&staticGenerator{value: "cid-log"})
	r.GET("/items/:item_id", func(context.Context, *http.Request) (any, error) {
		return map[string]int{"item": 42}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42?verbose=1", nil)
	req.Header.Set("Authorization", "Bearer secret")
	r.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, logs)
	received, sent := lines["request received"], lines["response sent"]
	if received == nil || sent == nil {
		t.Fatalf("expected request and response logs, got %s", logs.String())
	}
	if received["route"] != "/items/:item_id" {
		t.Fatalf("unexpected route: %v", received["route"])
	}
	if received["query"] != "verbose=1" {
		t.Fatalf("unexpected query: %v", received["query"])
	}
	if strings.Contains(logs.String(), "Bearer secret") {
		t.Fatalf("authorization header leaked into logs")
	}
	if sent["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", sent["status"])
	}
	if sent["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", sent["level"])
	}
	if _, ok := sent["body"]; ok {
		t.Fatalf("successful responses should not log a body: %v", sent["body"])
	}
}

func TestMiddlewareLoggingFailureCarriesBody(t *testing.T) {
	logs := captureLogs(t)

	r := NewRouter(nil)
	r.GET("/items/:item_id", func(context.Context, *http.Request) (any, error) {
		return nil, pkgerror.NewInvalidField("item_id", "value is not a valid integer")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))

	sent := logLines(t, logs)["response sent"]
	if sent == nil {
		t.Fatalf("expected response log, got %s", logs.String())
	}
	if sent["status"] != float64(http.StatusUnprocessableEntity) {
		t.Fatalf("unexpected status: %v", sent["status"])
	}
	body, ok := sent["body"].(map[string]any)
	if !ok || body["message"] != "validation error" {
		t.Fatalf("unexpected logged body: %v", sent["body"])
	}
}

func TestResponseCaptureTruncates(t *testing.T) {
	capture := &responseCapture{ResponseWriter: httptest.NewRecorder()}

	chunk := bytes.Repeat([]byte("x"), maxLoggedBodyBytes)
	if _, err := capture.Write(chunk); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := capture.Write([]byte("more")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := capture.statusCode(); got != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", got)
	}
	if capture.head.Len() != maxLoggedBodyBytes {
		t.Fatalf("expected body kept at %d, got %d", maxLoggedBodyBytes, capture.head.Len())
	}
	if capture.written != maxLoggedBodyBytes+4 {
		t.Fatalf("expected all bytes forwarded, got %d", capture.written)
	}
	if got := capture.loggedBody(); got != "<truncated>" {
		t.Fatalf("unexpected logged body: %v", got)
	}
}

func TestResponseCaptureKeepsFirstStatus(t *testing.T) {
	capture := &responseCapture{ResponseWriter: httptest.NewRecorder()}
	capture.WriteHeader(http.StatusNotFound)
	capture.WriteHeader(http.StatusOK)

	if got := capture.statusCode(); got != http.StatusNotFound {
		t.Fatalf("expected first status to win, got %d", got)
	}
}
