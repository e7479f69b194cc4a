package pkgrouter

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

// Responses are small JSON documents; anything past this is not logged.
const maxLoggedBodyBytes = 4 * 1024

//nolint:gochecknoglobals // read-only lookup
var redactedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-api-key":     {},
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for key := range out {
		if _, ok := redactedHeaders[strings.ToLower(key)]; ok {
			out.Set(key, "***")
		}
	}
	return out
}

// responseCapture keeps the status, the byte count and the first
// maxLoggedBodyBytes of the body.
type responseCapture struct {
	http.ResponseWriter
	status    int
	written   int
	head      bytes.Buffer
	truncated bool
}

func (c *responseCapture) WriteHeader(code int) {
	if c.status == 0 {
		c.status = code
	}
	c.ResponseWriter.WriteHeader(code)
}

func (c *responseCapture) Write(p []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}

	if room := maxLoggedBodyBytes - c.head.Len(); room < len(p) {
		c.head.Write(p[:max(room, 0)])
		c.truncated = true
	} else {
		c.head.Write(p)
	}

	n, err := c.ResponseWriter.Write(p)
	c.written += n
	return n, err
}

func (c *responseCapture) Flush() {
	if f, ok := c.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (c *responseCapture) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

func (c *responseCapture) statusCode() int {
	if c.status == 0 {
		return http.StatusOK
	}
	return c.status
}

func (c *responseCapture) loggedBody() any {
	raw := c.head.Bytes()
	if len(raw) == 0 {
		return nil
	}
	if c.truncated {
		return "<truncated>"
	}

	var decoded any
	if err := sonic.ConfigStd.Unmarshal(raw, &decoded); err == nil {
		return decoded
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	return "<binary>"
}

func routeOf(r *http.Request) string {
	if pattern := MatchedRoute(r.Context()); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// middlewareLogging writes one line when a request arrives and one when the
// response is done. Failed responses also carry their body.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeOf(r)

		slog.InfoContext(r.Context(), "request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote", r.RemoteAddr,
			"headers", redactHeaders(r.Header),
		)

		capture := &responseCapture{ResponseWriter: w}
		next.ServeHTTP(capture, r)

		status := capture.statusCode()
		attrs := []any{
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", status,
			"bytes", capture.written,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if status >= http.StatusBadRequest {
			attrs = append(attrs, "body", capture.loggedBody())
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(r.Context(), level, "response sent", attrs...)
	})
}
