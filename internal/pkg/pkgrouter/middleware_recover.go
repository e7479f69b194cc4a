package pkgrouter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
)

//nolint:contextcheck // request context is used as-is
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr)
				printStackTrace(os.Stderr, strings.Split(string(debug.Stack()), "\n"))

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}

				WriteError(r.Context(), w, pkgerror.NewServer(fmt.Errorf("panic: %v", rvr)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// printStackTrace writes the "internal/...go:line" part of every frame that
// belongs to this module.
func printStackTrace(out io.Writer, lines []string) {
	fmt.Fprintln(out, "--- panic stack ---")
	for _, line := range lines {
		line = strings.TrimSpace(line)

		start := strings.Index(line, "/internal/")
		if start == -1 {
			continue
		}
		loc := line[start+1:]
		if !strings.Contains(loc, ".go:") {
			continue
		}
		if sp := strings.IndexByte(loc, ' '); sp != -1 {
			loc = loc[:sp]
		}
		fmt.Fprintln(out, "  at", loc)
	}
	fmt.Fprintln(out, "--- end ---")
}
