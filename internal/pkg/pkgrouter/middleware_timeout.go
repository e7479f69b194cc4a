package pkgrouter

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
)

// Timeout bounds how long a handler may run. Slow handlers are cut off with
// 503 and the JSON error envelope. A non-positive d disables the limit.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		// TimeoutHandler always answers 503, which is what CodeTimeout maps to.
		envelope, _ := errorEnvelope(pkgerror.NewTimeout(http.ErrHandlerTimeout))
		body, err := sonic.ConfigStd.Marshal(envelope)
		if err != nil {
			body = []byte(`{"message":"request timeout"}`)
		}

		th := http.TimeoutHandler(next, d, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// TimeoutHandler writes its body without a content type; set it up
			// front so the timeout response is still JSON. Handlers override it.
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			th.ServeHTTP(w, r)
		})
	}
}
