package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/goitems/internal/pkg/pkglog"
)

// Generator produces correlation IDs.
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is set on every response.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is read when a proxy in front already tagged the request.
	HeaderRequestID = "X-Request-ID"

	maxCIDLen = 128
)

// Earlier entries win.
//
//nolint:gochecknoglobals // read-only lookup
var inboundCIDHeaders = []string{HeaderCorrelationID, HeaderRequestID}

// normalizeCID trims v, cuts it to maxCIDLen and rejects it when any byte
// falls outside visible ASCII.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > maxCIDLen {
		v = v[:maxCIDLen]
	}
	if strings.IndexFunc(v, func(c rune) bool { return c < 0x21 || c > 0x7e }) >= 0 {
		return ""
	}
	return v
}

func inboundCID(r *http.Request) string {
	for _, h := range inboundCIDHeaders {
		if cid := normalizeCID(r.Header.Get(h)); cid != "" {
			return cid
		}
	}
	return ""
}

func middlewareCorrelationID(gen Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := inboundCID(r)
			if cid == "" && gen != nil {
				cid = gen.Generate()
			}
			if cid == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(HeaderCorrelationID, cid)
			next.ServeHTTP(w, r.WithContext(pkglog.SetCorrelationID(r.Context(), cid)))
		})
	}
}
