package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type document interface {
	Handler() http.Handler
}

// RegisterHTTPEndpoint publishes the OpenAPI description of the service.
func RegisterHTTPEndpoint(r *pkgrouter.Router, doc document) {
	r.Handle(http.MethodGet, "/openapi.json", doc.Handler())
}
