package inbound

import "github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"

func RegisterHTTPEndpoint(r *pkgrouter.Router) {
	end := &HTTPEndpoint{}

	r.GET("/ping", end.Ping)
}
