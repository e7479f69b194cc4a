package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct{}

// Ping answers as long as the process can serve HTTP. It never touches
// anything else, so it stays green independent of other state.
func (h *HTTPEndpoint) Ping(context.Context, *http.Request) (any, error) {
	return PingResponse{Ping: "pong"}, nil
}
