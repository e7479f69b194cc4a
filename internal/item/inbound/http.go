package inbound

import (
	"context"

	"github.com/shandysiswandi/goitems/internal/item/entity"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type uc interface {
	Get(ctx context.Context, rawID string) (entity.Item, error)
}

// RegisterHTTPEndpoint mounts the item routes. mws run after the router's
// shared stack, e.g. a request validator.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, mws ...pkgrouter.Middleware) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/items/:item_id", end.Get, mws...)
}
