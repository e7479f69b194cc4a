package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Get(ctx context.Context, _ *http.Request) (any, error) {
	item, err := h.uc.Get(ctx, pkgrouter.GetParam(ctx, "item_id"))
	if err != nil {
		return nil, err
	}

	return ItemResponse{Item: item.ID}, nil
}
