package ping

import (
	"context"

	"github.com/shandysiswandi/goitems/internal/ping/inbound"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router *pkgrouter.Router
}

func New(dep Dependency) (func(context.Context) error, error) {
	inbound.RegisterHTTPEndpoint(dep.Router)

	return nil, nil
}
