package item

import (
	"context"

	"github.com/shandysiswandi/goitems/internal/item/inbound"
	"github.com/shandysiswandi/goitems/internal/item/usecase"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router *pkgrouter.Router
	// Validator, when set, guards the item route before the handler runs.
	Validator pkgrouter.Middleware
}

func New(dep Dependency) (func(context.Context) error, error) {
	var mws []pkgrouter.Middleware
	if dep.Validator != nil {
		mws = append(mws, dep.Validator)
	}

	inbound.RegisterHTTPEndpoint(dep.Router, usecase.New(), mws...)

	return nil, nil
}
