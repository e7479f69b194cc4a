package docs

import (
	"context"

	"github.com/shandysiswandi/goitems/internal/docs/inbound"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router   *pkgrouter.Router
	Document *pkgopenapi.Document
}

func New(dep Dependency) (func(context.Context) error, error) {
	inbound.RegisterHTTPEndpoint(dep.Router, dep.Document)

	return nil, nil
}
