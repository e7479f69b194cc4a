package app

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/goitems/internal/docs"
	"github.com/shandysiswandi/goitems/internal/item"
	"github.com/shandysiswandi/goitems/internal/ping"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

type module struct {
	name string
	init func() (func(context.Context) error, error)
}

// modules is the fixed set of route groups the service is composed of.
func (a *App) modules() []module {
	return []module{
		{name: "ping", init: func() (func(context.Context) error, error) {
			return ping.New(ping.Dependency{Router: a.router})
		}},
		{name: "item", init: func() (func(context.Context) error, error) {
			var validator pkgrouter.Middleware
			if a.config.GetBool("openapi.validate_requests") {
				validator = a.openapi.Validator()
			}
			return item.New(item.Dependency{Router: a.router, Validator: validator})
		}},
		{name: "docs", init: func() (func(context.Context) error, error) {
			return docs.New(docs.Dependency{Router: a.router, Document: a.openapi})
		}},
	}
}

func (a *App) initModules() error {
	for _, m := range a.modules() {
		if !a.config.GetBool("modules." + m.name + ".enabled") {
			continue
		}

		closer, err := m.init()
		if err != nil {
			return fmt.Errorf("failed to init module %s: %w", m.name, err)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn[m.name] = closer
		}
	}

	return nil
}
