package pkgrouter

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
// Missing parameters read as "".
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// MatchedRoute returns the route pattern that served the request, such as
// "/items/:item_id", or "" when no route matched.
func MatchedRoute(ctx context.Context) string {
	return httprouter.ParamsFromContext(ctx).MatchedRoutePath()
}
