package pkglog

import "context"

// AttrCorrelationID is the log attribute carrying the request's correlation ID.
const AttrCorrelationID = "cid"

type cidKey struct{}

// SetCorrelationID returns a copy of ctx that carries cid.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, cidKey{}, cid)
}

// GetCorrelationID returns the ID set by SetCorrelationID, or "" when ctx has none.
func GetCorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(cidKey{}).(string)
	return cid
}
