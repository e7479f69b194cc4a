package pkgopenapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	oapiMW "github.com/oapi-codegen/nethttp-middleware"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

// Document is a loaded and validated OpenAPI description.
type Document struct {
	doc  *openapi3.T
	json []byte
}

// Load parses an OpenAPI document (YAML or JSON) and validates it.
func Load(ctx context.Context, data []byte) (*Document, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("pkgopenapi: load document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("pkgopenapi: invalid document: %w", err)
	}

	// Servers are irrelevant for validation, the service is reachable under
	// whatever host it is deployed behind.
	doc.Servers = nil

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("pkgopenapi: encode document: %w", err)
	}

	return &Document{doc: doc, json: raw}, nil
}

// Handler serves the document as application/json.
func (d *Document) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck // client went away, nothing to do
		w.Write(d.json)
	})
}

// Validator checks requests against the document before they reach the
// handler. Rejections are rendered through pkgrouter's error envelope; bad
// parameters become 422 keyed by the parameter name.
//
// Path parameters are checked in their decoded form, as the router hands
// them to handlers, so "/items/%2B5" is judged as "+5".
func (d *Document) Validator() pkgrouter.Middleware {
	validate := oapiMW.OapiRequestValidatorWithOptions(d.doc, &oapiMW.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
				return nil
			},
		},
		ErrorHandlerWithOpts: writeRejection,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decoded := r.Clone(r.Context())
			decoded.URL.RawPath = ""

			validate(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				next.ServeHTTP(w, r)
			})).ServeHTTP(w, decoded)
		})
	}
}

// writeRejection renders a validator failure with the request's context, so
// its log lines keep the correlation ID.
func writeRejection(ctx context.Context, err error, w http.ResponseWriter, _ *http.Request, opts oapiMW.ErrorHandlerOpts) {
	pkgrouter.WriteError(ctx, w, validationError(err, opts.StatusCode))
}

func validationError(err error, statusCode int) error {
	if errors.Is(err, routers.ErrMethodNotAllowed) {
		return pkgerror.NewMethodNotAllowed()
	}

	switch statusCode {
	case http.StatusNotFound:
		return pkgerror.NewNotFound("endpoint not found")
	case http.StatusBadRequest:
		field := "request"
		var reqErr *openapi3filter.RequestError
		if errors.As(err, &reqErr) && reqErr.Parameter != nil {
			field = reqErr.Parameter.Name
		}
		reason, _, _ := strings.Cut(err.Error(), "\n")
		return pkgerror.NewInvalidField(field, reason)
	default:
		return pkgerror.NewServer(err)
	}
}
