package pkgrouter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded as-is) or an error.
// A payload may implement StatusCode() int to override the default 200.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr         *httprouter.Router
	errorCodec func(ctx context.Context, w http.ResponseWriter, err error)
	encoder    func(ctx context.Context, w http.ResponseWriter, resp any)
	mws        []Middleware
}

// NewRouter builds the application router with the standard middleware stack
// (recover, correlation ID, logging). uuid generates correlation IDs for
// requests that do not bring their own.
func NewRouter(uuid Generator) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		SaveMatchedRoutePath:   true,
	}

	okCodec := func(ctx context.Context, w http.ResponseWriter, resp any) {
		code := http.StatusOK
		if sc, ok := resp.(interface {
			StatusCode() int
		}); ok {
			code = sc.StatusCode()
		}

		if code == http.StatusNoContent || resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(ctx, w, resp, code)
	}

	ro := &Router{
		hr:         hr,
		errorCodec: WriteError,
		encoder:    okCodec,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}

	hr.NotFound = Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(r.Context(), w, pkgerror.NewNotFound("endpoint not found"))
	}), ro.mws...)
	hr.MethodNotAllowed = Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(r.Context(), w, pkgerror.NewMethodNotAllowed())
	}), ro.mws...)

	return ro
}

// Use appends middleware to the existing middleware stack. It only affects
// routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, r.chain(mws)...))
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.errorCodec(re.Context(), w, err)
			return
		}
		r.encoder(re.Context(), w, resp)
	}), r.chain(mws)...))
}

// chain copies the shared stack so per-route middleware never aliases it.
func (r *Router) chain(mws []Middleware) []Middleware {
	out := make([]Middleware, 0, len(r.mws)+len(mws))
	out = append(out, r.mws...)
	return append(out, mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

// WriteError renders err as the JSON error envelope. *pkgerror.Error values
// choose the status and message; anything else becomes a 500.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	switch {
	case !errors.As(err, &gerr):
		slog.ErrorContext(ctx, "unhandled error", "error", err)
	case gerr.Type() == pkgerror.TypeServer:
		slog.ErrorContext(ctx, "server error", "error", gerr.String())
	}

	body, code := errorEnvelope(err)
	writeJSON(ctx, w, body, code)
}

func errorEnvelope(err error) (errorResponse, int) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		return errorResponse{Message: "Internal server error"}, http.StatusInternalServerError
	}
	return errorResponse{Message: gerr.Msg(), Error: gerr.Fields()}, gerr.StatusCode()
}

func writeJSON(ctx context.Context, w http.ResponseWriter, data any, code int) {
	body, err := sonic.ConfigStd.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "server: failed to encode data to json", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	//nolint:errcheck // client went away, nothing to do
	w.Write(append(body, '\n'))
}
