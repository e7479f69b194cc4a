package inbound

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shandysiswandi/goitems/api"
	"github.com/shandysiswandi/goitems/internal/item/usecase"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goitems/internal/pkg/pkguid"
)

type errorBody struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

func newRouters(t *testing.T) map[string]*pkgrouter.Router {
	t.Helper()

	plain := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(plain, usecase.New())

	doc, err := pkgopenapi.Load(context.Background(), api.OpenAPI)
	if err != nil {
		t.Fatalf("load openapi: %v", err)
	}
	validated := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(validated, usecase.New(), doc.Validator())

	return map[string]*pkgrouter.Router{"plain": plain, "validated": validated}
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetItemInteger(t *testing.T) {
	for name, router := range newRouters(t) {
		ids := []int64{0, 42, -7, 123456789}
		for i := 0; i < 20; i++ {
			ids = append(ids, int64(rand.Intn(2001)-1000))
		}

		for _, id := range ids {
			rec := get(t, router, "/items/"+strconv.FormatInt(id, 10))
			if rec.Code != http.StatusOK {
				t.Fatalf("%s: /items/%d: unexpected status %d (%s)", name, id, rec.Code, rec.Body.String())
			}

			var raw map[string]json.RawMessage
			if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
				t.Fatalf("%s: decode: %v", name, err)
			}
			if len(raw) != 1 {
				t.Fatalf("%s: expected single key body, got %s", name, rec.Body.String())
			}
			if got := string(raw["item"]); got != strconv.FormatInt(id, 10) {
				t.Fatalf("%s: expected item to be the number %d, got %s", name, id, got)
			}
		}
	}
}

func TestGetItemLeadingZeros(t *testing.T) {
	for name, router := range newRouters(t) {
		rec := get(t, router, "/items/0123456789")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", name, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != `{"item":123456789}` {
			t.Fatalf("%s: unexpected body %s", name, got)
		}
	}
}

const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz"

// randomWord starts with a letter so it never parses as a number.
func randomWord() string {
	n := 10 + rand.Intn(91)
	b := make([]byte, n)
	b[0] = alphanumerics[rand.Intn(26)]
	for i := 1; i < n; i++ {
		b[i] = alphanumerics[rand.Intn(len(alphanumerics))]
	}
	return string(b)
}

func TestGetItemRejectsNonIntegers(t *testing.T) {
	inputs := []string{
		"3.14",
		strconv.FormatFloat(rand.Float64(), 'f', -1, 64),
		"abc123",
		alphanumerics,
		randomWord(),
		randomWord(),
		"99999999999999999999",
	}

	for name, router := range newRouters(t) {
		for _, in := range inputs {
			rec := get(t, router, "/items/"+in)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("%s: /items/%s: expected 422, got %d", name, in, rec.Code)
			}

			var body errorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("%s: decode: %v", name, err)
			}
			if body.Message != "validation error" {
				t.Fatalf("%s: unexpected message %q", name, body.Message)
			}
			if _, ok := body.Error["item_id"]; !ok {
				t.Fatalf("%s: expected item_id reason, got %v", name, body.Error)
			}
		}
	}
}

func TestGetItemEmptySegmentIsNotFound(t *testing.T) {
	for name, router := range newRouters(t) {
		rec := get(t, router, "/items/")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", name, rec.Code)
		}
	}
}

func TestGetItemIdempotent(t *testing.T) {
	for name, router := range newRouters(t) {
		for _, path := range []string{"/items/42", "/items/abc"} {
			first := get(t, router, path)
			for i := 0; i < 5; i++ {
				rec := get(t, router, path)
				if rec.Code != first.Code || rec.Body.String() != first.Body.String() {
					t.Fatalf("%s: %s: response changed between calls: %d %q vs %d %q",
						name, path, first.Code, first.Body.String(), rec.Code, rec.Body.String())
				}
			}
		}
	}
}

func TestGetItemSameContractWithAndWithoutValidation(t *testing.T) {
	routers := newRouters(t)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/items/%2B5", http.StatusOK, `{"item":5}`},
		{"/items/%34%32", http.StatusOK, `{"item":42}`},
		{"/items/+5", http.StatusOK, `{"item":5}`},
		{"/items/-0", http.StatusOK, `{"item":0}`},
		{"/items/%2D7", http.StatusOK, `{"item":-7}`},
		{"/items/%20", http.StatusUnprocessableEntity, ""},
		{"/items/1e3", http.StatusUnprocessableEntity, ""},
		{"/items/99999999999999999999", http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		plain := get(t, routers["plain"], tt.path)
		validated := get(t, routers["validated"], tt.path)

		if plain.Code != tt.status || validated.Code != tt.status {
			t.Fatalf("%s: expected %d, got plain=%d validated=%d (%s)",
				tt.path, tt.status, plain.Code, validated.Code, validated.Body.String())
		}
		if tt.body == "" {
			continue
		}
		if got := strings.TrimSpace(validated.Body.String()); got != tt.body {
			t.Fatalf("%s: validated body %s, want %s", tt.path, got, tt.body)
		}
		if got := strings.TrimSpace(plain.Body.String()); got != tt.body {
			t.Fatalf("%s: plain body %s, want %s", tt.path, got, tt.body)
		}
	}
}
