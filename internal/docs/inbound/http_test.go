package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goitems/api"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgopenapi"
	"github.com/shandysiswandi/goitems/internal/pkg/pkgrouter"
)

func TestOpenAPIJSON(t *testing.T) {
	doc, err := pkgopenapi.Load(context.Background(), api.OpenAPI)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	router := pkgrouter.NewRouter(nil)
	RegisterHTTPEndpoint(router, doc)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Info.Title != "goitems" {
		t.Fatalf("unexpected title: %q", body.Info.Title)
	}
}
