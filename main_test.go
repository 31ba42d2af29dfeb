package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mager/sleeve/docs"
	"github.com/mager/sleeve/handler/analyze"
	"github.com/mager/sleeve/handler/covers"
	"github.com/mager/sleeve/handler/health"
	"github.com/mager/sleeve/handler/music"
	"github.com/mager/sleeve/handler/orchestral"
	"github.com/mager/sleeve/handler/palettes"
	"github.com/mager/sleeve/handler/swagger"
	"github.com/mager/sleeve/handler/video"
	"github.com/mager/sleeve/logger"
	"github.com/swaggo/swag"
)

func TestRouterMatchesMethods(t *testing.T) {
	log, _ := logger.NewTestLogger()
	router := jsonMiddleware(NewRouter([]Route{swagger.NewDocHandler(log)}))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{http.MethodPost, "/swagger/doc.json", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
		if rr.Code != tt.want {
			t.Errorf("%s %s: got %v want %v", tt.method, tt.path, rr.Code, tt.want)
		}
	}
}

func TestDocsCoverRoutes(t *testing.T) {
	routes := []Route{
		&health.HealthHandler{},
		&analyze.AnalyzeHandler{},
		&palettes.PalettesHandler{},
		&covers.TemplatesHandler{},
		&covers.AIHandler{},
		&covers.EditHandler{},
		&covers.ExportHandler{},
		&music.MusicHandler{},
		&orchestral.OrchestralHandler{},
		&video.VideoHandler{},
	}

	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}

	for _, r := range routes {
		ops, ok := doc.Paths[r.Pattern()]
		if !ok {
			t.Errorf("doc is missing path %s", r.Pattern())
			continue
		}
		for _, m := range r.Methods() {
			if _, ok := ops[strings.ToLower(m)]; !ok {
				t.Errorf("doc is missing %s %s", m, r.Pattern())
			}
		}
	}
	if len(doc.Paths) != len(routes) {
		t.Errorf("doc has %d paths, want %d", len(doc.Paths), len(routes))
	}
}
