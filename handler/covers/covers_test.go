package covers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/logger"
	"github.com/mager/sleeve/palette"
	"github.com/mager/sleeve/sleeve"
)

const jazzAnalysis = `{"genre":["Jazz"],"mood":"Chill","vibe":"Smooth & Sophisticated","energy":0.5,"tempo":95}`

func postJSON(h http.Handler, path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rr, req)
	return rr
}

// newGemini starts a fake image API. Prompts containing failWord are rejected.
func newGemini(t *testing.T, failWord string) (*gemini.GeminiClient, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var buf bytes.Buffer
		buf.ReadFrom(r.Body)
		if failWord != "" && strings.Contains(buf.String(), failWord) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"blocked","status":"INVALID_ARGUMENT"}}`))
			return
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"QUJD"}}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	log, _ := logger.NewTestLogger()
	return gemini.New("key", srv.URL, "", srv.Client(), log), &calls
}

func TestTemplatesHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	h := NewTemplatesHandler(log, cover.NewEngine(palette.DefaultCatalog(), log))

	rr := postJSON(h, "/covers/templates", `{"analysis":`+jazzAnalysis+`}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Success || resp.BatchID == "" || len(resp.Covers) != 6 {
		t.Fatalf("unexpected response: success=%v batch=%q covers=%d", resp.Success, resp.BatchID, len(resp.Covers))
	}
	if resp.Covers[0].StyleName != "Minimalist Jazz" || resp.Covers[0].Source != cover.SourceTemplate {
		t.Errorf("first cover = %+v", resp.Covers[0])
	}
}

func TestTemplatesHandlerRequiresAnalysis(t *testing.T) {
	log, _ := logger.NewTestLogger()
	h := NewTemplatesHandler(log, cover.NewEngine(palette.DefaultCatalog(), log))

	rr := postJSON(h, "/covers/templates", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
	}
	var resp respond.ErrorResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Error != "Analysis data is required" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestAIHandlerIsolatesFailures(t *testing.T) {
	log, _ := logger.NewTestLogger()
	g, calls := newGemini(t, "retro aesthetic")
	h := NewAIHandler(log, g, cover.NewAIGenerator(g, log))

	rr := postJSON(h, "/covers/ai", `{"analysis":`+jazzAnalysis+`}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if calls.Load() != 3 || len(resp.Covers) != 3 {
		t.Fatalf("calls = %d, covers = %d, want 3 and 3", calls.Load(), len(resp.Covers))
	}
	if resp.Covers[0].Source != cover.SourceAI || resp.Covers[0].PreviewURL != "data:image/png;base64,QUJD" {
		t.Errorf("minimalist cover = %+v", resp.Covers[0])
	}
	if resp.Covers[1].Source != cover.SourceError || resp.Covers[1].StyleName != "Vintage (Failed)" {
		t.Errorf("vintage cover = %+v", resp.Covers[1])
	}
	if resp.Covers[2].Source != cover.SourceAI {
		t.Errorf("abstract cover = %+v", resp.Covers[2])
	}
}

func TestAIHandlerErrors(t *testing.T) {
	log, _ := logger.NewTestLogger()

	unconfigured := gemini.New("", "", "", nil, log)
	rr := postJSON(NewAIHandler(log, unconfigured, cover.NewAIGenerator(unconfigured, log)), "/covers/ai", `{"analysis":`+jazzAnalysis+`}`)
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "Gemini API key not configured") {
		t.Errorf("unconfigured: %d %s", rr.Code, rr.Body)
	}

	g, calls := newGemini(t, "")
	h := NewAIHandler(log, g, cover.NewAIGenerator(g, log))
	if rr := postJSON(h, "/covers/ai", `{"analysis":`+jazzAnalysis+`,"styles":["baroque"]}`); rr.Code != http.StatusBadRequest {
		t.Errorf("unknown style: got %v want %v", rr.Code, http.StatusBadRequest)
	}
	if rr := postJSON(h, "/covers/ai", `{"styles":["minimalist"]}`); rr.Code != http.StatusBadRequest {
		t.Errorf("missing analysis: got %v want %v", rr.Code, http.StatusBadRequest)
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d, want 0", calls.Load())
	}
}

func TestEditHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	g, _ := newGemini(t, "")
	h := NewEditHandler(log, g)

	rr := postJSON(h, "/covers/edit", `{"imageBase64":"data:image/png;base64,QUJD","editInstruction":"add rain","analysis":`+jazzAnalysis+`}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	var resp EditResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.EditedImage != "data:image/png;base64,QUJD" {
		t.Errorf("editedImage = %q", resp.EditedImage)
	}

	if rr := postJSON(h, "/covers/edit", `{"imageBase64":"QUJD","analysis":`+jazzAnalysis+`}`); rr.Code != http.StatusBadRequest {
		t.Errorf("missing instruction: got %v want %v", rr.Code, http.StatusBadRequest)
	}
}

func TestEditHandlerVendorFailure(t *testing.T) {
	log, _ := logger.NewTestLogger()
	g, _ := newGemini(t, "add rain")
	h := NewEditHandler(log, g)

	rr := postJSON(h, "/covers/edit", `{"imageBase64":"QUJD","editInstruction":"add rain","analysis":`+jazzAnalysis+`}`)
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "Failed to edit cover") {
		t.Errorf("got %d %s", rr.Code, rr.Body)
	}
}

func TestExportHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	h := NewExportHandler(log)

	svg := cover.Render(cover.Minimalist, palette.Palette{"#111111", "#222222", "#333333"}, sleeve.Analysis{}, nil)
	body, _ := json.Marshal(ExportRequest{SVG: svg, Filename: "Night Drive.mp3", Style: "Minimalist Jazz"})

	rr := postJSON(h, "/covers/export", string(body))
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v: %s", rr.Code, http.StatusOK, rr.Body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != `attachment; filename="night-drive-minimalist-jazz.svg"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(rr.Body.String(), `width="1400" height="1400"`) {
		t.Errorf("body is not sized to 1400: %s", rr.Body.String())
	}

	if rr := postJSON(h, "/covers/export", `{"svg":"<div/>"}`); rr.Code != http.StatusBadRequest {
		t.Errorf("non svg: got %v want %v", rr.Code, http.StatusBadRequest)
	}
}
