package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/sleeve/logger"
)

func TestCompose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/music" || r.Method != http.MethodPost {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("xi-api-key"); got != "k" {
			t.Errorf("xi-api-key = %q", got)
		}
		var req composeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		if req.Prompt != "lofi" || req.MusicLengthMs != 30000 {
			t.Errorf("request = %+v", req)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Disposition", `attachment; filename="lofi.mp3"`)
		w.Write([]byte("ID3"))
	}))
	defer srv.Close()

	log, _ := logger.NewTestLogger()
	c := New("k", srv.URL, srv.Client(), log)

	track, err := c.Compose(context.Background(), "lofi", 30000)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if track.AudioURL != "data:audio/mpeg;base64,SUQz" {
		t.Errorf("AudioURL = %q", track.AudioURL)
	}
	if track.Filename != "lofi.mp3" || track.Duration != 30000 || track.Prompt != "lofi" {
		t.Errorf("track = %+v", track)
	}
}

func TestComposeDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("ID3"))
	}))
	defer srv.Close()

	log, _ := logger.NewTestLogger()
	track, err := New("k", srv.URL, srv.Client(), log).Compose(context.Background(), "x", 1000)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if track.Filename != defaultFilename || track.AudioURL != "data:audio/mpeg;base64,SUQz" {
		t.Errorf("track = %+v", track)
	}
}

func TestComposeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"bad prompt"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	log, _ := logger.NewTestLogger()
	if _, err := New("k", srv.URL, srv.Client(), log).Compose(context.Background(), "x", 1000); err == nil {
		t.Error("Compose() error = nil, want API error")
	}
	if _, err := New("", srv.URL, srv.Client(), log).Compose(context.Background(), "x", 1000); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Compose() error = %v, want ErrNotConfigured", err)
	}
}
