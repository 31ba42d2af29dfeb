package video

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mager/sleeve/fal"
	"github.com/mager/sleeve/logger"
)

// newFal starts a fake queue that completes on the second status poll.
func newFal(t *testing.T) *fal.FalClient {
	t.Helper()
	var polls atomic.Int32
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/fal-ai/veo3/fast/image-to-video", func(w http.ResponseWriter, r *http.Request) {
		var in fal.VideoRequest
		json.NewDecoder(r.Body).Decode(&in)
		if !strings.HasSuffix(in.Prompt, "9:16 aspect ratio suitable for mobile viewing.") || !in.GenerateAudio {
			t.Errorf("input = %+v", in)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"request_id":   "req-9",
			"status_url":   srv.URL + "/status",
			"response_url": srv.URL + "/result",
		})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		status := fal.StatusInProgress
		if polls.Add(1) > 1 {
			status = fal.StatusCompleted
		}
		json.NewEncoder(w).Encode(map[string]any{"status": status})
	})
	mux.HandleFunc("/result", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"video":{"url":"https://cdn/video.mp4"}}`))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log, _ := logger.NewTestLogger()
	return fal.New("key", srv.URL, time.Millisecond, srv.Client(), log)
}

// newStalledFal starts a fake queue whose job never leaves the queue.
func newStalledFal(t *testing.T) (*fal.FalClient, *atomic.Int32) {
	t.Helper()
	var polls atomic.Int32
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/fal-ai/veo3/fast/image-to-video", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"request_id": "req-stuck",
			"status_url": srv.URL + "/status",
		})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{"status": fal.StatusInQueue, "queue_position": 4})
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	log, _ := logger.NewTestLogger()
	return fal.New("key", srv.URL, 5*time.Millisecond, srv.Client(), log), &polls
}

func TestVideoHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	h := NewVideoHandler(log, newFal(t))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/video", strings.NewReader(`{"imageUrl":"https://img","prompt":"slow spin"}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v: %s", rr.Code, http.StatusOK, rr.Body)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.VideoURL != "https://cdn/video.mp4" || resp.RequestID != "req-9" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestVideoHandlerValidation(t *testing.T) {
	log, _ := logger.NewTestLogger()
	h := NewVideoHandler(log, newFal(t))

	for _, body := range []string{`{"prompt":"spin"}`, `{"imageUrl":"https://img"}`} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/video", strings.NewReader(body)))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: got %v want %v", body, rr.Code, http.StatusBadRequest)
		}
	}

	unconfigured := NewVideoHandler(log, fal.New("", "", 0, nil, log))
	rr := httptest.NewRecorder()
	unconfigured.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/video", strings.NewReader(`{}`)))
	if rr.Code != http.StatusInternalServerError || !strings.Contains(rr.Body.String(), "FAL API key not configured") {
		t.Errorf("unconfigured: %d %s", rr.Code, rr.Body)
	}
}

func TestRequestDefaults(t *testing.T) {
	off := false
	in, err := Request{ImageURL: "u", Prompt: "p", GenerateAudio: &off}.toFal()
	if err != nil {
		t.Fatal(err)
	}
	if in.Duration != "8s" || in.Resolution != "720p" || in.GenerateAudio {
		t.Errorf("toFal() = %+v", in)
	}
}

func TestStreamHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	srv := httptest.NewServer(NewStreamHandler(log, newFal(t)))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Request{ImageURL: "https://img", Prompt: "slow spin"}); err != nil {
		t.Fatal(err)
	}

	var statuses []string
	for {
		var msg StreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg.Type == MessageStatus {
			statuses = append(statuses, msg.Update.Status)
			continue
		}
		if msg.Type != MessageResult || msg.Result.VideoURL != "https://cdn/video.mp4" {
			t.Fatalf("final message = %+v", msg)
		}
		break
	}
	if len(statuses) != 2 || statuses[1] != fal.StatusCompleted {
		t.Errorf("statuses = %v", statuses)
	}
}

func TestStreamHandlerStopsWhenClientLeaves(t *testing.T) {
	log, _ := logger.NewTestLogger()
	client, polls := newStalledFal(t)
	srv := httptest.NewServer(NewStreamHandler(log, client))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.WriteJSON(Request{ImageURL: "https://img", Prompt: "slow spin"}); err != nil {
		t.Fatal(err)
	}

	var msg StreamMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != MessageStatus || msg.Update.QueuePosition != 4 {
		t.Fatalf("first message = %+v", msg)
	}
	conn.Close()

	time.Sleep(100 * time.Millisecond)
	settled := polls.Load()
	time.Sleep(200 * time.Millisecond)
	if got := polls.Load(); got > settled+1 {
		t.Errorf("status polls kept running after the client left: %d -> %d", settled, got)
	}
}
