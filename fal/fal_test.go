package fal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mager/sleeve/logger"
)

func newQueueServer(t *testing.T, statuses []string, videoURL string) *httptest.Server {
	t.Helper()
	var polls atomic.Int32

	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/"+videoModel, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Key fal-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		var req VideoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		if req.Duration != "8s" || req.Resolution != "720p" || req.ImageURL != "https://img" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"request_id":   "req-1",
			"status_url":   srv.URL + "/status",
			"response_url": srv.URL + "/result",
		})
	})
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		i := int(polls.Add(1)) - 1
		if i >= len(statuses) {
			i = len(statuses) - 1
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status": statuses[i],
			"logs":   []map[string]string{{"message": "step"}},
		})
	})
	mux.HandleFunc("/result", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"video": map[string]string{"url": videoURL}})
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSubscribe(t *testing.T) {
	srv := newQueueServer(t, []string{StatusInQueue, StatusInProgress, StatusCompleted}, "https://video.mp4")
	log, _ := logger.NewTestLogger()
	c := New("fal-key", srv.URL, time.Millisecond, srv.Client(), log)

	var updates []QueueUpdate
	video, err := c.Subscribe(context.Background(), VideoRequest{ImageURL: "https://img", Prompt: "spin"}, func(u QueueUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if video.VideoURL != "https://video.mp4" || video.RequestID != "req-1" {
		t.Errorf("video = %+v", video)
	}
	if len(updates) != 3 || updates[2].Status != StatusCompleted || updates[0].RequestID != "req-1" {
		t.Errorf("updates = %+v", updates)
	}
}

func TestSubscribeNoVideo(t *testing.T) {
	srv := newQueueServer(t, []string{StatusCompleted}, "")
	log, _ := logger.NewTestLogger()
	c := New("fal-key", srv.URL, time.Millisecond, srv.Client(), log)

	if _, err := c.Subscribe(context.Background(), VideoRequest{ImageURL: "https://img", Prompt: "spin"}, nil); !errors.Is(err, ErrNoVideo) {
		t.Errorf("Subscribe() error = %v, want ErrNoVideo", err)
	}
}

func TestSubscribeCancelled(t *testing.T) {
	srv := newQueueServer(t, []string{StatusInQueue}, "")
	log, _ := logger.NewTestLogger()
	c := New("fal-key", srv.URL, 5*time.Millisecond, srv.Client(), log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if _, err := c.Subscribe(ctx, VideoRequest{ImageURL: "https://img", Prompt: "spin"}, nil); err == nil {
		t.Error("Subscribe() error = nil, want context error")
	}
}

func TestSubscribeNotConfigured(t *testing.T) {
	log, _ := logger.NewTestLogger()
	if _, err := New("", "", 0, nil, log).Subscribe(context.Background(), VideoRequest{}, nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Subscribe() error = %v, want ErrNotConfigured", err)
	}
}
