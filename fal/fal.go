// Package fal submits image-to-video jobs to the fal queue and waits for them.
package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mager/sleeve/config"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

const videoModel = "fal-ai/veo3/fast/image-to-video"

// Queue states reported by the status endpoint.
const (
	StatusInQueue    = "IN_QUEUE"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// ErrNotConfigured is returned when no key is set.
var ErrNotConfigured = errors.New("fal API key not configured")

// ErrNoVideo is returned when a completed job has no video URL.
var ErrNoVideo = errors.New("no video URL in response")

type FalClient struct {
	key          string
	baseURL      string
	pollInterval time.Duration
	httpClient   *http.Client
	log          *zap.SugaredLogger
}

// New builds a client. An empty baseURL uses the public queue.
func New(key, baseURL string, pollInterval time.Duration, httpClient *http.Client, log *zap.SugaredLogger) *FalClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "https://queue.fal.run"
	}
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FalClient{
		key:          strings.TrimSpace(key),
		baseURL:      baseURL,
		pollInterval: pollInterval,
		httpClient:   httpClient,
		log:          log,
	}
}

// ProvideFal provides a fal client
func ProvideFal(cfg config.Config, httpClient *http.Client, log *zap.SugaredLogger) *FalClient {
	log.Infow("setting up fal client", "configured", cfg.FalKey != "")
	return New(cfg.FalKey, cfg.FalBaseURL, cfg.PollInterval, httpClient, log)
}

var Options = ProvideFal

// Configured reports whether a key is present.
func (c *FalClient) Configured() bool {
	return c.key != ""
}

// VideoRequest is the image-to-video input.
type VideoRequest struct {
	ImageURL      string `json:"image_url"`
	Prompt        string `json:"prompt"`
	Duration      string `json:"duration"`
	GenerateAudio bool   `json:"generate_audio"`
	Resolution    string `json:"resolution"`
}

// WithDefaults fills unset fields with 8s, 720p.
func (r VideoRequest) WithDefaults() VideoRequest {
	if r.Duration == "" {
		r.Duration = "8s"
	}
	if r.Resolution == "" {
		r.Resolution = "720p"
	}
	return r
}

type LogLine struct {
	Message string `json:"message"`
}

// QueueUpdate is one status poll result.
type QueueUpdate struct {
	RequestID     string    `json:"requestId"`
	Status        string    `json:"status"`
	QueuePosition int       `json:"queuePosition,omitempty"`
	Logs          []LogLine `json:"logs,omitempty"`
}

type submitResponse struct {
	RequestID   string `json:"request_id"`
	StatusURL   string `json:"status_url"`
	ResponseURL string `json:"response_url"`
}

type statusResponse struct {
	Status        string    `json:"status"`
	QueuePosition int       `json:"queue_position"`
	Logs          []LogLine `json:"logs"`
}

type videoResponse struct {
	Video struct {
		URL string `json:"url"`
	} `json:"video"`
}

// Subscribe submits req and blocks until the video is ready or ctx is done.
// onUpdate, when non-nil, receives every status poll.
func (c *FalClient) Subscribe(ctx context.Context, req VideoRequest, onUpdate func(QueueUpdate)) (sleeve.Video, error) {
	if !c.Configured() {
		return sleeve.Video{}, ErrNotConfigured
	}
	req = req.WithDefaults()

	var submitted submitResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/"+videoModel, req, &submitted); err != nil {
		return sleeve.Video{}, fmt.Errorf("submit: %w", err)
	}
	if submitted.StatusURL == "" {
		submitted.StatusURL = fmt.Sprintf("%s/%s/requests/%s/status", c.baseURL, videoModel, submitted.RequestID)
	}
	if submitted.ResponseURL == "" {
		submitted.ResponseURL = fmt.Sprintf("%s/%s/requests/%s", c.baseURL, videoModel, submitted.RequestID)
	}
	c.log.Infow("video job submitted", "request_id", submitted.RequestID)

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		var status statusResponse
		if err := c.do(ctx, http.MethodGet, submitted.StatusURL+"?logs=1", nil, &status); err != nil {
			return sleeve.Video{}, fmt.Errorf("status: %w", err)
		}
		if onUpdate != nil {
			onUpdate(QueueUpdate{
				RequestID:     submitted.RequestID,
				Status:        status.Status,
				QueuePosition: status.QueuePosition,
				Logs:          status.Logs,
			})
		}
		if status.Status == StatusCompleted {
			break
		}
		if status.Status != StatusInQueue && status.Status != StatusInProgress {
			return sleeve.Video{}, fmt.Errorf("unexpected job status %q", status.Status)
		}

		select {
		case <-ctx.Done():
			return sleeve.Video{}, ctx.Err()
		case <-ticker.C:
		}
	}

	var result videoResponse
	if err := c.do(ctx, http.MethodGet, submitted.ResponseURL, nil, &result); err != nil {
		return sleeve.Video{}, fmt.Errorf("result: %w", err)
	}
	if result.Video.URL == "" {
		return sleeve.Video{}, ErrNoVideo
	}

	c.log.Infow("video job completed", "request_id", submitted.RequestID)
	return sleeve.Video{VideoURL: result.Video.URL, RequestID: submitted.RequestID}, nil
}

func (c *FalClient) do(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Key "+c.key)
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("fal API %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
