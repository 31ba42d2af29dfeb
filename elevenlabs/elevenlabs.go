// Package elevenlabs composes music through the ElevenLabs music API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/mager/sleeve/config"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

const defaultFilename = "generated-music.mp3"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("elevenlabs API key not configured")

type ElevenLabsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New builds a client. An empty baseURL uses the public endpoint.
func New(apiKey, baseURL string, httpClient *http.Client, log *zap.SugaredLogger) *ElevenLabsClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ElevenLabsClient{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// ProvideElevenLabs provides an elevenlabs client
func ProvideElevenLabs(cfg config.Config, httpClient *http.Client, log *zap.SugaredLogger) *ElevenLabsClient {
	log.Infow("setting up elevenlabs client", "configured", cfg.ElevenLabsAPIKey != "")
	return New(cfg.ElevenLabsAPIKey, cfg.ElevenLabsBaseURL, httpClient, log)
}

var Options = ProvideElevenLabs

// Configured reports whether an API key is present.
func (c *ElevenLabsClient) Configured() bool {
	return c.apiKey != ""
}

type composeRequest struct {
	Prompt        string `json:"prompt"`
	MusicLengthMs int    `json:"music_length_ms"`
}

// Compose generates a track of lengthMs milliseconds for prompt.
func (c *ElevenLabsClient) Compose(ctx context.Context, prompt string, lengthMs int) (sleeve.Track, error) {
	if !c.Configured() {
		return sleeve.Track{}, ErrNotConfigured
	}

	body, err := json.Marshal(composeRequest{Prompt: prompt, MusicLengthMs: lengthMs})
	if err != nil {
		return sleeve.Track{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/music", bytes.NewReader(body))
	if err != nil {
		return sleeve.Track{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return sleeve.Track{}, fmt.Errorf("compose: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return sleeve.Track{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return sleeve.Track{}, fmt.Errorf("elevenlabs API %s: %s", resp.Status, strings.TrimSpace(string(audio)))
	}
	if len(audio) == 0 {
		return sleeve.Track{}, errors.New("elevenlabs returned no audio")
	}

	contentType := resp.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && strings.HasPrefix(mt, "audio/") {
		contentType = mt
	} else {
		contentType = "audio/mpeg"
	}

	c.log.Infow("composed track", "bytes", len(audio), "length_ms", lengthMs)

	return sleeve.Track{
		AudioURL: fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(audio)),
		Filename: filenameFrom(resp.Header.Get("Content-Disposition")),
		Prompt:   prompt,
		Duration: lengthMs,
	}, nil
}

func filenameFrom(disposition string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		if name := strings.TrimSpace(params["filename"]); name != "" {
			return name
		}
	}
	return defaultFilename
}
