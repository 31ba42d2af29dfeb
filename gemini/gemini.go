// Package gemini wraps the Gemini SDK for image generation and editing.
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/mager/sleeve/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const modelImage = "gemini-2.5-flash-image"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("gemini API key not configured")

// ErrNoImage is returned when a response carries no inline image.
var ErrNoImage = errors.New("no image data received from Gemini API")

type GeminiClient struct {
	client *genai.Client
	log    *zap.SugaredLogger
}

// New builds a client. An empty baseURL or apiVersion uses the public endpoint.
// Without an API key the client is left unconfigured.
func New(apiKey, baseURL, apiVersion string, httpClient *http.Client, log *zap.SugaredLogger) *GeminiClient {
	c := &GeminiClient{log: log}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return c
	}
	apiVersion = strings.TrimSpace(apiVersion)
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		log.Errorw("failed to create gemini client", "error", err)
		return c
	}
	c.client = client
	return c
}

// ProvideGemini provides a gemini client
func ProvideGemini(cfg config.Config, httpClient *http.Client, log *zap.SugaredLogger) *GeminiClient {
	log.Infow("setting up gemini client", "configured", cfg.GeminiAPIKey != "")
	return New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiAPIVersion, httpClient, log)
}

var Options = ProvideGemini

// Configured reports whether an API key is present.
func (c *GeminiClient) Configured() bool {
	return c.client != nil
}

// GenerateImage returns square images for prompt as data URLs.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) ([]string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("prompt is empty")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig:        &genai.ImageConfig{AspectRatio: "1:1"},
	}

	images, err := c.generateContent(ctx, genai.Text(prompt), cfg)
	if err != nil && isUnknownFieldError(err, "imageConfig") {
		cfg.ImageConfig = nil
		images, err = c.generateContent(ctx, genai.Text(prompt), cfg)
	}
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImage
	}
	return images, nil
}

// EditImage applies an instruction to an existing image. imageData may be a
// data URL or raw base64.
func (c *GeminiClient) EditImage(ctx context.Context, instruction, imageData, mimeType string) ([]string, error) {
	data, mime, err := decodeDataURL(imageData, mimeType)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(data, mime),
		}, genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	images, err := c.generateContent(ctx, contents, cfg)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImage
	}
	return images, nil
}

func (c *GeminiClient) generateContent(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	resp, err := c.client.Models.GenerateContent(ctx, modelImage, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API: %w", err)
	}

	images := extractImages(resp)
	c.log.Debugw("gemini response", "model", modelImage, "images", len(images))
	return images, nil
}

func extractImages(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}

	var images []string
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 || p.InlineData.MIMEType == "" {
			continue
		}
		images = append(images, fmt.Sprintf("data:%s;base64,%s", p.InlineData.MIMEType, base64.StdEncoding.EncodeToString(p.InlineData.Data)))
	}
	return images
}

var dataURLRegex = regexp.MustCompile(`^data:([^;]+);base64,`)

func decodeDataURL(dataURL, fallbackMime string) ([]byte, string, error) {
	dataURL = strings.TrimSpace(dataURL)

	mime := fallbackMime
	if matches := dataURLRegex.FindStringSubmatch(dataURL); len(matches) == 2 {
		mime = matches[1]
	}
	if mime == "" {
		mime = "image/png"
	}

	encoded := dataURL
	if idx := strings.IndexByte(encoded, ','); idx >= 0 {
		encoded = encoded[idx+1:]
	}
	if encoded == "" {
		return nil, "", errors.New("image data is empty")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decode image data: %w", err)
	}
	return data, mime, nil
}

func isUnknownFieldError(err error, field string) bool {
	message := err.Error()
	return strings.Contains(message, "Unknown name") && strings.Contains(message, field)
}
