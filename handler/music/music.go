package music

import (
	"net/http"

	"github.com/mager/sleeve/elevenlabs"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/prompt"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

const (
	// DefaultLengthMs is used when a request names no length.
	DefaultLengthMs = 30000
	// MaxLengthMs is the longest track that can be requested.
	MaxLengthMs = 300000
)

// MusicHandler composes a track that matches an analysis.
type MusicHandler struct {
	log              *zap.SugaredLogger
	elevenLabsClient *elevenlabs.ElevenLabsClient
}

func (*MusicHandler) Pattern() string {
	return "/music"
}

func (*MusicHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewMusicHandler builds a new MusicHandler.
func NewMusicHandler(log *zap.SugaredLogger, elevenLabsClient *elevenlabs.ElevenLabsClient) *MusicHandler {
	return &MusicHandler{
		log:              log,
		elevenLabsClient: elevenLabsClient,
	}
}

type Request struct {
	Analysis *sleeve.Analysis `json:"analysis"`
	// MusicLength is the track length in milliseconds. Defaults to 30000.
	MusicLength int `json:"musicLength"`
}

type Response struct {
	Success bool         `json:"success"`
	Track   sleeve.Track `json:"track"`
}

// Generate music
// @Summary Generate music
// @Description Composes a track whose genre, mood and tempo follow the analysis
// @Accept json
// @Produce json
// @Param request body Request true "Analysis and length"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /music [post]
func (h *MusicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.elevenLabsClient.Configured() {
		respond.Error(w, http.StatusInternalServerError, "ElevenLabs API key not configured")
		return
	}

	var req Request
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.Analysis == nil {
		respond.Error(w, http.StatusBadRequest, "Analysis data is required")
		return
	}
	if req.MusicLength <= 0 {
		req.MusicLength = DefaultLengthMs
	}
	if req.MusicLength > MaxLengthMs {
		respond.Error(w, http.StatusBadRequest, "musicLength must be at most 300000")
		return
	}

	track, err := h.elevenLabsClient.Compose(r.Context(), prompt.Music(*req.Analysis, req.MusicLength), req.MusicLength)
	if err != nil {
		h.log.Errorw("music generation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Music generation failed: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, Response{
		Success: true,
		Track:   track,
	})
}
