package health

import (
	"net/http"

	"github.com/mager/sleeve/elevenlabs"
	"github.com/mager/sleeve/fal"
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/musicbrainz"
	"go.uber.org/zap"
)

// HealthHandler reports server and provider readiness.
type HealthHandler struct {
	log               *zap.SugaredLogger
	geminiClient      *gemini.GeminiClient
	elevenLabsClient  *elevenlabs.ElevenLabsClient
	falClient         *fal.FalClient
	musicbrainzClient *musicbrainz.MusicbrainzClient
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

func (*HealthHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(
	log *zap.SugaredLogger,
	geminiClient *gemini.GeminiClient,
	elevenLabsClient *elevenlabs.ElevenLabsClient,
	falClient *fal.FalClient,
	musicbrainzClient *musicbrainz.MusicbrainzClient,
) *HealthHandler {
	return &HealthHandler{
		log:               log,
		geminiClient:      geminiClient,
		elevenLabsClient:  elevenLabsClient,
		falClient:         falClient,
		musicbrainzClient: musicbrainzClient,
	}
}

type Response struct {
	Status      string `json:"status"`
	Server      bool   `json:"server"`
	Gemini      bool   `json:"gemini"`
	ElevenLabs  bool   `json:"elevenlabs"`
	Fal         bool   `json:"fal"`
	MusicBrainz bool   `json:"musicbrainz"`
}

// Health check
// @Summary Health check
// @Description Reports which providers have credentials configured
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("health check")

	resp := Response{
		Status:      "OK",
		Server:      true,
		Gemini:      h.geminiClient.Configured(),
		ElevenLabs:  h.elevenLabsClient.Configured(),
		Fal:         h.falClient.Configured(),
		MusicBrainz: h.musicbrainzClient.Enabled(),
	}

	respond.JSON(w, http.StatusOK, resp)
}
