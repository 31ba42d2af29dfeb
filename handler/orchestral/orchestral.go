package orchestral

import (
	"fmt"
	"net/http"

	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/elevenlabs"
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/music"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/prompt"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultLengthMs = 10000

// OrchestralHandler composes an orchestral piece and its covers in parallel.
type OrchestralHandler struct {
	log              *zap.SugaredLogger
	elevenLabsClient *elevenlabs.ElevenLabsClient
	geminiClient     *gemini.GeminiClient
	generator        *cover.AIGenerator
}

func (*OrchestralHandler) Pattern() string {
	return "/orchestral"
}

func (*OrchestralHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewOrchestralHandler builds a new OrchestralHandler.
func NewOrchestralHandler(
	log *zap.SugaredLogger,
	elevenLabsClient *elevenlabs.ElevenLabsClient,
	geminiClient *gemini.GeminiClient,
	generator *cover.AIGenerator,
) *OrchestralHandler {
	return &OrchestralHandler{
		log:              log,
		elevenLabsClient: elevenLabsClient,
		geminiClient:     geminiClient,
		generator:        generator,
	}
}

type Request struct {
	// MusicLength is the track length in milliseconds. Defaults to 10000.
	MusicLength int `json:"musicLength"`
}

type Response struct {
	Success  bool            `json:"success"`
	Music    sleeve.Track    `json:"music"`
	Covers   []cover.Variant `json:"covers"`
	Analysis sleeve.Analysis `json:"analysis"`
}

// Generate orchestral showcase
// @Summary Generate orchestral music and covers
// @Description Composes an epic orchestral piece and three matching covers concurrently
// @Accept json
// @Produce json
// @Param request body Request false "Length"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /orchestral [post]
func (h *OrchestralHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.elevenLabsClient.Configured() || !h.geminiClient.Configured() {
		respond.Error(w, http.StatusInternalServerError, "API keys not configured properly")
		return
	}

	var req Request
	if r.ContentLength != 0 && !respond.Decode(w, r, &req) {
		return
	}
	if req.MusicLength <= 0 {
		req.MusicLength = defaultLengthMs
	}
	if req.MusicLength > music.MaxLengthMs {
		respond.Error(w, http.StatusBadRequest, fmt.Sprintf("musicLength must be at most %d", music.MaxLengthMs))
		return
	}

	styles := make([]cover.Style, len(prompt.OrchestralCovers))
	for i, s := range prompt.OrchestralCovers {
		styles[i] = cover.Style{
			Name:        s.Name,
			StyleName:   s.Name,
			Description: s.Description,
			Prompt:      s.Prompt,
		}
	}

	var (
		track  sleeve.Track
		covers []cover.Variant
	)
	eg, ctx := errgroup.WithContext(r.Context())
	eg.Go(func() error {
		var err error
		track, err = h.elevenLabsClient.Compose(ctx, prompt.Orchestral(req.MusicLength), req.MusicLength)
		return err
	})
	eg.Go(func() error {
		covers = h.generator.Generate(ctx, "orchestral-cover", styles)
		return nil
	})
	if err := eg.Wait(); err != nil {
		h.log.Errorw("orchestral generation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, Response{
		Success:  true,
		Music:    track,
		Covers:   covers,
		Analysis: prompt.OrchestralAnalysis(req.MusicLength),
	})
}
