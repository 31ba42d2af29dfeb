package covers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

// AIHandler generates covers with the image provider.
type AIHandler struct {
	log          *zap.SugaredLogger
	geminiClient *gemini.GeminiClient
	generator    *cover.AIGenerator
}

func (*AIHandler) Pattern() string {
	return "/covers/ai"
}

func (*AIHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewAIHandler builds a new AIHandler.
func NewAIHandler(log *zap.SugaredLogger, geminiClient *gemini.GeminiClient, generator *cover.AIGenerator) *AIHandler {
	return &AIHandler{
		log:          log,
		geminiClient: geminiClient,
		generator:    generator,
	}
}

type AIRequest struct {
	Analysis *sleeve.Analysis `json:"analysis"`
	// Styles are template kinds such as "minimalist". Empty means Minimalist, Vintage and Abstract.
	Styles []string `json:"styles"`
}

// Generate AI covers
// @Summary Generate AI covers
// @Description Requests one image per style in parallel; failed styles come back as error variants
// @Accept json
// @Produce json
// @Param request body AIRequest true "Analysis and styles"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /covers/ai [post]
func (h *AIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.geminiClient.Configured() {
		respond.Error(w, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}

	var req AIRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.Analysis == nil {
		respond.Error(w, http.StatusBadRequest, "Analysis data is required")
		return
	}

	kinds := make([]cover.Kind, 0, len(req.Styles))
	for _, s := range req.Styles {
		k, ok := cover.ParseKind(s)
		if !ok {
			respond.Error(w, http.StatusBadRequest, "unknown cover style: "+s)
			return
		}
		kinds = append(kinds, k)
	}

	batchID := uuid.NewString()
	covers := h.generator.Generate(r.Context(), "cover", cover.StylesFor(*req.Analysis, kinds))

	failed := 0
	for _, c := range covers {
		if c.Source == cover.SourceError {
			failed++
		}
	}
	h.log.Infow("generated ai covers", "batch_id", batchID, "count", len(covers), "failed", failed)

	respond.JSON(w, http.StatusOK, Response{
		Success: true,
		BatchID: batchID,
		Covers:  covers,
	})
}
