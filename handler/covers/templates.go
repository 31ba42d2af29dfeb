package covers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

// TemplatesHandler renders the six template covers for an analysis.
type TemplatesHandler struct {
	log    *zap.SugaredLogger
	engine *cover.Engine
}

func (*TemplatesHandler) Pattern() string {
	return "/covers/templates"
}

func (*TemplatesHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewTemplatesHandler builds a new TemplatesHandler.
func NewTemplatesHandler(log *zap.SugaredLogger, engine *cover.Engine) *TemplatesHandler {
	return &TemplatesHandler{
		log:    log,
		engine: engine,
	}
}

type TemplatesRequest struct {
	Analysis *sleeve.Analysis `json:"analysis"`
}

type Response struct {
	Success bool            `json:"success"`
	BatchID string          `json:"batchId"`
	Covers  []cover.Variant `json:"covers"`
}

// Render template covers
// @Summary Render template covers
// @Description Renders one SVG cover per template kind using a genre palette
// @Accept json
// @Produce json
// @Param request body TemplatesRequest true "Analysis"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Router /covers/templates [post]
func (h *TemplatesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req TemplatesRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if req.Analysis == nil {
		respond.Error(w, http.StatusBadRequest, "Analysis data is required")
		return
	}

	batchID := uuid.NewString()
	covers := h.engine.RenderAll(*req.Analysis)
	h.log.Infow("rendered template covers", "batch_id", batchID, "genre", req.Analysis.GenreList(""))

	respond.JSON(w, http.StatusOK, Response{
		Success: true,
		BatchID: batchID,
		Covers:  covers,
	})
}
