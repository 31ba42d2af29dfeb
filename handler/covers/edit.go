package covers

import (
	"net/http"
	"strings"

	"github.com/mager/sleeve/gemini"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/prompt"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

// EditHandler applies a text instruction to an existing cover image.
type EditHandler struct {
	log          *zap.SugaredLogger
	geminiClient *gemini.GeminiClient
}

func (*EditHandler) Pattern() string {
	return "/covers/edit"
}

func (*EditHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewEditHandler builds a new EditHandler.
func NewEditHandler(log *zap.SugaredLogger, geminiClient *gemini.GeminiClient) *EditHandler {
	return &EditHandler{
		log:          log,
		geminiClient: geminiClient,
	}
}

type EditRequest struct {
	// ImageBase64 is a data URL or raw base64 PNG.
	ImageBase64     string           `json:"imageBase64"`
	EditInstruction string           `json:"editInstruction"`
	Analysis        *sleeve.Analysis `json:"analysis"`
}

type EditResponse struct {
	Success     bool   `json:"success"`
	EditedImage string `json:"editedImage"`
}

// Edit cover
// @Summary Edit an AI cover
// @Description Applies an edit instruction to a cover image
// @Accept json
// @Produce json
// @Param request body EditRequest true "Image, instruction and analysis"
// @Success 200 {object} EditResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /covers/edit [post]
func (h *EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.geminiClient.Configured() {
		respond.Error(w, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}

	var req EditRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" || strings.TrimSpace(req.EditInstruction) == "" || req.Analysis == nil {
		respond.Error(w, http.StatusBadRequest, "Image data, edit instruction, and analysis are required")
		return
	}

	images, err := h.geminiClient.EditImage(r.Context(), prompt.Edit(req.EditInstruction, *req.Analysis), req.ImageBase64, "image/png")
	if err != nil {
		h.log.Errorw("cover edit failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to edit cover: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, EditResponse{
		Success:     true,
		EditedImage: images[0],
	})
}
