package analyze

import (
	"errors"
	"net/http"

	"github.com/mager/sleeve/analyzer"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/sleeve"
	"github.com/mager/sleeve/util"
	"go.uber.org/zap"
)

// AnalyzeHandler accepts an audio upload and returns its analysis.
type AnalyzeHandler struct {
	log      *zap.SugaredLogger
	analyzer *analyzer.Analyzer
}

func (*AnalyzeHandler) Pattern() string {
	return "/analyze"
}

func (*AnalyzeHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewAnalyzeHandler builds a new AnalyzeHandler.
func NewAnalyzeHandler(log *zap.SugaredLogger, a *analyzer.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:      log,
		analyzer: a,
	}
}

type File struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

type Response struct {
	Success  bool            `json:"success"`
	File     File            `json:"file"`
	Analysis sleeve.Analysis `json:"analysis"`
}

// Analyze audio
// @Summary Analyze an audio upload
// @Description Validates an audio file and derives genre, mood, tempo and key
// @Accept mpfd
// @Produce json
// @Param audio formData file true "Audio file (MP3, WAV, M4A, AAC)"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, analyzer.MaxUploadBytes)

	file, header, err := r.FormFile("audio")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, "audio file exceeds 25 MB")
			return
		}
		respond.Error(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	if err := analyzer.ValidateAudioFile(header.Filename, header.Header.Get("Content-Type")); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis := h.analyzer.Analyze(r.Context(), header.Filename)

	respond.JSON(w, http.StatusOK, Response{
		Success: true,
		File: File{
			Name:      header.Filename,
			Size:      header.Size,
			SizeLabel: util.FormatFileSize(header.Size),
		},
		Analysis: analysis,
	})
}
