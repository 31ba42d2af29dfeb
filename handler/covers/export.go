package covers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mager/sleeve/cover"
	"github.com/mager/sleeve/handler/respond"
	"go.uber.org/zap"
)

// ExportHandler returns a template cover as a downloadable SVG.
type ExportHandler struct {
	log *zap.SugaredLogger
}

func (*ExportHandler) Pattern() string {
	return "/covers/export"
}

func (*ExportHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewExportHandler builds a new ExportHandler.
func NewExportHandler(log *zap.SugaredLogger) *ExportHandler {
	return &ExportHandler{
		log: log,
	}
}

type ExportRequest struct {
	SVG string `json:"svg"`
	// Filename is the uploaded audio name the download is named after.
	Filename string `json:"filename"`
	Style    string `json:"style"`
	// Size is the exported width and height in pixels. Defaults to 1400.
	Size int `json:"size"`
}

// Export cover
// @Summary Export a template cover
// @Description Returns the SVG sized for download
// @Accept json
// @Produce image/svg+xml
// @Param request body ExportRequest true "SVG markup"
// @Success 200 {file} file
// @Failure 400 {object} respond.ErrorResponse
// @Router /covers/export [post]
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !respond.Decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.SVG) == "" {
		respond.Error(w, http.StatusBadRequest, "SVG markup is required")
		return
	}

	size := req.Size
	if size <= 0 {
		size = cover.ExportSize
	}

	data, err := cover.Export(req.SVG, size)
	if err != nil {
		if errors.Is(err, cover.ErrNotSVG) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	name := cover.Filename(req.Filename, req.Style, "svg")
	h.log.Infow("exported cover", "filename", name, "size", size)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
