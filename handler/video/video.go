package video

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mager/sleeve/fal"
	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/prompt"
	"go.uber.org/zap"
)

// VideoHandler turns a cover image into a short vertical video.
type VideoHandler struct {
	log       *zap.SugaredLogger
	falClient *fal.FalClient
}

func (*VideoHandler) Pattern() string {
	return "/video"
}

func (*VideoHandler) Methods() []string {
	return []string{http.MethodPost}
}

// NewVideoHandler builds a new VideoHandler.
func NewVideoHandler(log *zap.SugaredLogger, falClient *fal.FalClient) *VideoHandler {
	return &VideoHandler{
		log:       log,
		falClient: falClient,
	}
}

type Request struct {
	ImageURL string `json:"imageUrl"`
	Prompt   string `json:"prompt"`
	// Duration such as "8s". Defaults to 8s.
	Duration string `json:"duration"`
	// GenerateAudio defaults to true.
	GenerateAudio *bool `json:"generateAudio"`
	// Resolution such as "720p". Defaults to 720p.
	Resolution string `json:"resolution"`
}

type Response struct {
	Success   bool   `json:"success"`
	VideoURL  string `json:"videoUrl"`
	RequestID string `json:"requestId"`
}

var (
	errImageRequired  = errors.New("Image URL is required")
	errPromptRequired = errors.New("Prompt is required")
)

// toFal validates req and builds the fal input.
func (req Request) toFal() (fal.VideoRequest, error) {
	if strings.TrimSpace(req.ImageURL) == "" {
		return fal.VideoRequest{}, errImageRequired
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return fal.VideoRequest{}, errPromptRequired
	}

	generateAudio := true
	if req.GenerateAudio != nil {
		generateAudio = *req.GenerateAudio
	}

	return fal.VideoRequest{
		ImageURL:      req.ImageURL,
		Prompt:        prompt.Video(req.Prompt),
		Duration:      req.Duration,
		GenerateAudio: generateAudio,
		Resolution:    req.Resolution,
	}.WithDefaults(), nil
}

// Generate video
// @Summary Generate video
// @Description Animates an image into a vertical 9:16 video and waits for the result
// @Accept json
// @Produce json
// @Param request body Request true "Image and prompt"
// @Success 200 {object} Response
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /video [post]
func (h *VideoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.falClient.Configured() {
		respond.Error(w, http.StatusInternalServerError, "FAL API key not configured")
		return
	}

	var req Request
	if !respond.Decode(w, r, &req) {
		return
	}
	in, err := req.toFal()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	h.log.Infow("generating video", "duration", in.Duration, "resolution", in.Resolution)

	video, err := h.falClient.Subscribe(r.Context(), in, func(u fal.QueueUpdate) {
		if u.Status == fal.StatusInProgress {
			for _, l := range u.Logs {
				h.log.Debugw("video progress", "request_id", u.RequestID, "message", l.Message)
			}
		}
	})
	if err != nil {
		h.log.Errorw("video generation failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusOK, Response{
		Success:   true,
		VideoURL:  video.VideoURL,
		RequestID: video.RequestID,
	})
}
