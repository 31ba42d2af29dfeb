package swagger

import (
	"net/http"

	"github.com/mager/sleeve/docs"
	"github.com/mager/sleeve/handler/respond"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// DocHandler serves the generated API description.
type DocHandler struct {
	log *zap.SugaredLogger
}

func (*DocHandler) Pattern() string {
	return "/swagger/doc.json"
}

func (*DocHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewDocHandler builds a new DocHandler.
func NewDocHandler(log *zap.SugaredLogger) *DocHandler {
	return &DocHandler{
		log: log,
	}
}

func (h *DocHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		h.log.Errorw("failed to read swagger doc", "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
