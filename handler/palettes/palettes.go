package palettes

import (
	"net/http"

	"github.com/mager/sleeve/handler/respond"
	"github.com/mager/sleeve/palette"
	"go.uber.org/zap"
)

// PalettesHandler lists the palette catalog.
type PalettesHandler struct {
	log     *zap.SugaredLogger
	catalog *palette.Catalog
}

func (*PalettesHandler) Pattern() string {
	return "/palettes"
}

func (*PalettesHandler) Methods() []string {
	return []string{http.MethodGet}
}

// NewPalettesHandler builds a new PalettesHandler.
func NewPalettesHandler(log *zap.SugaredLogger, catalog *palette.Catalog) *PalettesHandler {
	return &PalettesHandler{
		log:     log,
		catalog: catalog,
	}
}

type Genre struct {
	Name     string            `json:"name"`
	Palettes []palette.Palette `json:"palettes"`
}

type Response struct {
	Default string  `json:"default"`
	Genres  []Genre `json:"genres"`
}

// List palettes
// @Summary List palettes
// @Description Lists every genre in the catalog with its candidate palettes
// @Produce json
// @Success 200 {object} Response
// @Router /palettes [get]
func (h *PalettesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{Default: h.catalog.DefaultGenre()}
	for _, g := range h.catalog.Genres() {
		resp.Genres = append(resp.Genres, Genre{
			Name:     g,
			Palettes: h.catalog.Candidates([]string{g}),
		})
	}

	respond.JSON(w, http.StatusOK, resp)
}
