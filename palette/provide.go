package palette

import (
	"github.com/mager/sleeve/config"
	"go.uber.org/zap"
)

// ProvideCatalog provides the palette catalog, read from cfg.PaletteFile when set
func ProvideCatalog(cfg config.Config, log *zap.SugaredLogger) (*Catalog, error) {
	if cfg.PaletteFile == "" {
		return DefaultCatalog(), nil
	}

	c, err := LoadCatalog(cfg.PaletteFile)
	if err != nil {
		log.Errorw("failed to load palette file", "path", cfg.PaletteFile, "error", err)
		return nil, err
	}
	log.Infow("loaded palette file", "path", cfg.PaletteFile, "genres", len(c.Genres()))
	return c, nil
}

var Options = ProvideCatalog
