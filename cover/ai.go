package cover

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mager/sleeve/prompt"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

// DefaultAIKinds are generated when a request names no styles.
var DefaultAIKinds = []Kind{Minimalist, Vintage, Abstract}

var errNoImage = errors.New("no image data received from image provider")

// ImageGenerator produces images for a text prompt, returned as data URLs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]string, error)
}

// Style is one AI cover request.
type Style struct {
	Kind        Kind
	Name        string
	StyleName   string
	Description string
	Prompt      string
}

// AIGenerator requests covers from an ImageGenerator.
type AIGenerator struct {
	images ImageGenerator
	log    *zap.SugaredLogger
}

// NewAIGenerator builds an AIGenerator.
func NewAIGenerator(images ImageGenerator, log *zap.SugaredLogger) *AIGenerator {
	return &AIGenerator{
		images: images,
		log:    log,
	}
}

// StylesFor builds AI styles for template kinds. An empty list means DefaultAIKinds.
func StylesFor(a sleeve.Analysis, kinds []Kind) []Style {
	if len(kinds) == 0 {
		kinds = DefaultAIKinds
	}
	styles := make([]Style, len(kinds))
	for i, k := range kinds {
		styles[i] = Style{
			Kind:        k,
			Name:        string(k),
			StyleName:   StyleName(string(k), a),
			Description: k.Description(),
			Prompt:      prompt.Cover(string(k), a),
		}
	}
	return styles
}

// Generate requests every style concurrently. A failed style becomes an error
// variant and never fails the others.
func (g *AIGenerator) Generate(ctx context.Context, idPrefix string, styles []Style) []Variant {
	variants := make([]Variant, len(styles))

	var wg sync.WaitGroup
	for i, s := range styles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("%s-%d", idPrefix, i+1)

			url, err := g.generateOne(ctx, s.Prompt)
			if err != nil {
				g.log.Errorw("cover generation failed", "style", s.Name, "error", err)
				variants[i] = Variant{
					ID:          id,
					Kind:        s.Kind,
					StyleName:   s.Name + " (Failed)",
					Description: s.Description + " - Generation failed",
					Source:      SourceError,
					Error:       err.Error(),
				}
				return
			}

			variants[i] = Variant{
				ID:          id,
				Kind:        s.Kind,
				StyleName:   s.StyleName,
				Description: s.Description,
				PreviewURL:  url,
				Source:      SourceAI,
				CanEdit:     true,
			}
		}()
	}
	wg.Wait()

	return variants
}

func (g *AIGenerator) generateOne(ctx context.Context, p string) (string, error) {
	if g.images == nil {
		return "", errors.New("image provider not configured")
	}
	images, err := g.images.GenerateImage(ctx, p)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", errNoImage
	}
	return images[0], nil
}
