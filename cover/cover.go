// Package cover renders procedural SVG album covers from a genre palette and
// requests AI-generated covers from an image provider.
package cover

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/mager/sleeve/palette"
	"github.com/mager/sleeve/sleeve"
	"go.uber.org/zap"
)

// Kind names one of the cover templates.
type Kind string

const (
	Minimalist  Kind = "Minimalist"
	Vintage     Kind = "Vintage"
	Abstract    Kind = "Abstract"
	Geometric   Kind = "Geometric"
	Atmospheric Kind = "Atmospheric"
	Typography  Kind = "Typography"
)

// Source tells the presentation layer how a variant was produced.
type Source string

const (
	SourceTemplate Source = "template"
	SourceAI       Source = "ai-generated"
	SourceError    Source = "error"
)

// Renderer draws one template. Only Abstract reads from rng.
type Renderer func(p palette.Palette, a sleeve.Analysis, rng *rand.Rand) string

type template struct {
	kind        Kind
	render      Renderer
	description string
}

// templates is the declared render order.
var templates = [...]template{
	{Minimalist, renderMinimalist, "Clean geometric design with modern simplicity"},
	{Vintage, renderVintage, "Retro aesthetic with classic album vibes"},
	{Abstract, renderAbstract, "Flowing organic shapes and dynamic composition"},
	{Geometric, renderGeometric, "Sharp angles and structured patterns with bold contrast"},
	{Atmospheric, renderAtmospheric, "Dreamy gradients with soft ambient glow"},
	{Typography, renderTypography, "Bold typography as the hero element"},
}

// Kinds returns every template kind in render order.
func Kinds() []Kind {
	out := make([]Kind, len(templates))
	for i, t := range templates {
		out[i] = t.kind
	}
	return out
}

// ParseKind matches a template name case-insensitively. "photo" is accepted
// for Atmospheric.
func ParseKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "photo") {
		return Atmospheric, true
	}
	for _, t := range templates {
		if strings.EqualFold(name, string(t.kind)) {
			return t.kind, true
		}
	}
	return "", false
}

// Description returns the static description of a kind.
func (k Kind) Description() string {
	for _, t := range templates {
		if t.kind == k {
			return t.description
		}
	}
	return ""
}

// Variant is one rendered or generated cover.
type Variant struct {
	ID          string           `json:"id"`
	Kind        Kind             `json:"kind,omitempty"`
	StyleName   string           `json:"style"`
	Description string           `json:"description"`
	SVG         string           `json:"svg,omitempty"`
	Palette     *palette.Palette `json:"palette,omitempty"`
	PreviewURL  string           `json:"previewUrl,omitempty"`
	Source      Source           `json:"type"`
	CanEdit     bool             `json:"canEdit"`
	Error       string           `json:"error,omitempty"`
}

// StyleName labels a variant with the primary genre of the analysis.
func StyleName(name string, a sleeve.Analysis) string {
	genre, ok := a.PrimaryGenre()
	if !ok {
		genre = "Style"
	}
	return name + " " + genre
}

// Render draws a single template kind. Unknown kinds render as Minimalist.
func Render(kind Kind, p palette.Palette, a sleeve.Analysis, rng *rand.Rand) string {
	for _, t := range templates {
		if t.kind == kind {
			return t.render(p, a, rng)
		}
	}
	return renderMinimalist(p, a, rng)
}

// Engine renders the full template batch for an analysis.
type Engine struct {
	catalog *palette.Catalog
	log     *zap.SugaredLogger
}

// NewEngine builds an Engine over a palette catalog.
func NewEngine(catalog *palette.Catalog, log *zap.SugaredLogger) *Engine {
	return &Engine{
		catalog: catalog,
		log:     log,
	}
}

// Catalog returns the palette catalog the engine draws from.
func (e *Engine) Catalog() *palette.Catalog {
	return e.catalog
}

// RenderAll renders every template with a freshly seeded source.
func (e *Engine) RenderAll(a sleeve.Analysis) []Variant {
	return e.RenderAllWith(a, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// RenderAllWith renders every template in declared order. Each template gets
// its own palette draw and its own source split from rng, so the batch is
// reproducible for a given rng while templates render concurrently. A nil rng
// behaves like RenderAll.
func (e *Engine) RenderAllWith(a sleeve.Analysis, rng *rand.Rand) []Variant {
	if rng == nil {
		return e.RenderAll(a)
	}

	variants := make([]Variant, len(templates))
	sources := make([]*rand.Rand, len(templates))
	for i := range templates {
		sources[i] = rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	}

	var wg sync.WaitGroup
	for i, t := range templates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := sources[i]
			p := e.catalog.Select(a.Genre, src)
			variants[i] = Variant{
				ID:          fmt.Sprintf("cover-%d", i+1),
				Kind:        t.kind,
				StyleName:   StyleName(string(t.kind), a),
				Description: t.description,
				SVG:         t.render(p, a, src),
				Palette:     &p,
				Source:      SourceTemplate,
			}
		}()
	}
	wg.Wait()

	if e.log != nil {
		e.log.Debugw("rendered template covers", "genre", a.GenreList("none"), "count", len(variants))
	}
	return variants
}
