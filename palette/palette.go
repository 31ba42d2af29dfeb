// Package palette maps genre labels to curated three-color palettes.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// DefaultGenre is used when the primary genre is missing or unknown.
const DefaultGenre = "Electronic"

// Palette is an ordered primary, secondary, accent triplet of hex colors.
type Palette [3]string

func (p Palette) Primary() string   { return p[0] }
func (p Palette) Secondary() string { return p[1] }
func (p Palette) Accent() string    { return p[2] }

// Contains reports whether color is one of the palette entries.
func (p Palette) Contains(color string) bool {
	for _, c := range p {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// Validate checks that every entry parses as a hex color.
func (p Palette) Validate() error {
	for i, c := range p {
		if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("color %d %q: %w", i, c, err)
		}
	}
	return nil
}

// Catalog is an immutable genre to candidate palettes table.
type Catalog struct {
	defaultGenre string
	entries      map[string][]Palette
}

// NewCatalog validates entries and copies them into a Catalog.
func NewCatalog(defaultGenre string, entries map[string][]Palette) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("palette catalog is empty")
	}
	if len(entries[defaultGenre]) == 0 {
		return nil, fmt.Errorf("default genre %q has no palettes", defaultGenre)
	}

	c := &Catalog{
		defaultGenre: defaultGenre,
		entries:      make(map[string][]Palette, len(entries)),
	}
	for genre, palettes := range entries {
		if len(palettes) == 0 {
			return nil, fmt.Errorf("genre %q has no palettes", genre)
		}
		for _, p := range palettes {
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("genre %q: %w", genre, err)
			}
		}
		c.entries[genre] = append([]Palette(nil), palettes...)
	}
	return c, nil
}

type catalogFile struct {
	Default string                `yaml:"default"`
	Genres  map[string][][]string `yaml:"genres"`
}

// LoadCatalog reads a catalog from a YAML file of the form
//
//	default: Electronic
//	genres:
//	  Electronic:
//	    - ["#00FFFF", "#FF00FF", "#0080FF"]
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode palette file: %w", err)
	}
	if f.Default == "" {
		f.Default = DefaultGenre
	}

	entries := make(map[string][]Palette, len(f.Genres))
	for genre, palettes := range f.Genres {
		for _, colors := range palettes {
			if len(colors) != len(Palette{}) {
				return nil, fmt.Errorf("genre %q: palette must have 3 colors, got %d", genre, len(colors))
			}
			entries[genre] = append(entries[genre], Palette{colors[0], colors[1], colors[2]})
		}
	}
	return NewCatalog(f.Default, entries)
}

// DefaultGenre reports the fallback genre key.
func (c *Catalog) DefaultGenre() string {
	return c.defaultGenre
}

// Genres returns the catalog keys in sorted order.
func (c *Catalog) Genres() []string {
	keys := maps.Keys(c.entries)
	sort.Strings(keys)
	return keys
}

// Candidates returns the palettes for the primary genre, falling back to the
// default genre when the list is empty or the key is unknown.
func (c *Catalog) Candidates(genres []string) []Palette {
	if len(genres) > 0 {
		if palettes, ok := c.entries[genres[0]]; ok {
			return palettes
		}
	}
	return c.entries[c.defaultGenre]
}

// Select draws one candidate palette for the primary genre uniformly at random.
// A nil rng uses the global source.
func (c *Catalog) Select(genres []string, rng *rand.Rand) Palette {
	candidates := c.Candidates(genres)
	if rng == nil {
		return candidates[rand.IntN(len(candidates))]
	}
	return candidates[rng.IntN(len(candidates))]
}
