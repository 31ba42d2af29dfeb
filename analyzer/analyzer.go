// Package analyzer derives an analysis record from an uploaded audio file.
//
// Nothing is decoded: genre, mood and vibe come from filename keywords, and the
// numeric fields are drawn from ranges typical for that genre.
package analyzer

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mager/sleeve/musicbrainz"
	"github.com/mager/sleeve/palette"
	"github.com/mager/sleeve/sleeve"
	"github.com/mager/sleeve/util"
	"go.uber.org/zap"
)

// MaxUploadBytes is the largest accepted audio upload.
const MaxUploadBytes = 25 << 20

// ErrUnsupportedFormat is returned for files that are not mp3, wav, m4a or aac.
var ErrUnsupportedFormat = errors.New("please upload a valid audio file (MP3, WAV, M4A, AAC)")

var audioTypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/mp3":   true,
	"audio/wav":   true,
	"audio/x-wav": true,
	"audio/mp4":   true,
	"audio/aac":   true,
	"audio/x-m4a": true,
}

var audioExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
	".aac": true,
}

// ValidateAudioFile accepts a file when either its content type or its
// extension is a known audio format.
func ValidateAudioFile(name, contentType string) error {
	if mt, _, _ := strings.Cut(strings.ToLower(contentType), ";"); audioTypes[strings.TrimSpace(mt)] {
		return nil
	}
	if audioExtensions[strings.ToLower(filepath.Ext(name))] {
		return nil
	}
	return ErrUnsupportedFormat
}

// GenreLookup finds genres for a known recording.
type GenreLookup interface {
	RecordingGenres(artist, title string) ([]string, error)
}

// rule maps filename keywords to a fixed genre, mood and vibe plus the
// tempo and energy ranges to draw from.
type rule struct {
	keywords  []string
	genre     []string
	mood      string
	vibe      string
	tempoMin  int
	tempoSpan int
	energyMin float64
	energyMax float64
}

var rules = []rule{
	{[]string{"electronic", "edm", "house"}, []string{"Electronic", "Dance"}, "Energetic", "Pulsing & Electric", 120, 20, 0.8, 1.0},
	{[]string{"rock", "metal"}, []string{"Rock"}, "Intense", "Raw & Powerful", 100, 30, 0.7, 1.0},
	{[]string{"jazz", "blues"}, []string{"Jazz"}, "Chill", "Smooth & Sophisticated", 80, 40, 0.3, 0.7},
	{[]string{"classical", "orchestra"}, []string{"Classical"}, "Peaceful", "Timeless & Elegant", 60, 60, 0.2, 0.7},
	{[]string{"hip", "rap"}, []string{"Hip-Hop"}, "Aggressive", "Bold & Rhythmic", 85, 20, 0.6, 1.0},
	{[]string{"pop"}, []string{"Pop"}, "Uplifting", "Catchy & Melodic", 100, 30, 0.5, 0.9},
	{[]string{"ambient", "chill"}, []string{"Ambient"}, "Dreamy", "Ethereal & Floating", 60, 30, 0.1, 0.5},
}

var (
	randomGenres = [][]string{
		{"Electronic", "Dance"},
		{"Rock"},
		{"Pop"},
		{"Hip-Hop"},
		{"Jazz"},
		{"Classical"},
		{"R&B"},
		{"Ambient"},
		{"Folk"},
	}
	randomMoods = []string{"Energetic", "Chill", "Melancholic", "Uplifting", "Dark", "Peaceful", "Intense", "Dreamy", "Romantic"}
	randomVibes = []string{
		"Dark & Driving",
		"Bright & Optimistic",
		"Smooth & Sophisticated",
		"Raw & Emotional",
		"Ethereal & Floating",
		"Bold & Rhythmic",
		"Warm & Nostalgic",
		"Fresh & Modern",
	}
	keys = []string{
		"C major", "G major", "D major", "A major", "E major", "F major",
		"A minor", "E minor", "B minor", "F# minor", "C# minor", "D minor",
	}
)

type Analyzer struct {
	catalog *palette.Catalog
	lookup  GenreLookup
	log     *zap.SugaredLogger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAnalyzer builds an analyzer. lookup may be nil to disable enrichment and
// rng may be nil for a time-seeded source.
func NewAnalyzer(catalog *palette.Catalog, lookup GenreLookup, rng *rand.Rand, log *zap.SugaredLogger) *Analyzer {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Analyzer{catalog: catalog, lookup: lookup, rng: rng, log: log}
}

// ProvideAnalyzer provides an analyzer enriched by MusicBrainz
func ProvideAnalyzer(catalog *palette.Catalog, mb *musicbrainz.MusicbrainzClient, log *zap.SugaredLogger) *Analyzer {
	var lookup GenreLookup
	if mb.Enabled() {
		lookup = mb
	}
	return NewAnalyzer(catalog, lookup, nil, log)
}

var Options = ProvideAnalyzer

// Analyze builds an analysis record for filename.
func (a *Analyzer) Analyze(ctx context.Context, filename string) sleeve.Analysis {
	name := strings.ToLower(filename)

	a.mu.Lock()
	analysis, matched := a.fromKeywords(name)
	analysis.Key = keys[a.rng.IntN(len(keys))]
	analysis.Duration = util.FormatDuration((a.rng.IntN(4)+2)*60 + a.rng.IntN(60))
	a.mu.Unlock()

	if !matched {
		if genre, ok := a.enrich(ctx, filename); ok {
			analysis.Genre = []string{genre}
		}
	}

	a.log.Infow("analyzed upload", "filename", filename, "genre", analysis.GenreList(""), "keyword_match", matched)
	return analysis
}

func (a *Analyzer) fromKeywords(name string) (sleeve.Analysis, bool) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return sleeve.Analysis{
					Genre:  append([]string(nil), r.genre...),
					Mood:   r.mood,
					Vibe:   r.vibe,
					Tempo:  r.tempoMin + a.rng.IntN(r.tempoSpan),
					Energy: r.energyMin + a.rng.Float64()*(r.energyMax-r.energyMin),
				}, true
			}
		}
	}

	return sleeve.Analysis{
		Genre:  append([]string(nil), randomGenres[a.rng.IntN(len(randomGenres))]...),
		Mood:   randomMoods[a.rng.IntN(len(randomMoods))],
		Tempo:  70 + a.rng.IntN(80),
		Energy: a.rng.Float64(),
		Vibe:   randomVibes[a.rng.IntN(len(randomVibes))],
	}, false
}

// enrich looks up an "Artist - Title" filename and returns the first genre
// that the palette catalog knows.
func (a *Analyzer) enrich(ctx context.Context, filename string) (string, bool) {
	if a.lookup == nil || a.catalog == nil || ctx.Err() != nil {
		return "", false
	}
	artist, title, ok := splitArtistTitle(filename)
	if !ok {
		return "", false
	}

	genres, err := a.lookup.RecordingGenres(artist, title)
	if err != nil {
		a.log.Warnw("genre lookup failed", "artist", artist, "title", title, "error", err)
		return "", false
	}

	known := a.catalog.Genres()
	for _, g := range genres {
		for _, k := range known {
			if strings.EqualFold(strings.TrimSpace(g), k) {
				return k, true
			}
		}
	}
	return "", false
}

func splitArtistTitle(filename string) (string, string, bool) {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, "_", " ")
	artist, title, ok := strings.Cut(base, " - ")
	if !ok {
		return "", "", false
	}
	artist, title = strings.TrimSpace(artist), strings.TrimSpace(title)
	return artist, title, artist != "" && title != ""
}
