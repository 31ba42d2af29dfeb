package sleeve

import "strings"

// Analysis is the summary of an uploaded track that drives cover, music and
// video generation. It is produced once per upload and never mutated.
type Analysis struct {
	// Genre is an ordered list of genre labels. The first entry is the primary genre.
	// Example: ["Electronic", "Dance"]
	Genre []string `json:"genre,omitempty"`
	// Mood is a free text label.
	// Example: "Energetic"
	Mood string `json:"mood,omitempty"`
	// Tempo is the estimated tempo in beats per minute. Roughly 40 - 220, not validated.
	// Example: 128
	Tempo int `json:"tempo,omitempty"`
	// Energy is a perceptual intensity measure.
	// Range: 0 - 1
	// Example: 0.85
	Energy float64 `json:"energy,omitempty"`
	// Vibe is a display string.
	// Example: "Pulsing & Electric"
	Vibe string `json:"vibe,omitempty"`
	// Key is a display string.
	// Example: "F# minor"
	Key string `json:"key,omitempty"`
	// Duration is a display string formatted as m:ss.
	// Example: "3:42"
	Duration string `json:"duration,omitempty"`
}

// PrimaryGenre returns the first non-empty genre label.
func (a Analysis) PrimaryGenre() (string, bool) {
	if len(a.Genre) == 0 {
		return "", false
	}
	g := strings.TrimSpace(a.Genre[0])
	return g, g != ""
}

// GenreList joins all genres with a comma, or returns fallback when there are none.
func (a Analysis) GenreList(fallback string) string {
	var parts []string
	for _, g := range a.Genre {
		if g = strings.TrimSpace(g); g != "" {
			parts = append(parts, g)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// Track is a generated piece of music.
type Track struct {
	// AudioURL is a base64 data URL of the encoded audio.
	AudioURL string `json:"audioUrl"`
	Filename string `json:"filename"`
	Prompt   string `json:"prompt"`
	// Duration is the requested length in milliseconds.
	Duration int `json:"duration"`
}

// Video is a generated short video.
type Video struct {
	VideoURL  string `json:"videoUrl"`
	RequestID string `json:"requestId"`
}
