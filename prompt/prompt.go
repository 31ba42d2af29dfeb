// Package prompt builds the text prompts sent to the image, music and video
// providers.
package prompt

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mager/sleeve/sleeve"
)

var coverStyles = map[string]string{
	"minimalist":  "Use clean geometric shapes, minimal color palette, lots of negative space, and modern typography. Focus on simplicity and elegance with subtle gradients or solid colors.",
	"vintage":     "Create a retro aesthetic with warm, muted colors, vintage typography, textured backgrounds, and classic album design elements from the 60s-80s era. Include subtle aging effects and nostalgic elements.",
	"abstract":    "Design with flowing organic shapes, dynamic composition, artistic brush strokes, and creative color blending. Use abstract forms that evoke the music's emotional essence through non-representational art.",
	"geometric":   "Feature sharp angles, structured patterns, mathematical precision, bold geometric forms, and symmetrical designs. Use strong contrast and architectural elements with clean lines.",
	"atmospheric": "Create dreamy, ethereal visuals with soft gradients, blurred elements, atmospheric depth, and ambient lighting. Include particle effects or cosmic elements that match the music's mood.",
	"typography":  "Focus on bold, striking typography as the main design element. Use creative text layouts, interesting fonts, and typographic hierarchy. The text should be the hero element with supporting visual elements.",
}

var musicGenres = map[string]string{
	"electronic": "Use driving synth arpeggios, punchy drums, electronic textures, and digital effects. Focus on crisp, modern production with layered synthesizers.",
	"rock":       "Feature electric guitars, driving drums, bass guitar, and rock instrumentation. Use power chords, guitar solos, and strong rhythmic elements.",
	"pop":        "Create catchy melodies, accessible rhythms, polished production, and mainstream appeal. Use modern pop instrumentation and hooks.",
	"hip-hop":    "Include rhythmic beats, bass-heavy production, urban textures, and contemporary hip-hop elements. Focus on groove and rhythm.",
	"jazz":       "Incorporate jazz harmonies, improvised elements, swing rhythms, brass instruments, and sophisticated chord progressions.",
	"classical":  "Use orchestral instruments, complex arrangements, classical harmonies, and traditional compositional techniques.",
	"ambient":    "Create atmospheric textures, ethereal soundscapes, gentle rhythms, and spacious production with reverb and delay effects.",
	"folk":       "Feature acoustic instruments, natural textures, organic rhythms, and traditional folk elements with warm, intimate production.",
	"r_b":        "Include smooth grooves, soulful melodies, R&B rhythms, and contemporary urban production with rich harmonies.",
	"dance":      "Build on four-on-the-floor kicks, bright synth stabs, rolling basslines, and club-ready energy.",
}

var musicMoods = map[string]string{
	"energetic":   "Make it uplifting, driving, and full of momentum with dynamic builds and exciting transitions.",
	"chill":       "Keep it relaxed, smooth, and laid-back with gentle rhythms and soothing textures.",
	"dark":        "Add darker tones, minor keys, mysterious elements, and brooding atmosphere.",
	"uplifting":   "Include bright melodies, major keys, positive energy, and inspiring progressions.",
	"intense":     "Build tension, use aggressive rhythms, powerful dynamics, and commanding presence.",
	"peaceful":    "Create calm, serene, gentle textures with soft dynamics and tranquil atmosphere.",
	"dreamy":      "Add ethereal elements, floating melodies, ambient textures, and dreamy soundscapes.",
	"romantic":    "Include warm tones, intimate melodies, soft rhythms, and emotional depth.",
	"melancholic": "Use minor keys, reflective melodies, gentle sadness, and contemplative atmosphere.",
}

func or(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

func percent(energy, fallback float64) int {
	if energy == 0 {
		energy = fallback
	}
	return int(math.Round(energy * 100))
}

// Cover builds an album cover prompt for a style name such as "Minimalist".
func Cover(style string, a sleeve.Analysis) string {
	base := fmt.Sprintf("Create a high-quality, professional album cover in %s style for %s music. "+
		"The mood is %s with a %s vibe and energy level of %d%%. "+
		"The cover should be square format (1:1 aspect ratio), suitable for music streaming platforms.",
		strings.ToLower(style),
		a.GenreList("Unknown"),
		or(a.Mood, "neutral"),
		or(a.Vibe, "modern"),
		percent(a.Energy, 0.5),
	)

	key := strings.ToLower(strings.TrimSpace(style))
	if key == "photo" {
		key = "atmospheric"
	}
	if extra, ok := coverStyles[key]; ok {
		return base + " " + extra
	}
	return base
}

var genreKeyChars = regexp.MustCompile(`[&\s-]`)

// genreKey normalises a genre list into a musicGenres key.
func genreKey(genre string) string {
	key := genreKeyChars.ReplaceAllString(strings.ToLower(genre), "_")
	return strings.Replace(key, "hip_hop", "hip-hop", 1)
}

// Music builds a text-to-music prompt for a track of lengthMs milliseconds.
func Music(a sleeve.Analysis, lengthMs int) string {
	genre := strings.ToLower(a.GenreList("Electronic"))
	mood := or(a.Mood, "neutral")
	tempo := a.Tempo
	if tempo == 0 {
		tempo = 120
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-second %s track with %s mood and %s vibe. ",
		int(math.Round(float64(lengthMs)/1000)), genre, strings.ToLower(mood), strings.ToLower(or(a.Vibe, "modern")))
	fmt.Fprintf(&b, "The tempo should be around %d BPM with %d%% energy level. ", tempo, percent(a.Energy, 0.5))

	primary, _ := a.PrimaryGenre()
	style, ok := musicGenres[genreKey(genre)]
	if !ok {
		style, ok = musicGenres[genreKey(primary)]
	}
	if !ok {
		style = musicGenres["electronic"]
	}
	b.WriteString(style)

	moodStyle, ok := musicMoods[strings.ToLower(mood)]
	if !ok {
		moodStyle = musicMoods["energetic"]
	}
	b.WriteString(" " + moodStyle)

	return b.String()
}

// Edit builds an instruction for editing an existing cover image.
func Edit(instruction string, a sleeve.Analysis) string {
	return fmt.Sprintf("%s. Keep the album cover aesthetic and maintain high quality. The music is %s with %s mood and %s vibe.",
		strings.TrimRight(strings.TrimSpace(instruction), "."),
		a.GenreList("Unknown"),
		or(a.Mood, "neutral"),
		or(a.Vibe, "modern"),
	)
}

// Video adds the vertical framing requirement to a video prompt.
func Video(p string) string {
	return strings.TrimSpace(p) + " Ensure the video maintains a vertical 9:16 aspect ratio suitable for mobile viewing."
}
