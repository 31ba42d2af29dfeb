package prompt

import (
	"fmt"

	"github.com/mager/sleeve/sleeve"
	"github.com/mager/sleeve/util"
)

// CoverStyle is a named cover prompt that is not tied to a template kind.
type CoverStyle struct {
	Name        string
	Description string
	Prompt      string
}

// OrchestralAnalysis is the fixed analysis used for the orchestral showcase.
func OrchestralAnalysis(lengthMs int) sleeve.Analysis {
	return sleeve.Analysis{
		Genre:    []string{"Classical", "Orchestral"},
		Mood:     "Epic",
		Vibe:     "Grand & Majestic",
		Energy:   0.8,
		Tempo:    100,
		Key:      "D major",
		Duration: util.FormatDuration(lengthMs / 1000),
	}
}

// Orchestral builds the music prompt for the orchestral showcase.
func Orchestral(lengthMs int) string {
	return fmt.Sprintf(`Create a grand, epic orchestral composition lasting %d seconds.

This should be a majestic symphonic piece with:
- Full orchestra including strings, brass, woodwinds, and timpani
- Dramatic crescendos and dynamic builds
- Rich harmonies in D major
- Tempo around 100 BPM with epic, cinematic feel
- Powerful brass fanfares and soaring string melodies
- Timpani rolls and dramatic percussion
- Classical orchestral arrangement with modern cinematic production
- Inspirational and uplifting themes
- Professional symphony orchestra quality

The piece should evoke feelings of triumph, grandeur, and epic adventure - perfect for a movie soundtrack or classical concert hall.`, (lengthMs+500)/1000)
}

// OrchestralCovers are the cover styles generated alongside orchestral music.
var OrchestralCovers = []CoverStyle{
	{
		Name:        "Classical Elegance",
		Description: "Elegant classical design with sophisticated orchestral elements",
		Prompt:      "Create a classical, elegant album cover for orchestral music. Use sophisticated gold and deep blue tones, featuring a concert hall interior, musical instruments like violins and cellos, elegant typography space, and refined classical aesthetics. Square format, professional and timeless.",
	},
	{
		Name:        "Epic Cinematic",
		Description: "Dramatic cinematic design with epic orchestral grandeur",
		Prompt:      "Create an epic, cinematic album cover for orchestral music. Use dramatic lighting, conductor silhouette, grand symphony hall, powerful brass instruments, dynamic composition with rich burgundy and gold colors. Epic and grandiose feel, movie soundtrack aesthetic.",
	},
	{
		Name:        "Minimalist Orchestra",
		Description: "Modern minimalist take on classical orchestral design",
		Prompt:      "Create a minimalist, modern album cover for orchestral music. Use clean lines, elegant typography, subtle musical note elements, refined color palette of cream, gold, and navy. Simple but sophisticated, contemporary classical aesthetic.",
	},
}
