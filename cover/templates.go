package cover

import (
	"fmt"
	"html"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/mager/sleeve/palette"
	"github.com/mager/sleeve/sleeve"
)

// Canvas is the logical square size every template is drawn on.
const Canvas = 400

const (
	fallbackMood  = "MUSIC"
	fallbackGenre = "ALBUM"

	abstractShapes = 8
)

func openSVG(b *strings.Builder) {
	fmt.Fprintf(b, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`+"\n", Canvas, Canvas)
}

func closeSVG(b *strings.Builder) {
	b.WriteString("</svg>\n")
}

func stop(b *strings.Builder, offset, color, opacity string) {
	fmt.Fprintf(b, `      <stop offset="%s" style="stop-color:%s;stop-opacity:%s"/>`+"\n", offset, color, opacity)
}

func background(b *strings.Builder, fill string) {
	fmt.Fprintf(b, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", Canvas, Canvas, fill)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func renderMinimalist(p palette.Palette, _ sleeve.Analysis, _ *rand.Rand) string {
	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="grad1" x1="0%" y1="0%" x2="100%" y2="100%">` + "\n")
	stop(&b, "0%", p.Primary(), "1")
	stop(&b, "100%", p.Secondary(), "1")
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	background(&b, "url(#grad1)")
	fmt.Fprintf(&b, `  <circle cx="200" cy="200" r="80" fill="%s" opacity="0.8"/>`+"\n", p.Accent())
	fmt.Fprintf(&b, `  <rect x="160" y="160" width="80" height="80" fill="%s" opacity="0.6"/>`+"\n", p.Primary())
	closeSVG(&b)
	return b.String()
}

func renderVintage(p palette.Palette, _ sleeve.Analysis, _ *rand.Rand) string {
	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <radialGradient id="vintageGrad" cx="50%" cy="50%" r="50%">` + "\n")
	stop(&b, "0%", p.Secondary(), "1")
	stop(&b, "100%", p.Primary(), "1")
	b.WriteString("    </radialGradient>\n")
	b.WriteString(`    <filter id="vintage">` + "\n")
	b.WriteString(`      <feGaussianBlur in="SourceGraphic" stdDeviation="1"/>` + "\n")
	b.WriteString("    </filter>\n")
	b.WriteString("  </defs>\n")
	background(&b, "url(#vintageGrad)")
	fmt.Fprintf(&b, `  <circle cx="200" cy="150" r="60" fill="%s" opacity="0.7" filter="url(#vintage)"/>`+"\n", p.Accent())
	fmt.Fprintf(&b, `  <rect x="120" y="250" width="160" height="40" fill="%s" opacity="0.8"/>`+"\n", p.Primary())
	fmt.Fprintf(&b, `  <text x="200" y="280" text-anchor="middle" fill="%s" font-family="serif" font-size="24" font-weight="bold">ALBUM</text>`+"\n", p.Accent())
	closeSVG(&b)
	return b.String()
}

func renderAbstract(p palette.Palette, _ sleeve.Analysis, rng *rand.Rand) string {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="abstractGrad" x1="0%" y1="0%" x2="100%" y2="100%">` + "\n")
	stop(&b, "0%", p.Primary(), "0.8")
	stop(&b, "50%", p.Secondary(), "0.6")
	stop(&b, "100%", p.Accent(), "0.8")
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	background(&b, "url(#abstractGrad)")

	for i := 0; i < abstractShapes; i++ {
		x := rng.Float64() * Canvas
		y := rng.Float64() * Canvas
		size := 30 + rng.Float64()*50
		rotation := rng.Float64() * 360
		color := p[rng.IntN(len(p))]

		fmt.Fprintf(&b, `  <ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" opacity="0.7" transform="rotate(%s %s %s)"/>`+"\n",
			num(x), num(y), num(size), num(size*0.7), color, num(rotation), num(x), num(y))
	}

	closeSVG(&b)
	return b.String()
}

func renderGeometric(p palette.Palette, _ sleeve.Analysis, _ *rand.Rand) string {
	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <pattern id="triangles" patternUnits="userSpaceOnUse" width="60" height="60">` + "\n")
	fmt.Fprintf(&b, `      <polygon points="30,5 55,50 5,50" fill="%s" opacity="0.3"/>`+"\n", p.Secondary())
	b.WriteString("    </pattern>\n")
	b.WriteString("  </defs>\n")
	background(&b, p.Primary())
	background(&b, "url(#triangles)")
	fmt.Fprintf(&b, `  <polygon points="200,50 350,350 50,350" fill="%s" opacity="0.8"/>`+"\n", p.Accent())
	fmt.Fprintf(&b, `  <circle cx="200" cy="200" r="40" fill="%s"/>`+"\n", p.Secondary())
	closeSVG(&b)
	return b.String()
}

func renderAtmospheric(p palette.Palette, _ sleeve.Analysis, _ *rand.Rand) string {
	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="photoGrad" x1="0%" y1="0%" x2="0%" y2="100%">` + "\n")
	stop(&b, "0%", p.Primary(), "1")
	stop(&b, "50%", p.Secondary(), "0.8")
	stop(&b, "100%", p.Accent(), "1")
	b.WriteString("    </linearGradient>\n")
	b.WriteString(`    <filter id="blur">` + "\n")
	b.WriteString(`      <feGaussianBlur in="SourceGraphic" stdDeviation="3"/>` + "\n")
	b.WriteString("    </filter>\n")
	b.WriteString("  </defs>\n")
	background(&b, "url(#photoGrad)")
	fmt.Fprintf(&b, `  <circle cx="120" cy="120" r="80" fill="%s" opacity="0.4" filter="url(#blur)"/>`+"\n", p.Accent())
	fmt.Fprintf(&b, `  <circle cx="280" cy="280" r="60" fill="%s" opacity="0.5" filter="url(#blur)"/>`+"\n", p.Secondary())
	fmt.Fprintf(&b, `  <rect x="0" y="320" width="400" height="80" fill="%s" opacity="0.7"/>`+"\n", p.Primary())
	closeSVG(&b)
	return b.String()
}

func renderTypography(p palette.Palette, a sleeve.Analysis, _ *rand.Rand) string {
	mood := strings.ToUpper(strings.TrimSpace(a.Mood))
	if mood == "" {
		mood = fallbackMood
	}
	genre, ok := a.PrimaryGenre()
	if ok {
		genre = strings.ToUpper(genre)
	} else {
		genre = fallbackGenre
	}

	var b strings.Builder
	openSVG(&b)
	b.WriteString("  <defs>\n")
	b.WriteString(`    <linearGradient id="textGrad" x1="0%" y1="0%" x2="100%" y2="0%">` + "\n")
	stop(&b, "0%", p.Primary(), "1")
	stop(&b, "100%", p.Secondary(), "1")
	b.WriteString("    </linearGradient>\n")
	b.WriteString("  </defs>\n")
	background(&b, p.Accent())
	fmt.Fprintf(&b, `  <text x="200" y="150" text-anchor="middle" fill="url(#textGrad)" font-family="Arial Black, sans-serif" font-size="48" font-weight="900">%s</text>`+"\n", html.EscapeString(mood))
	fmt.Fprintf(&b, `  <text x="200" y="220" text-anchor="middle" fill="%s" font-family="Arial, sans-serif" font-size="24" font-weight="normal">%s</text>`+"\n", p.Primary(), html.EscapeString(genre))
	fmt.Fprintf(&b, `  <line x1="50" y1="180" x2="350" y2="180" stroke="%s" stroke-width="4"/>`+"\n", p.Secondary())
	closeSVG(&b)
	return b.String()
}
