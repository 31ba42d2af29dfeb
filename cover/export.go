package cover

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ExportSize is the pixel size covers are exported at.
const ExportSize = 1400

// ErrNotSVG is returned by Export for markup without an <svg> root.
var ErrNotSVG = errors.New("markup is not an svg document")

// Export returns markup sized to px by px pixels. The viewBox is kept so the
// design scales from the logical canvas.
func Export(markup string, px int) ([]byte, error) {
	if px <= 0 {
		px = ExportSize
	}

	trimmed := strings.TrimSpace(markup)
	if !strings.HasPrefix(trimmed, "<svg") {
		return nil, ErrNotSVG
	}

	end := strings.IndexByte(trimmed, '>')
	if end < 0 {
		return nil, ErrNotSVG
	}
	root := sizeAttr.ReplaceAllString(trimmed[:end], "")
	root = strings.TrimSuffix(strings.TrimRight(root, " "), "/")
	sized := fmt.Sprintf(`%s width="%d" height="%d"`, root, px, px)

	return []byte(sized + trimmed[end:] + "\n"), nil
}

var (
	sizeAttr = regexp.MustCompile(`\s(width|height)="[^"]*"`)
	nonSlug  = regexp.MustCompile(`[^a-z0-9]+`)
)

// Filename builds a download name such as "night-drive-minimalist-jazz.svg".
// An empty base becomes "album-cover"; any extension on base is dropped.
func Filename(base, style, ext string) string {
	base = strings.TrimSuffix(base, path.Ext(base))
	base = slug(base)
	if base == "" {
		base = "album-cover"
	}

	name := base
	if s := slug(style); s != "" {
		name += "-" + s
	}
	if ext = strings.TrimPrefix(strings.ToLower(ext), "."); ext == "" {
		ext = "svg"
	}
	return name + "." + ext
}

func slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
