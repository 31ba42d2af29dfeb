package cover

import (
	"errors"
	"strings"
	"testing"

	"github.com/mager/sleeve/sleeve"
)

func TestExport(t *testing.T) {
	svg := Render(Minimalist, testPalette, sleeve.Analysis{}, nil)

	out, err := Export(svg, 0)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got := string(out)
	if !strings.HasPrefix(got, `<svg viewBox="0 0 400 400" xmlns="http://www.w3.org/2000/svg" width="1400" height="1400">`) {
		t.Errorf("Export() root = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.Contains(got, `<circle cx="200" cy="200" r="80"`) {
		t.Error("Export() dropped the body")
	}
}

func TestExportReplacesSize(t *testing.T) {
	out, err := Export(`<svg width="10" height="10" viewBox="0 0 400 400"><rect/></svg>`, 800)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	got := string(out)
	if strings.Count(got, "width=") != 1 || !strings.Contains(got, `width="800" height="800"`) {
		t.Errorf("Export() = %q", got)
	}
}

func TestExportRejectsNonSVG(t *testing.T) {
	for _, in := range []string{"", "<html></html>", "<svg"} {
		if _, err := Export(in, 0); !errors.Is(err, ErrNotSVG) {
			t.Errorf("Export(%q) error = %v, want ErrNotSVG", in, err)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		base, style, ext string
		want             string
	}{
		{"Night Drive.mp3", "Minimalist Jazz", "png", "night-drive-minimalist-jazz.png"},
		{"", "Typography R&B", ".SVG", "album-cover-typography-r-b.svg"},
		{"../../etc/passwd", "", "", "etc-passwd.svg"},
	}
	for _, tt := range tests {
		if got := Filename(tt.base, tt.style, tt.ext); got != tt.want {
			t.Errorf("Filename(%q, %q, %q) = %q, want %q", tt.base, tt.style, tt.ext, got, tt.want)
		}
	}
}
