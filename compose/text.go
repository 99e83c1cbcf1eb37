package compose

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// defaultFontSize applies to text nodes without a size.
const defaultFontSize = 16

var (
	fontsOnce sync.Once
	fonts     [4]*opentype.Font
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("compose: parse font %d: %w", i, err)
				return
			}
			fonts[i] = f
		}
	})
	return fontsErr
}

func (f Font) style() int {
	i := 0
	if f.Bold {
		i++
	}
	if f.Italic {
		i += 2
	}
	return i
}

func (f Font) size() float64 {
	if f.Size <= 0 {
		return defaultFontSize
	}
	return f.Size
}

// NewFace opens the Go font matching f at scale output pixels per logical
// pixel. Faces are unhinted, so advances scale linearly and text wrapped on
// the logical canvas keeps its line breaks at any scale.
func NewFace(f Font, scale float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(fonts[f.style()], &opentype.FaceOptions{
		Size:    f.size() * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("compose: new face: %w", err)
	}
	return face, nil
}

// Wrap breaks s at spaces into lines no wider than width pixels. A single
// word wider than width gets a line of its own.
func Wrap(face font.Face, s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if font.MeasureString(face, line+" "+w).Ceil() <= width {
			line += " " + w
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// layoutText wraps s for a box of the given logical width and returns the
// lines with the logical line height.
func layoutText(s string, f Font, width float64) ([]string, float64) {
	face, err := NewFace(f, 1)
	if err != nil {
		// The fonts are compiled in; fall back to one line per text.
		return []string{s}, math.Ceil(f.size() * 1.2)
	}
	defer face.Close()
	return Wrap(face, s, int(math.Floor(width))), float64(face.Metrics().Height.Ceil())
}

// textHeight is the box height fitting lines of lineHeight plus vertical
// padding, never below floor.
func textHeight(lines []string, lineHeight, padY, floor float64) float64 {
	return math.Max(floor, float64(len(lines))*lineHeight+2*padY)
}
