// Package panel rasterizes tour panels into fixed-width surfaces and keeps
// their world placement and visual emphasis in sync each frame.
package panel

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/iver-m/waytour/internal/markup"
)

// FontSet holds the faces used for each block class. Faces are shared across
// panels; they are measurement state, not per-panel resources.
type FontSet struct {
	Title   font.Face
	Heading font.Face
	List    font.Face
	Body    font.Face
}

// DefaultFonts builds the embedded Go font faces used by the tour. The same
// faces always yield the same metrics, which keeps panel layout reproducible
// across machines.
func DefaultFonts() (*FontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fs := &FontSet{}
	if fs.Title, err = face(bold, 20); err != nil {
		return nil, err
	}
	if fs.Heading, err = face(bold, 16); err != nil {
		return nil, err
	}
	if fs.List, err = face(regular, 13); err != nil {
		return nil, err
	}
	if fs.Body, err = face(regular, 13); err != nil {
		return nil, err
	}
	return fs, nil
}

// Metrics adapts the font set to the layout engine.
func (fs *FontSet) Metrics() markup.Metrics {
	class := func(f font.Face) markup.ClassMetrics {
		return markup.ClassMetrics{
			Measure:    func(s string) int { return font.MeasureString(f, s).Ceil() },
			LineHeight: f.Metrics().Height.Ceil(),
		}
	}
	return markup.Metrics{
		Title:   class(fs.Title),
		Heading: class(fs.Heading),
		List:    class(fs.List),
		Body:    class(fs.Body),
	}
}

func (fs *FontSet) face(k markup.Kind) font.Face {
	switch k {
	case markup.Title:
		return fs.Title
	case markup.Heading:
		return fs.Heading
	case markup.ListItem:
		return fs.List
	default:
		return fs.Body
	}
}
