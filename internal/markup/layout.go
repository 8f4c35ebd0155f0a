package markup

import "strings"

// Measurer returns the advance width of s in pixels under some font.
type Measurer func(s string) int

// ClassMetrics carries the font metrics the layout needs for one block class.
type ClassMetrics struct {
	Measure    Measurer
	LineHeight int
}

// Metrics supplies per-class font metrics. Layout output is fully determined
// by its input text and these metrics, so identical inputs reproduce
// identical line breaks and dimensions.
type Metrics struct {
	Title   ClassMetrics
	Heading ClassMetrics
	List    ClassMetrics
	Body    ClassMetrics
}

func (m Metrics) class(k Kind) ClassMetrics {
	switch k {
	case Title:
		return m.Title
	case Heading:
		return m.Heading
	case ListItem:
		return m.List
	default:
		return m.Body
	}
}

// Layout constants, in pixels.
const (
	Padding      = 14
	MinHeight    = 64
	CornerRadius = 10
	bullet       = "• "
)

// PlacedLine is one rasterizable line with its baseline position.
type PlacedLine struct {
	Text     string
	Kind     Kind
	Baseline int // y of the text baseline within the sheet
}

// Sheet is a measured panel layout: fixed width, content-derived height.
type Sheet struct {
	Lines  []PlacedLine
	Width  int
	Height int
}

// WrapText greedily wraps s into lines whose measured width stays at or
// under max. Breaks happen between words only; a single word wider than max
// is kept alone on its own line, never hyphenated.
func WrapText(s string, max int, measure Measurer) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= max {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}

// Layout arranges a title line plus the classified blocks into a sheet of
// fixed width contentWidth plus padding. Consecutive blocks are separated by
// a half-line gap; the sheet height is padding plus the sum of line heights,
// floored at MinHeight.
func Layout(title string, blocks []Block, m Metrics, contentWidth int) *Sheet {
	sheet := &Sheet{Width: contentWidth + 2*Padding}

	y := Padding
	place := func(kind Kind, text string) {
		cm := m.class(kind)
		for _, line := range WrapText(text, contentWidth, cm.Measure) {
			y += cm.LineHeight
			sheet.Lines = append(sheet.Lines, PlacedLine{Text: line, Kind: kind, Baseline: y})
		}
	}

	if strings.TrimSpace(title) != "" {
		place(Title, title)
		y += m.Title.LineHeight / 2
	}

	for i, b := range blocks {
		if i > 0 {
			y += m.class(b.Kind).LineHeight / 2
		}
		text := b.Text
		if b.Kind == ListItem {
			text = bullet + text
		}
		place(b.Kind, text)
	}

	sheet.Height = y + Padding
	if sheet.Height < MinHeight {
		sheet.Height = MinHeight
	}
	return sheet
}
