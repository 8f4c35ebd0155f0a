package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/iver-m/waytour/internal/markup"
)

// hudOverlay is the HUD sink bound into waypoint enter callbacks. Setting
// empty markup hides the overlay.
type hudOverlay struct {
	lines []string
}

func (h *hudOverlay) Set(source string) {
	h.lines = h.lines[:0]
	if source == "" {
		return
	}
	blocks, err := markup.ParseBlocks(source)
	if err != nil {
		return
	}
	for _, b := range blocks {
		text := b.Text
		if b.Kind == markup.ListItem {
			text = "• " + text
		}
		h.lines = append(h.lines, text)
	}
}

func (h *hudOverlay) Draw() {
	y := int32(20)
	for _, line := range h.lines {
		rl.DrawText(line, 20, y, 20, colText)
		y += 26
	}
}
