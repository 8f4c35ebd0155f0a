package panel

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/iver-m/waytour/internal/markup"
)

// Monochrome palette, dark backdrop with graded text emphasis.
var (
	colBackdrop = color.RGBA{14, 14, 16, 238}
	colTitle    = color.RGBA{255, 255, 255, 255}
	colHeading  = color.RGBA{210, 210, 210, 255}
	colText     = color.RGBA{165, 165, 165, 255}
)

func textColor(k markup.Kind) color.RGBA {
	switch k {
	case markup.Title:
		return colTitle
	case markup.Heading:
		return colHeading
	default:
		return colText
	}
}

// Rasterize draws a measured sheet into a fresh RGBA image: a rounded
// rectangle backdrop with every placed line drawn at its baseline.
func Rasterize(sheet *markup.Sheet, fonts *FontSet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sheet.Width, sheet.Height))
	fillRoundedRect(img, sheet.Width, sheet.Height, markup.CornerRadius, colBackdrop)

	for _, line := range sheet.Lines {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(textColor(line.Kind)),
			Face: fonts.face(line.Kind),
			Dot:  fixed.P(markup.Padding, line.Baseline),
		}
		d.DrawString(line.Text)
	}
	return img
}

// fillRoundedRect fills the whole image with c, clipping the four corners to
// a quarter circle of the given radius.
func fillRoundedRect(img *image.RGBA, w, h, r int, c color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRounded(x, y, w, h, r) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideRounded(x, y, w, h, r int) bool {
	var cx, cy int
	switch {
	case x < r && y < r:
		cx, cy = r, r
	case x >= w-r && y < r:
		cx, cy = w-r-1, r
	case x < r && y >= h-r:
		cx, cy = r, h-r-1
	case x >= w-r && y >= h-r:
		cx, cy = w-r-1, h-r-1
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
