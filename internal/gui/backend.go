package gui

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/iver-m/waytour/internal/panel"
)

// textureBackend uploads panel rasters as raylib GPU textures. Handles are
// rl.Texture2D values; the renderer owns their lifetime.
type textureBackend struct{}

func (textureBackend) Upload(img *image.RGBA) (panel.Handle, error) {
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}

func (textureBackend) Release(h panel.Handle) {
	if tex, ok := h.(rl.Texture2D); ok {
		rl.UnloadTexture(tex)
	}
}
