// Package gui hosts the tour in a raylib window: it owns the frame loop,
// wires input to the choreographer, and draws the scene, panels, and HUD.
package gui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/iver-m/waytour/internal/choreo"
	"github.com/iver-m/waytour/internal/config"
	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/panel"
)

// Theme colors (monochrome, dark).
var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colAccent  = rl.NewColor(180, 180, 180, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
)

// Billboard sizing: raster pixels per world unit.
const pixelsPerUnit = 64.0

// App owns the window, the camera, and the per-frame tick of choreographer
// and panel renderer. It is the explicit scheduler for both: nothing inside
// the core packages runs on its own.
type App struct {
	cfg      *config.Config
	camera   rl.Camera3D
	scene    *Scene
	hud      *hudOverlay
	ch       *choreo.Choreographer
	renderer *panel.Renderer
}

// NewApp loads the tour from cfg.ContentDir and assembles the host. The
// window must already be initialized: texture upload needs a GPU context.
func NewApp(cfg *config.Config) (*App, error) {
	hud := &hudOverlay{}

	model, err := content.LoadDocuments(os.DirFS(cfg.ContentDir), ".", hud)
	if err != nil {
		return nil, err
	}

	fonts, err := panel.DefaultFonts()
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg: cfg,
		hud: hud,
		camera: rl.NewCamera3D(
			rl.NewVector3(float32(cfg.Camera.X), float32(cfg.Camera.Y), float32(cfg.Camera.Z)),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			float32(cfg.Camera.FOVY),
			rl.CameraPerspective,
		),
		scene: NewScene(model.Waypoints, cfg.Anchors),
	}

	app.renderer = panel.NewRenderer(textureBackend{}, app.scene.Resolve, fonts, cfg.PanelWidth)
	for _, p := range model.Panels {
		if err := app.renderer.RegisterPage(p); err != nil {
			app.renderer.Dispose()
			return nil, err
		}
	}

	hasPanel := make(map[string]bool, len(model.Panels))
	for _, p := range model.Panels {
		hasPanel[p.ID] = true
	}

	app.ch = choreo.New(&tourCamera{cam: &app.camera})
	app.ch.SetDuration(cfg.DurationMs)
	for _, wp := range model.Waypoints {
		wp := wp
		enterHUD := wp.OnEnter
		wp.OnEnter = func() {
			if enterHUD != nil {
				enterHUD()
			}
			if hasPanel[wp.ID] {
				app.renderer.SetActivePage(wp.ID)
			} else {
				app.renderer.SetActivePage("")
			}
		}
		app.ch.Add(wp)
	}

	return app, nil
}

// Run opens the window, plays the tour from its first waypoint, and blocks
// until the window closes.
func Run(cfg *config.Config) error {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "waytour")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	rl.SetExitKey(rl.KeyQ)

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.renderer.Dispose()

	app.ch.GoTo(0)
	app.RunLoop()
	return nil
}

// RunLoop ticks Update then Draw until the window should close.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update handles input then advances the animations. Navigation runs before
// the choreographer tick, so an enter callback's active-panel flip is visible
// no later than this frame's own render.
func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyN), rl.IsKeyPressed(rl.KeySpace):
		a.ch.Next()
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyP):
		a.ch.Prev()
	}
	for key := rl.KeyOne; key <= rl.KeyNine; key++ {
		if rl.IsKeyPressed(key) {
			a.ch.GoTo(int(key - rl.KeyOne))
		}
	}

	deltaMs := float64(rl.GetFrameTime()) * 1000
	a.ch.Update(deltaMs)
	a.renderer.Update()
}

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	rl.BeginMode3D(a.camera)
	a.scene.Draw(a.ch.ActiveIndex())
	a.drawPanels()
	rl.EndMode3D()

	a.hud.Draw()
	a.drawStatus()

	rl.EndDrawing()
}

// drawPanels draws every managed panel as a camera-facing billboard, tinted
// by its eased opacity and sized by its eased scale.
func (a *App) drawPanels() {
	a.renderer.Each(func(v panel.View) {
		tex, ok := v.Handle.(rl.Texture2D)
		if !ok {
			return
		}
		w := float32(v.Width) / pixelsPerUnit * float32(v.Scale)
		h := float32(v.Height) / pixelsPerUnit * float32(v.Scale)
		source := rl.NewRectangle(0, 0, float32(v.Width), float32(v.Height))
		rl.DrawBillboardRec(a.camera, tex, source, toRL(v.Position),
			rl.NewVector2(w, h), rl.ColorAlpha(rl.White, float32(v.Opacity)))
	})
}

func (a *App) drawStatus() {
	if wp, ok := a.ch.Current(); ok {
		status := fmt.Sprintf("%d/%d  %s", a.ch.ActiveIndex()+1, a.ch.Len(), wp.Title)
		rl.DrawText(status, 20, int32(a.cfg.WindowHeight-40), 20, colAccent)
	}
	rl.DrawText("left/right navigate  1-9 jump  q quit", 20, int32(a.cfg.WindowHeight-70), 10, colTextDim)
}
