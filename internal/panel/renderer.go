package panel

import (
	"fmt"
	"strings"

	"github.com/iver-m/waytour/internal/content"
	"github.com/iver-m/waytour/internal/geom"
	"github.com/iver-m/waytour/internal/markup"
)

// AnchorResolver looks up a scene anchor's world position for the current
// frame. It returns false when the anchor cannot be resolved; the caller
// falls back to the panel's static target. Supplied by the host.
type AnchorResolver func(anchorID string, out *geom.Vec3) bool

// Visual emphasis targets and the exponential blend applied per Update call.
const (
	activeOpacity   = 1.0
	inactiveOpacity = 0.35
	activeScale     = 1.0
	inactiveScale   = 0.85
	blendFactor     = 0.25
)

// managedPanel owns the raster resource for one registered panel. The handle
// is released only on replacement or disposal, never implicitly.
type managedPanel struct {
	id       string
	sheet    *markup.Sheet
	handle   Handle
	fallback geom.Vec3
	anchorID string
	active   bool
	position geom.Vec3
	opacity  float64
	scale    float64
}

// View is a per-frame snapshot of one managed panel, handed to the host for
// drawing.
type View struct {
	ID       string
	Handle   Handle
	Position geom.Vec3
	Opacity  float64
	Scale    float64
	Width    int
	Height   int
	Active   bool
}

// Renderer maintains the panel registry: layout, rasterization, resource
// ownership, placement, and active-state easing. Not safe for concurrent
// use; drive it from the frame loop.
type Renderer struct {
	backend      Backend
	resolve      AnchorResolver
	fonts        *FontSet
	contentWidth int
	panels       map[string]*managedPanel
}

// NewRenderer creates a renderer uploading through backend and resolving
// anchors through resolve (which may be nil when the scene has no anchors).
func NewRenderer(backend Backend, resolve AnchorResolver, fonts *FontSet, contentWidth int) *Renderer {
	return &Renderer{
		backend:      backend,
		resolve:      resolve,
		fonts:        fonts,
		contentWidth: contentWidth,
		panels:       make(map[string]*managedPanel),
	}
}

// RegisterPage lays out, rasterizes, and uploads a panel. Panels whose
// content trims to empty are ignored. Registering an id that already exists
// replaces the panel and releases the previous raster resource first.
func (r *Renderer) RegisterPage(p content.Panel) error {
	if strings.TrimSpace(p.Content) == "" {
		return nil
	}

	blocks, err := markup.ParseBlocks(p.Content)
	if err != nil {
		return fmt.Errorf("panel %s: parse markup: %w", p.ID, err)
	}
	sheet := markup.Layout(p.Title, blocks, r.fonts.Metrics(), r.contentWidth)

	handle, err := r.backend.Upload(Rasterize(sheet, r.fonts))
	if err != nil {
		return fmt.Errorf("panel %s: upload raster: %w", p.ID, err)
	}

	mp := &managedPanel{
		id:       p.ID,
		sheet:    sheet,
		handle:   handle,
		fallback: p.FallbackTarget,
		anchorID: p.AnchorID,
		position: p.FallbackTarget,
		opacity:  inactiveOpacity,
		scale:    inactiveScale,
	}

	if old, ok := r.panels[p.ID]; ok {
		r.backend.Release(old.handle)
		mp.active = old.active
		mp.opacity = old.opacity
		mp.scale = old.scale
		mp.position = old.position
	}
	r.panels[p.ID] = mp
	return nil
}

// SetActivePage marks exactly the panel with the given id active and all
// others inactive. The empty id clears every panel.
func (r *Renderer) SetActivePage(id string) {
	for _, p := range r.panels {
		p.active = id != "" && p.id == id
	}
}

// Update resolves each panel's placement for this frame and eases its visual
// emphasis toward the active or inactive targets. Placement prefers the
// anchor resolver; an unresolved anchor falls back to the static target.
func (r *Renderer) Update() {
	for _, p := range r.panels {
		p.position = p.fallback
		if p.anchorID != "" && r.resolve != nil {
			var anchored geom.Vec3
			if r.resolve(p.anchorID, &anchored) {
				p.position = anchored
			}
		}

		opTarget, scTarget := inactiveOpacity, inactiveScale
		if p.active {
			opTarget, scTarget = activeOpacity, activeScale
		}
		p.opacity += (opTarget - p.opacity) * blendFactor
		p.scale += (scTarget - p.scale) * blendFactor
	}
}

// Each calls fn with a snapshot of every managed panel. Iteration order is
// unspecified.
func (r *Renderer) Each(fn func(View)) {
	for _, p := range r.panels {
		fn(View{
			ID:       p.id,
			Handle:   p.handle,
			Position: p.position,
			Opacity:  p.opacity,
			Scale:    p.scale,
			Width:    p.sheet.Width,
			Height:   p.sheet.Height,
			Active:   p.active,
		})
	}
}

// Len returns the number of managed panels.
func (r *Renderer) Len() int { return len(r.panels) }

// Dispose releases every raster resource and clears the registry. Safe to
// call more than once.
func (r *Renderer) Dispose() {
	for _, p := range r.panels {
		r.backend.Release(p.handle)
	}
	r.panels = make(map[string]*managedPanel)
}
