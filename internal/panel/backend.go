package panel

import "image"

// Handle identifies one uploaded raster resource. Its concrete type belongs
// to the Backend that produced it.
type Handle any

// Backend uploads rasters to wherever panels are ultimately drawn from: a
// GPU texture in the GUI, plain memory in tests. Every Handle returned by
// Upload must be passed to Release exactly once.
type Backend interface {
	Upload(img *image.RGBA) (Handle, error)
	Release(h Handle)
}
