package canvas

import (
	"image"
	"math"
)

const (
	MinZoom = 0.1
	MaxZoom = 1.0

	zoomOutStep = 1.1
	zoomInStep  = 0.9
)

// Viewport is the visible crop of the buffer.
type Viewport struct {
	X, Y, W, H int
}

// Rect returns the viewport as an image rectangle.
func (v Viewport) Rect() image.Rectangle {
	return image.Rect(v.X, v.Y, v.X+v.W, v.Y+v.H)
}

// Contains reports whether the viewport lies within a size×size buffer.
func (v Viewport) Contains(size int) bool {
	return v.X >= 0 && v.Y >= 0 && v.W > 0 && v.H > 0 && v.X+v.W <= size && v.Y+v.H <= size
}

// view owns the viewport and the zoom level that produced it.
type view struct {
	size int
	zoom float64
	vp   Viewport
}

func newView(size int) view {
	return view{size: size, zoom: MaxZoom, vp: Viewport{W: size, H: size}}
}

func clampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z) || z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// zoomAt scales the viewport by delta notches around a buffer point.
// Positive deltas zoom in, negative deltas zoom out.
func (v *view) zoomAt(delta int, anchor image.Point) {
	if delta == 0 {
		return
	}
	z := v.zoom
	if delta > 0 {
		z *= math.Pow(zoomInStep, float64(delta))
	} else {
		z *= math.Pow(zoomOutStep, float64(-delta))
	}
	v.setZoom(z, anchor)
}

func (v *view) setZoom(z float64, anchor image.Point) {
	v.zoom = clampZoom(z)
	relX := float64(anchor.X-v.vp.X) / float64(v.vp.W)
	relY := float64(anchor.Y-v.vp.Y) / float64(v.vp.H)
	side := int(math.Round(float64(v.size) * v.zoom))
	if side < 1 {
		side = 1
	}
	v.vp.W, v.vp.H = side, side
	v.vp.X = anchor.X - int(relX*float64(side))
	v.vp.Y = anchor.Y - int(relY*float64(side))
	v.clamp()
}

// pan shifts the viewport by a window delta scaled by size/viewport width.
func (v *view) pan(dx, dy int) {
	scale := float64(v.size) / float64(v.vp.W)
	v.vp.X += int(float64(dx) * scale)
	v.vp.Y += int(float64(dy) * scale)
	v.clamp()
}

func (v *view) clamp() {
	v.vp.W = clampInt(v.vp.W, 1, v.size)
	v.vp.H = clampInt(v.vp.H, 1, v.size)
	v.vp.X = clampInt(v.vp.X, 0, v.size-v.vp.W)
	v.vp.Y = clampInt(v.vp.Y, 0, v.size-v.vp.H)
}
