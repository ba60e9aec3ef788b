package canvas

import "image"

// Mapper converts points between window, logical grid and buffer space.
//
// Forward conversions (towards the buffer) floor and inverse conversions
// ceil. With Window and the viewport no smaller than Logical on each axis,
// mapping a logical cell out and back returns the same cell.
type Mapper struct {
	Window  image.Point
	Logical int
	Buffer  int
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// logical is the grid size, treating anything below 1 as a single cell.
func (m Mapper) logical() int {
	return max(m.Logical, 1)
}

func (m Mapper) window() image.Point {
	w := m.Window
	if w.X <= 0 {
		w.X = m.logical()
	}
	if w.Y <= 0 {
		w.Y = m.logical()
	}
	return w
}

// WindowToLogical quantizes a window point onto the logical grid.
func (m Mapper) WindowToLogical(p image.Point) image.Point {
	w, l := m.window(), m.logical()
	return image.Pt(floorDiv(p.X*l, w.X), floorDiv(p.Y*l, w.Y))
}

// LogicalToWindow returns the first window pixel of a logical cell.
func (m Mapper) LogicalToWindow(q image.Point) image.Point {
	w, l := m.window(), m.logical()
	return image.Pt(ceilDiv(q.X*w.X, l), ceilDiv(q.Y*w.Y, l))
}

// LogicalToBuffer applies the viewport's scale and offset.
func (m Mapper) LogicalToBuffer(q image.Point, vp Viewport) image.Point {
	l := m.logical()
	return image.Pt(
		floorDiv(q.X*vp.W, l)+vp.X,
		floorDiv(q.Y*vp.H, l)+vp.Y,
	)
}

// BufferToLogical is the inverse of LogicalToBuffer.
func (m Mapper) BufferToLogical(b image.Point, vp Viewport) image.Point {
	w, h := vp.W, vp.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	l := m.logical()
	return image.Pt(
		ceilDiv((b.X-vp.X)*l, w),
		ceilDiv((b.Y-vp.Y)*l, h),
	)
}

// WindowToBuffer resolves a pointer position to a buffer cell.
func (m Mapper) WindowToBuffer(p image.Point, vp Viewport) image.Point {
	return m.LogicalToBuffer(m.WindowToLogical(p), vp)
}

// BufferToWindow locates a buffer cell in the window.
func (m Mapper) BufferToWindow(b image.Point, vp Viewport) image.Point {
	return m.LogicalToWindow(m.BufferToLogical(b, vp))
}
