package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/mixpaint/internal/pigment"
)

// PixelBuffer is the authoritative D×D raster. Cells that were never
// painted since the last Reset are tracked in a mask rather than with a
// reserved color, so every color remains paintable.
type PixelBuffer struct {
	size       int
	pix        []pigment.Color
	painted    []bool
	surface    *image.RGBA
	background color.Color
}

// NewPixelBuffer allocates a reset size×size buffer whose visible surface
// is cleared to background.
func NewPixelBuffer(size int, background color.Color) *PixelBuffer {
	if size < 1 {
		size = 1
	}
	if background == nil {
		background = color.White
	}
	b := &PixelBuffer{
		size:       size,
		pix:        make([]pigment.Color, size*size),
		painted:    make([]bool, size*size),
		surface:    image.NewRGBA(image.Rect(0, 0, size, size)),
		background: background,
	}
	b.Reset()
	return b
}

// Size is the buffer edge length D.
func (b *PixelBuffer) Size() int { return b.size }

// Bounds returns the buffer rectangle.
func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.size, b.size) }

// At returns the color at (x, y). ok is false for out-of-bounds or
// unpainted cells.
func (b *PixelBuffer) At(x, y int) (c pigment.Color, ok bool) {
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return 0, false
	}
	i := y*b.size + x
	if !b.painted[i] {
		return 0, false
	}
	return b.pix[i], true
}

// Surface is the visible raster kept in step with the buffer.
func (b *PixelBuffer) Surface() *image.RGBA { return b.surface }

// Reset marks every cell unpainted and clears the surface.
func (b *PixelBuffer) Reset() {
	for i := range b.pix {
		b.pix[i] = 0
		b.painted[i] = false
	}
	draw.Draw(b.surface, b.surface.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
}

// Flush stamps every queued sample in order and leaves the queue empty.
// It returns the union of the stamped areas.
func (b *PixelBuffer) Flush(q *PaintQueue) image.Rectangle {
	var dirty image.Rectangle
	for _, s := range q.samples {
		dirty = dirty.Union(b.stamp(s))
	}
	q.samples = q.samples[:0]
	return dirty
}

// stamp writes a filled disc clipped to the buffer.
func (b *PixelBuffer) stamp(s Sample) image.Rectangle {
	r := s.Radius
	area := image.Rect(s.X-r, s.Y-r, s.X+r+1, s.Y+r+1).Intersect(b.Bounds())
	if area.Empty() {
		return image.Rectangle{}
	}
	px := color.RGBAModel.Convert(s.Color).(color.RGBA)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := y - s.Y
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := x - s.X
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := y*b.size + x
			b.pix[i] = s.Color
			b.painted[i] = true
			o := b.surface.PixOffset(x, y)
			b.surface.Pix[o+0] = px.R
			b.surface.Pix[o+1] = px.G
			b.surface.Pix[o+2] = px.B
			b.surface.Pix[o+3] = px.A
		}
	}
	return area
}

// dominant tallies the colors painted inside the disc around center and
// returns the most frequent one, skipping exclude when skip is set. Equal
// tallies resolve to the smallest packed value. n is zero when nothing
// qualifies.
func (b *PixelBuffer) dominant(center image.Point, r int, exclude pigment.Color, skip bool) (best pigment.Color, n int) {
	area := image.Rect(center.X-r, center.Y-r, center.X+r+1, center.Y+r+1).Intersect(b.Bounds())
	tally := make(map[pigment.Color]int)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		dy := y - center.Y
		for x := area.Min.X; x < area.Max.X; x++ {
			dx := x - center.X
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := y*b.size + x
			if !b.painted[i] {
				continue
			}
			c := b.pix[i]
			if skip && c == exclude {
				continue
			}
			tally[c]++
		}
	}
	for c, count := range tally {
		if count > n || (count == n && c < best) {
			best, n = c, count
		}
	}
	return best, n
}
