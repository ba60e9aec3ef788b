package canvas

import (
	"image"
	"math"
)

// Rasterize interpolates the segment from *from to to into evenly spaced
// buffer points, one per unit of the longer axis plus the endpoint, so
// consecutive points are at most one cell apart. A nil from yields nothing.
// Points outside bounds are dropped.
func Rasterize(from *image.Point, to image.Point, bounds image.Rectangle) []image.Point {
	if from == nil {
		return nil
	}
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		if !to.In(bounds) {
			return nil
		}
		return []image.Point{to}
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	pts := make([]image.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		p := image.Pt(
			int(math.Round(float64(from.X)+xInc*float64(i))),
			int(math.Round(float64(from.Y)+yInc*float64(i))),
		)
		if p.In(bounds) {
			pts = append(pts, p)
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
