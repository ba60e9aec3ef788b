package render

import (
	"image"
	"image/color"

	"github.com/example/mixpaint/internal/pigment"
)

// SVSquare renders the saturation/value plane for hue. Saturation grows to
// the right and value falls towards the bottom.
func SVSquare(hue float64, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := pigment.HSV{H: hue, S: float64(x) / float64(size), V: 1 - float64(y)/float64(size)}
			img.Set(x, y, c.Color())
		}
	}
	return img
}

// HueStrip renders the fully saturated hue range from left to right.
func HueStrip(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := pigment.HSV{H: float64(x) / float64(w) * 360, S: 1, V: 1}.Color()
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// SVAt maps a point inside a size×size square to saturation and value.
// Points outside are clamped to the edges.
func SVAt(p image.Point, size int) (s, v float64) {
	x := min(max(p.X, 0), size)
	y := min(max(p.Y, 0), size)
	return float64(x) / float64(size), 1 - float64(y)/float64(size)
}

// HueAt maps an x offset along a strip of width w to a hue in degrees.
func HueAt(x, w int) float64 {
	x = min(max(x, 0), w)
	h := float64(x) / float64(w) * 360
	if h >= 360 {
		h = 0
	}
	return h
}

// Marker draws a small hollow square centred on p.
func Marker(dst *image.RGBA, p image.Point, col color.Color) {
	StrokeRect(dst, image.Rect(p.X-3, p.Y-3, p.X+4, p.Y+4), col, 1)
}
