// Package render holds the image operations used to present and export the
// canvas: viewport blits, cursor and picker drawing, and file encoders.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Present scales the viewport crop of surface onto dr of dst. Each buffer
// cell becomes a block of window pixels; no smoothing is applied so painted
// edges stay crisp when zoomed.
func Present(dst *image.RGBA, dr image.Rectangle, surface *image.RGBA, viewport image.Rectangle) {
	sr := viewport.Intersect(surface.Bounds())
	if sr.Empty() || dr.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dr, surface, sr, draw.Src, nil)
}

// Checkerboard fills rect of dst with alternating squares of the given size.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	if size <= 0 {
		size = 8
	}
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

// FillRect paints rect with a solid color.
func FillRect(dst *image.RGBA, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeRect outlines rect with the given thickness.
func StrokeRect(dst *image.RGBA, rect image.Rectangle, col color.Color, thick int) {
	if thick <= 0 {
		thick = 1
	}
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+thick), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Max.Y-thick, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+thick, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(rect.Max.X-thick, rect.Min.Y, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
}

// Circle draws a one pixel circle outline using the midpoint algorithm.
func Circle(dst *image.RGBA, center image.Point, r int, col color.Color) {
	if r <= 0 {
		if center.In(dst.Bounds()) {
			dst.Set(center.X, center.Y, col)
		}
		return
	}
	x, y := r, 0
	e := 1 - r
	for x >= y {
		pts := [...]image.Point{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}}
		for _, p := range pts {
			p = center.Add(p)
			if p.In(dst.Bounds()) {
				dst.Set(p.X, p.Y, col)
			}
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2 * (y - x + 1)
		}
	}
}

// BrushCursor outlines the brush footprint twice so it reads on both light
// and dark paint.
func BrushCursor(dst *image.RGBA, center image.Point, r int) {
	Circle(dst, center, r, color.Black)
	if r > 1 {
		Circle(dst, center, r-1, color.White)
	}
}
