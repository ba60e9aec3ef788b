package appstate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/render"
	"github.com/example/mixpaint/internal/theme"
)

type pickerDrag int

const (
	dragNone pickerDrag = iota
	dragSV
	dragHue
)

// picker is the HSV color panel. The saturation/value plane is re-rendered
// only when the hue changes.
type picker struct {
	open bool
	drag pickerDrag

	svHue   float64
	svImage *image.RGBA
	strip   *image.RGBA
}

func (p *picker) toggle() {
	p.open = !p.open
	p.drag = dragNone
}

func (p *picker) close() {
	p.open = false
	p.drag = dragNone
}

// press starts a drag when pt hits the plane or the strip. It reports
// whether pt was inside the panel at all.
func (p *picker) press(l pickerLayout, pt image.Point, e *canvas.Engine) bool {
	if !pt.In(l.panel) {
		return false
	}
	switch {
	case pt.In(l.sv):
		p.drag = dragSV
	case pt.In(l.hue):
		p.drag = dragHue
	default:
		return true
	}
	p.dragTo(l, pt, e)
	return true
}

// dragTo applies the drag at pt. Points outside the region are clamped.
func (p *picker) dragTo(l pickerLayout, pt image.Point, e *canvas.Engine) {
	c := e.Color()
	switch p.drag {
	case dragSV:
		c.S, c.V = render.SVAt(pt.Sub(l.sv.Min), svSize)
	case dragHue:
		c.H = render.HueAt(pt.X-l.hue.Min.X, svSize)
	default:
		return
	}
	e.SetColor(c)
}

func (p *picker) release() { p.drag = dragNone }

func (p *picker) draw(dst *image.RGBA, l pickerLayout, c pigment.HSV, th *theme.Theme) {
	if p.svImage == nil || p.svHue != c.H {
		p.svImage = render.SVSquare(c.H, svSize)
		p.svHue = c.H
	}
	if p.strip == nil {
		p.strip = render.HueStrip(svSize, hueHeight)
	}
	render.FillRect(dst, l.panel, th.PickerBackground)
	draw.Draw(dst, l.sv, p.svImage, image.Point{}, draw.Src)
	draw.Draw(dst, l.hue, p.strip, image.Point{}, draw.Src)

	sv := l.sv.Min.Add(image.Pt(int(c.S*svSize), int((1-c.V)*svSize)))
	render.Marker(dst, sv, markerColor(c))
	hx := l.hue.Min.X + int(c.H/360*svSize)
	render.StrokeRect(dst, image.Rect(hx-1, l.hue.Min.Y, hx+2, l.hue.Max.Y), color.White, 1)

	packed := c.Color()
	render.FillRect(dst, l.sample, packed)
	render.StrokeRect(dst, l.sample, th.PickerText, 1)
	r, g, b, _ := packed.Channels()
	drawText(dst, l.text, fmt.Sprintf("R: %d G: %d B: %d", r, g, b), th.PickerText)
	drawText(dst, l.text.Add(image.Pt(0, 16)), c.String(), th.PickerText)
}

// markerColor keeps the plane marker visible on light and dark values.
func markerColor(c pigment.HSV) color.Color {
	if c.V > 0.5 {
		return color.Black
	}
	return color.White
}
