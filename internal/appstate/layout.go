package appstate

import "image"

const (
	margin    = 8
	gap       = 4
	buttonW   = 64
	buttonH   = 24
	sizeW     = 28
	pickerPad = 8
	svSize    = 200
	hueHeight = 30
	sampleBox = 40
)

// pickerLayout positions the parts of the color picker panel.
type pickerLayout struct {
	panel  image.Rectangle
	sv     image.Rectangle
	hue    image.Rectangle
	sample image.Rectangle
	text   image.Point // baseline of the first readout line
}

// layout positions every overlay for a window of the given size. The canvas
// always fills the whole window underneath.
type layout struct {
	brushes [3]image.Rectangle
	sizes   [3]image.Rectangle
	reset   image.Rectangle
	swatch  image.Rectangle
	picker  pickerLayout
}

func computeLayout(width, height int) layout {
	var l layout
	bottom := height - margin - buttonH
	for i := range l.brushes {
		x := margin + i*(buttonW+gap)
		l.brushes[i] = image.Rect(x, bottom, x+buttonW, bottom+buttonH)
	}
	start := width - margin - len(l.sizes)*sizeW - (len(l.sizes)-1)*gap
	for i := range l.sizes {
		x := start + i*(sizeW+gap)
		l.sizes[i] = image.Rect(x, margin, x+sizeW, margin+buttonH)
	}
	l.swatch = image.Rect(width-margin-buttonH, bottom, width-margin, bottom+buttonH)
	l.reset = image.Rect(l.swatch.Min.X-gap-buttonW, bottom, l.swatch.Min.X-gap, bottom+buttonH)

	pw := svSize + 2*pickerPad
	ph := svSize + hueHeight + sampleBox + 4*pickerPad
	px := max(width-margin-pw, 0)
	py := max(bottom-gap-ph, 0)
	p := &l.picker
	p.panel = image.Rect(px, py, px+pw, py+ph)
	p.sv = image.Rect(px+pickerPad, py+pickerPad, px+pickerPad+svSize, py+pickerPad+svSize)
	p.hue = image.Rect(p.sv.Min.X, p.sv.Max.Y+pickerPad, p.sv.Max.X, p.sv.Max.Y+pickerPad+hueHeight)
	p.sample = image.Rect(p.sv.Min.X, p.hue.Max.Y+pickerPad, p.sv.Min.X+sampleBox, p.hue.Max.Y+pickerPad+sampleBox)
	p.text = image.Pt(p.sample.Max.X+pickerPad, p.sample.Min.Y+14)
	return l
}
