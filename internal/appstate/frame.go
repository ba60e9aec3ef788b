package appstate

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/render"
)

// compose renders one frame into dst: the viewport stretched across the
// whole window, the brush cursor, toolbars, picker and any notice.
func (a *AppState) compose(dst *image.RGBA) {
	e := a.engine
	full := dst.Bounds()
	render.FillRect(dst, full, a.theme.Background)
	render.Present(dst, full, e.Surface(), e.Viewport().Rect())

	if a.cursorIn && a.buttonAt(a.cursor) == nil && !(a.picker.open && a.cursor.In(a.layout.picker.panel)) {
		vp := e.Viewport()
		// Radius is in buffer cells; the window shows vp.W cells across.
		r := e.Radius() * a.width / max(vp.W, 1)
		render.BrushCursor(dst, e.CellOrigin(a.cursor), r)
	}

	for _, b := range a.buttons() {
		b.Draw(dst, a.buttonState(b))
	}
	drawText(dst, image.Pt(margin, margin+14), a.Title(), a.theme.Foreground)

	if a.picker.open {
		a.picker.draw(dst, a.layout.picker, e.Color(), a.theme)
	}
	if a.message != "" && a.now().Before(a.messageUntil) {
		drawMessage(dst, a.message)
	}
}

func (a *AppState) buttonState(b Button) ButtonState {
	e := a.engine
	for i, bb := range a.brushButtons {
		if bb == b && e.Brush() == canvas.Brushes()[i] {
			return StatePressed
		}
	}
	for i, sb := range a.sizeButtons {
		if sb == b && e.Size() == canvas.Sizes()[i] {
			return StatePressed
		}
	}
	if b == Button(a.swatch) && a.picker.open {
		return StatePressed
	}
	if b == a.pressed {
		return StatePressed
	}
	if b == a.hover {
		return StateHover
	}
	return StateDefault
}

func drawFrame(s screen.Screen, w screen.Window, a *AppState) {
	b, err := s.NewBuffer(image.Point{a.width, a.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	a.compose(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
