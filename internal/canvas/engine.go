// Package canvas implements the raster painting engine: coordinate mapping,
// stroke interpolation, the blend brush and the buffered disc stamping that
// writes strokes into the pixel buffer and its visible surface.
//
// An Engine is not safe for concurrent use. Every input call runs to
// completion, including its flush, before returning.
package canvas

import (
	"image"
	"image/color"

	"github.com/example/mixpaint/internal/pigment"
)

const (
	DefaultBufferSize  = 1024
	DefaultLogicalSize = 256
	DefaultWindowSize  = 512
)

// Button identifies the pointer button that started a gesture.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

type gesture int

const (
	gestureIdle gesture = iota
	gestureStroke
	gesturePan
)

// Engine is one painting session.
type Engine struct {
	mapper     Mapper
	step       int
	background color.Color
	view       view
	buf        *PixelBuffer
	queue      PaintQueue

	brush Brush
	size  BrushSize
	hsv   pigment.HSV
	base  pigment.Color
	exact bool // base was given packed; do not rederive it from hsv

	gesture gesture
	prev    image.Point
	hasPrev bool
	panFrom image.Point
	blend   BlendState

	onPick func(c pigment.Color, ok bool)
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBufferSize sets the edge length D of the pixel buffer.
func WithBufferSize(d int) Option { return func(e *Engine) { e.mapper.Buffer = d } }

// WithLogicalSize sets the edge length L of the logical grid.
func WithLogicalSize(l int) Option { return func(e *Engine) { e.mapper.Logical = l } }

// WithWindowSize sets the initial window size.
func WithWindowSize(w, h int) Option { return func(e *Engine) { e.mapper.Window = image.Pt(w, h) } }

// WithBrushStep sets the radius increment between brush sizes.
func WithBrushStep(step int) Option { return func(e *Engine) { e.step = step } }

// WithBackground sets the color the surface is cleared to on reset.
func WithBackground(c color.Color) Option { return func(e *Engine) { e.background = c } }

// WithColor sets the initial paint color.
func WithColor(c pigment.HSV) Option {
	return func(e *Engine) { e.hsv, e.exact = c, false }
}

// WithBaseColor sets the initial paint color from a packed value, which is
// kept as given.
func WithBaseColor(c pigment.Color) Option {
	return func(e *Engine) { e.base, e.hsv, e.exact = c, pigment.ToHSV(c), true }
}

// WithBrush selects the initial brush.
func WithBrush(b Brush) Option { return func(e *Engine) { e.brush = b } }

// WithSize selects the initial brush size.
func WithSize(s BrushSize) Option { return func(e *Engine) { e.size = s } }

// WithPickListener registers a callback for eyedropper results. ok is false
// when the sampled cell was never painted.
func WithPickListener(fn func(c pigment.Color, ok bool)) Option {
	return func(e *Engine) { e.onPick = fn }
}

// New creates an Engine with a freshly reset buffer.
func New(opts ...Option) *Engine {
	e := &Engine{
		mapper: Mapper{
			Window:  image.Pt(DefaultWindowSize, DefaultWindowSize),
			Logical: DefaultLogicalSize,
			Buffer:  DefaultBufferSize,
		},
		step:       DefaultBrushStep,
		background: color.White,
		hsv:        pigment.HSV{H: 0, S: 1, V: 1},
	}
	for _, o := range opts {
		o(e)
	}
	if e.mapper.Buffer < 1 {
		e.mapper.Buffer = DefaultBufferSize
	}
	if e.mapper.Logical < 1 || e.mapper.Logical > e.mapper.Buffer {
		e.mapper.Logical = min(DefaultLogicalSize, e.mapper.Buffer)
	}
	if e.step <= 0 {
		e.step = DefaultBrushStep
	}
	if !e.brush.valid() {
		e.brush = BrushPaint
	}
	if !e.size.valid() {
		e.size = SizeSmall
	}
	e.hsv = e.hsv.Normalize()
	if !e.exact {
		e.base = e.hsv.Color()
	}
	e.buf = NewPixelBuffer(e.mapper.Buffer, e.background)
	e.view = newView(e.mapper.Buffer)
	return e
}

type toolHandlers struct {
	press func(e *Engine, p image.Point)
	drag  func(e *Engine, p image.Point)
}

var tools = [...]toolHandlers{
	BrushPaint:      {press: (*Engine).beginStroke, drag: (*Engine).paintTo},
	BrushBlend:      {press: (*Engine).beginStroke, drag: (*Engine).blendTo},
	BrushEyeDropper: {press: (*Engine).pickAt, drag: (*Engine).pickAt},
}

// PointerDown starts a gesture at window point p. The secondary button pans;
// the primary button applies the active brush.
func (e *Engine) PointerDown(p image.Point, b Button) {
	if b == ButtonSecondary {
		e.gesture = gesturePan
		e.panFrom = p
		return
	}
	e.gesture = gestureStroke
	tools[e.brush].press(e, p)
}

// PointerMove continues the current gesture. Moves without a held button
// are ignored.
func (e *Engine) PointerMove(p image.Point) {
	switch e.gesture {
	case gesturePan:
		e.Pan(e.panFrom.X-p.X, e.panFrom.Y-p.Y)
		e.panFrom = p
	case gestureStroke:
		tools[e.brush].drag(e, p)
	}
}

// PointerUp ends the current gesture.
func (e *Engine) PointerUp() {
	if e.gesture == gestureStroke {
		Logger().Debug("stroke end", "brush", e.brush.String())
	}
	e.gesture = gestureIdle
	e.hasPrev = false
	e.blend.Clear()
}

func (e *Engine) beginStroke(p image.Point) {
	e.prev = e.mapper.WindowToBuffer(p, e.view.vp)
	e.hasPrev = true
	e.blend.Clear()
	Logger().Debug("stroke start", "brush", e.brush.String(), "at", e.prev, "radius", e.Radius())
}

func (e *Engine) paintTo(p image.Point) {
	base := e.base
	e.strokeTo(p, func(image.Point, int) (pigment.Color, bool) { return base, true })
}

func (e *Engine) blendTo(p image.Point) {
	e.strokeTo(p, func(q image.Point, r int) (pigment.Color, bool) {
		return e.blend.Sample(e.buf, q, r)
	})
}

func (e *Engine) strokeTo(p image.Point, shade func(q image.Point, r int) (pigment.Color, bool)) {
	cur := e.mapper.WindowToBuffer(p, e.view.vp)
	var from *image.Point
	if e.hasPrev {
		prev := e.prev
		from = &prev
	}
	r := e.Radius()
	for _, q := range Rasterize(from, cur, e.buf.Bounds()) {
		c, ok := shade(q, r)
		if !ok {
			continue
		}
		e.queue.Enqueue(Sample{Point: q, Color: c, Radius: r})
	}
	e.prev, e.hasPrev = cur, true
	e.Flush()
}

func (e *Engine) pickAt(p image.Point) { e.Eyedrop(p) }

// Eyedrop samples the buffer under window point p. A painted cell becomes
// the paint color. Listeners are told about misses too.
func (e *Engine) Eyedrop(p image.Point) (pigment.Color, bool) {
	b := e.mapper.WindowToBuffer(p, e.view.vp)
	c, ok := e.buf.At(b.X, b.Y)
	if ok {
		e.base = c
		e.hsv = pigment.ToHSV(c)
	}
	if e.onPick != nil {
		e.onPick(c, ok)
	}
	return c, ok
}

// Flush stamps pending samples into the buffer and returns the dirty area.
func (e *Engine) Flush() image.Rectangle {
	return e.buf.Flush(&e.queue)
}

// Zoom changes the zoom level by delta notches around the window point
// anchor. Positive deltas zoom in.
func (e *Engine) Zoom(delta int, anchor image.Point) {
	a := e.mapper.WindowToBuffer(anchor, e.view.vp)
	a.X = clampInt(a.X, 0, e.mapper.Buffer-1)
	a.Y = clampInt(a.Y, 0, e.mapper.Buffer-1)
	e.view.zoomAt(delta, a)
	Logger().Debug("zoom", "level", e.view.zoom, "viewport", e.view.vp.Rect())
}

// Pan moves the viewport by a window delta scaled by the inverse zoom.
func (e *Engine) Pan(dx, dy int) {
	e.view.pan(dx, dy)
}

// Reset clears the buffer and drops any pending samples.
func (e *Engine) Reset() {
	e.queue.samples = e.queue.samples[:0]
	e.buf.Reset()
	Logger().Debug("reset", "size", e.mapper.Buffer)
}

// Resize records a new window size.
func (e *Engine) Resize(w, h int) {
	e.mapper.Window = image.Pt(w, h)
}

// Viewport returns the visible crop of the buffer.
func (e *Engine) Viewport() Viewport { return e.view.vp }

// ZoomLevel is the visible fraction of the buffer edge.
func (e *Engine) ZoomLevel() float64 { return e.view.zoom }

// Surface returns the visible raster the window presents.
func (e *Engine) Surface() *image.RGBA { return e.buf.Surface() }

// Buffer exposes the pixel buffer for reading.
func (e *Engine) Buffer() *PixelBuffer { return e.buf }

// Mapper returns the current coordinate mapper.
func (e *Engine) Mapper() Mapper { return e.mapper }

func (e *Engine) Brush() Brush { return e.brush }

// SetBrush switches tools. Invalid values are ignored.
func (e *Engine) SetBrush(b Brush) {
	if b.valid() {
		e.brush = b
	}
}

func (e *Engine) Size() BrushSize { return e.size }

// SetSize switches brush size. Invalid values are ignored.
func (e *Engine) SetSize(s BrushSize) {
	if s.valid() {
		e.size = s
	}
}

// CellOrigin snaps a window point to the window position of the buffer
// cell a stroke at p would paint.
func (e *Engine) CellOrigin(p image.Point) image.Point {
	vp := e.view.vp
	return e.mapper.BufferToWindow(e.mapper.WindowToBuffer(p, vp), vp)
}

// Radius is the current brush radius in buffer pixels.
func (e *Engine) Radius() int { return e.size.Radius(e.step) }

// Color returns the paint color as HSV.
func (e *Engine) Color() pigment.HSV { return e.hsv }

// BaseColor returns the packed paint color.
func (e *Engine) BaseColor() pigment.Color { return e.base }

// SetColor sets the paint color.
func (e *Engine) SetColor(c pigment.HSV) {
	e.hsv = c.Normalize()
	e.base = e.hsv.Color()
}

// SetBaseColor sets the paint color from a packed value.
func (e *Engine) SetBaseColor(c pigment.Color) {
	e.base = c
	e.hsv = pigment.ToHSV(c)
}

// Blend returns a copy of the blend stroke state.
func (e *Engine) Blend() BlendState { return e.blend }

// Stroking reports whether a primary-button gesture is in progress.
func (e *Engine) Stroking() bool { return e.gesture == gestureStroke }

// Panning reports whether a secondary-button gesture is in progress.
func (e *Engine) Panning() bool { return e.gesture == gesturePan }
