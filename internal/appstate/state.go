package appstate

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/mixpaint/internal/canvas"
	"github.com/example/mixpaint/internal/clipboard"
	"github.com/example/mixpaint/internal/notify"
	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/render"
	"github.com/example/mixpaint/internal/script"
	"github.com/example/mixpaint/internal/theme"
)

// messageDuration is how long a transient notice stays on screen.
const messageDuration = 2 * time.Second

// panStep is the window distance an arrow key pans.
const panStep = 10

// AppState holds the paint window and the engine it drives.
type AppState struct {
	ExportDir string
	Output    string // Explicit export path; a timestamped name in ExportDir otherwise
	CopyPicks bool   // Put picked colors on the clipboard

	theme      *theme.Theme
	notifier   *notify.Notifier
	engineOpts []canvas.Option
	script     script.Script
	onClose    func()
	closeOnce  sync.Once
	now        func() time.Time

	engine  *canvas.Engine
	width   int
	height  int
	layout  layout
	keys    keymap
	actions map[string]func()

	brushButtons []*CacheButton
	sizeButtons  []*CacheButton
	resetButton  *CacheButton
	swatch       *SwatchButton
	hover        Button
	pressed      Button
	picker       picker

	cursor       image.Point
	cursorIn     bool
	message      string
	messageUntil time.Time
	quit         bool
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEngineOptions forwards options to the paint engine.
func WithEngineOptions(opts ...canvas.Option) Option {
	return func(a *AppState) { a.engineOpts = append(a.engineOpts, opts...) }
}

// WithTheme sets the UI colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.theme = t } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithExportDir sets the directory Ctrl+S writes into.
func WithExportDir(dir string) Option { return func(a *AppState) { a.ExportDir = dir } }

// WithOutput sets a fixed export path.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithCopyPicks copies every picked color to the clipboard as hex text.
func WithCopyPicks(on bool) Option { return func(a *AppState) { a.CopyPicks = on } }

// WithScript replays s on the canvas before the window opens.
func WithScript(s script.Script) Option { return func(a *AppState) { a.script = s } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState and its engine. The theme's canvas background is
// used for the buffer unless an engine option overrides it.
func New(opts ...Option) *AppState {
	a := &AppState{now: time.Now}
	for _, o := range opts {
		o(a)
	}
	if a.theme == nil {
		a.theme = theme.Default()
	}
	engineOpts := append([]canvas.Option{canvas.WithBackground(a.theme.CanvasBackground)}, a.engineOpts...)
	engineOpts = append(engineOpts, canvas.WithPickListener(a.picked))
	a.engine = canvas.New(engineOpts...)
	if len(a.script) > 0 {
		a.script.Replay(a.engine)
	}
	a.buildControls()
	m := a.engine.Mapper()
	a.resize(m.Window.X, m.Window.Y)
	return a
}

// Engine returns the paint engine behind the window.
func (a *AppState) Engine() *canvas.Engine { return a.engine }

// Title describes the active brush, size and zoom.
func (a *AppState) Title() string {
	e := a.engine
	return fmt.Sprintf("MixPaint - %s %s %.0f%%", e.Brush().Label(), e.Size().Label(), 100/e.ZoomLevel())
}

func (a *AppState) buildControls() {
	a.keys = keymap{}
	a.actions = map[string]func(){}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		a.actions[name] = fn
		if keys != nil {
			a.keys.register(name, keys)
		}
	}

	a.brushButtons = a.brushButtons[:0]
	for _, b := range canvas.Brushes() {
		b := b
		sel := func() { a.engine.SetBrush(b) }
		register("brush-"+b.String(), shortcutList{{Rune: b.Shortcut()}}, sel)
		a.brushButtons = append(a.brushButtons, &CacheButton{Button: &LabelButton{label: b.Label(), theme: a.theme, onActivate: sel}})
	}
	a.sizeButtons = a.sizeButtons[:0]
	for _, s := range canvas.Sizes() {
		s := s
		sel := func() { a.engine.SetSize(s) }
		register("size-"+s.String(), shortcutList{{Rune: s.Shortcut()}}, sel)
		a.sizeButtons = append(a.sizeButtons, &CacheButton{Button: &LabelButton{label: s.Label(), theme: a.theme, onActivate: sel}})
	}

	reset := func() {
		a.engine.Reset()
		a.flash("canvas cleared")
	}
	register("reset", ctrl('r', key.CodeR), reset)
	a.resetButton = &CacheButton{Button: &LabelButton{label: "Reset", theme: a.theme, onActivate: reset}}

	a.swatch = &SwatchButton{theme: a.theme, color: func() color.Color { return a.engine.BaseColor() }, onActivate: a.picker.toggle}
	register("picker", shortcutList{{Rune: 'c'}}, a.picker.toggle)
	register("close", shortcutList{{Code: key.CodeEscape}}, a.picker.close)

	center := func() image.Point { return image.Pt(a.width/2, a.height/2) }
	register("zoom-in", shortcutList{{Rune: '+'}, {Rune: '='}}, func() { a.engine.Zoom(1, center()) })
	register("zoom-out", shortcutList{{Rune: '-'}}, func() { a.engine.Zoom(-1, center()) })
	register("pan-left", shortcutList{{Code: key.CodeLeftArrow}}, func() { a.engine.Pan(-panStep, 0) })
	register("pan-right", shortcutList{{Code: key.CodeRightArrow}}, func() { a.engine.Pan(panStep, 0) })
	register("pan-up", shortcutList{{Code: key.CodeUpArrow}}, func() { a.engine.Pan(0, -panStep) })
	register("pan-down", shortcutList{{Code: key.CodeDownArrow}}, func() { a.engine.Pan(0, panStep) })

	register("export", ctrl('s', key.CodeS), a.export)
	register("copy", ctrl('c', key.CodeC), a.copyCanvas)
	register("quit", shortcutList{{Rune: 'q'}}, func() { a.quit = true })
}

// ctrl binds Ctrl+r by rune and by key code.
func ctrl(r rune, code key.Code) shortcutList {
	return shortcutList{{Rune: r, Modifiers: key.ModControl}, {Code: code, Modifiers: key.ModControl}}
}

func (a *AppState) buttons() []Button {
	out := make([]Button, 0, 8)
	for _, b := range a.brushButtons {
		out = append(out, b)
	}
	for _, b := range a.sizeButtons {
		out = append(out, b)
	}
	return append(out, a.resetButton, a.swatch)
}

func (a *AppState) resize(w, h int) {
	a.width, a.height = w, h
	a.engine.Resize(w, h)
	a.layout = computeLayout(w, h)
	for i, b := range a.brushButtons {
		b.SetRect(a.layout.brushes[i])
	}
	for i, b := range a.sizeButtons {
		b.SetRect(a.layout.sizes[i])
	}
	a.resetButton.SetRect(a.layout.reset)
	a.swatch.SetRect(a.layout.swatch)
}

func (a *AppState) buttonAt(p image.Point) Button {
	for _, b := range a.buttons() {
		if p.In(b.Rect()) {
			return b
		}
	}
	return nil
}

func (a *AppState) flash(msg string) {
	log.Print(msg)
	a.message = msg
	a.messageUntil = a.now().Add(messageDuration)
}

func (a *AppState) picked(c pigment.Color, ok bool) {
	if !ok {
		return
	}
	a.flash("picked " + c.Hex())
	if a.CopyPicks {
		if err := clipboard.WriteColor(c); err != nil {
			log.Printf("copy color: %v", err)
		} else {
			a.notifier.Copy(c.Hex())
		}
	}
	a.notifier.Pick(c)
}

// exportPath picks where Ctrl+S writes.
func (a *AppState) exportPath() string {
	if a.Output != "" {
		return a.Output
	}
	name := "mixpaint-" + a.now().Format("20060102-150405") + ".png"
	return filepath.Join(a.ExportDir, name)
}

func (a *AppState) export() {
	path := a.exportPath()
	surface := a.engine.Surface()
	if err := render.Save(path, surface); err != nil {
		log.Printf("export: %v", err)
		a.flash("export failed")
		return
	}
	a.flash("exported " + filepath.Base(path))
	a.notifier.Export(path, surface)
}

func (a *AppState) copyCanvas() {
	if err := clipboard.WriteImage(a.engine.Surface()); err != nil {
		log.Printf("copy: %v", err)
		a.flash("copy failed")
		return
	}
	a.flash("canvas copied to clipboard")
	a.notifier.Copy("canvas")
}

// handleMouse applies a pointer event and reports whether a repaint is needed.
func (a *AppState) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	a.cursor = p
	a.cursorIn = true

	switch e.Button {
	case mouse.ButtonWheelUp, mouse.ButtonWheelDown:
		if e.Direction == mouse.DirRelease {
			return false
		}
		delta := 1
		if e.Button == mouse.ButtonWheelDown {
			delta = -1
		}
		a.engine.Zoom(delta, p)
		return true
	}

	switch e.Direction {
	case mouse.DirPress:
		if a.message != "" && a.now().Before(a.messageUntil) {
			a.messageUntil = time.Time{}
		}
		if e.Button == mouse.ButtonRight {
			a.engine.PointerDown(p, canvas.ButtonSecondary)
			return true
		}
		if e.Button != mouse.ButtonLeft {
			return false
		}
		if a.picker.open {
			if a.picker.press(a.layout.picker, p, a.engine) {
				return true
			}
			if !p.In(a.swatch.Rect()) {
				a.picker.close()
				return true
			}
		}
		if b := a.buttonAt(p); b != nil {
			a.pressed = b
			return true
		}
		a.engine.PointerDown(p, canvas.ButtonPrimary)
		return true

	case mouse.DirRelease:
		if a.picker.drag != dragNone {
			a.picker.release()
			return true
		}
		if a.pressed != nil {
			b := a.pressed
			a.pressed = nil
			if p.In(b.Rect()) {
				b.Activate()
			}
			return true
		}
		if a.engine.Stroking() || a.engine.Panning() {
			a.engine.PointerUp()
		}
		return true

	default:
		if a.picker.drag != dragNone {
			a.picker.dragTo(a.layout.picker, p, a.engine)
			return true
		}
		if a.engine.Stroking() || a.engine.Panning() {
			a.engine.PointerMove(p)
			return true
		}
		a.hover = a.buttonAt(p)
		return true
	}
}

// handleKey runs the shortcut bound to e. It reports whether a repaint is
// needed.
func (a *AppState) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	name, ok := a.keys.lookup(e)
	if !ok {
		return false
	}
	a.actions[name]()
	return true
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: a.width, Height: a.height, Title: a.Title()})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.notifyClose()

	pending := false
	repaint := func() {
		if !pending {
			pending = true
			w.Send(paint.Event{})
		}
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			if e.WidthPx > 0 && e.HeightPx > 0 {
				a.resize(e.WidthPx, e.HeightPx)
			}
			repaint()
		case paint.Event:
			pending = false
			drawFrame(s, w, a)
		case mouse.Event:
			if a.handleMouse(e) {
				repaint()
			}
		case key.Event:
			if a.handleKey(e) {
				repaint()
			}
			if a.quit {
				return
			}
		case error:
			log.Print(e)
		}
	}
}
