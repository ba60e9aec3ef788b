package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"

	"github.com/example/mixpaint/internal/render"
	"github.com/example/mixpaint/internal/theme"
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 24, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatalf("font face: %v", err)
	}
}

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// keymap resolves key events to action names.
type keymap map[KeyShortcut]string

func (k keymap) register(name string, keys KeyboardShortcuts) {
	for _, sc := range keys.KeyboardShortcuts() {
		k[sc] = name
	}
}

// lookup matches by rune first and falls back to the key code, so that
// Ctrl+letter resolves whether or not the driver reports a rune.
func (k keymap) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers &^ key.ModShift
	if e.Rune > 0 {
		if name, ok := k[KeyShortcut{Rune: toLower(e.Rune), Modifiers: mods}]; ok {
			return name, true
		}
	}
	if e.Code != key.CodeUnknown {
		if name, ok := k[KeyShortcut{Code: e.Code, Modifiers: mods}]; ok {
			return name, true
		}
	}
	return "", false
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// LabelButton is a flat text button. Pressed doubles as the selected state
// for toolbar entries.
type LabelButton struct {
	label      string
	rect       image.Rectangle
	theme      *theme.Theme
	onActivate func()
}

func (b *LabelButton) Draw(dst *image.RGBA, state ButtonState) {
	bg := b.theme.ButtonBackground
	switch state {
	case StateHover:
		bg = b.theme.ButtonBackgroundHover
	case StatePressed:
		bg = b.theme.ButtonActive
	}
	render.FillRect(dst, b.rect, bg)
	render.StrokeRect(dst, b.rect, b.theme.ButtonBorder, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(b.theme.ButtonText), Face: basicfont.Face7x13}
	w := d.MeasureString(b.label).Ceil()
	d.Dot = fixed.P(b.rect.Min.X+(b.rect.Dx()-w)/2, b.rect.Min.Y+(b.rect.Dy()+10)/2)
	d.DrawString(b.label)
}

func (b *LabelButton) Rect() image.Rectangle { return b.rect }

func (b *LabelButton) SetRect(r image.Rectangle) { b.rect = r }

func (b *LabelButton) Activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// SwatchButton shows the current paint color. It is never cached because
// the color changes underneath it.
type SwatchButton struct {
	rect       image.Rectangle
	theme      *theme.Theme
	color      func() color.Color
	onActivate func()
}

func (s *SwatchButton) Draw(dst *image.RGBA, state ButtonState) {
	render.Checkerboard(dst, s.rect, 4, s.theme.CheckerLight, s.theme.CheckerDark)
	draw.Draw(dst, s.rect, image.NewUniform(s.color()), image.Point{}, draw.Over)
	border := 1
	if state != StateDefault {
		border = 2
	}
	render.StrokeRect(dst, s.rect, s.theme.ButtonBorder, border)
}

func (s *SwatchButton) Rect() image.Rectangle { return s.rect }

func (s *SwatchButton) SetRect(r image.Rectangle) { s.rect = r }

func (s *SwatchButton) Activate() {
	if s.onActivate != nil {
		s.onActivate()
	}
}

// drawText writes s with its baseline at p.
func drawText(dst *image.RGBA, p image.Point, s string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: basicfont.Face7x13, Dot: fixed.P(p.X, p.Y)}
	d.DrawString(s)
}

// drawMessage centres a transient notice over the window.
func drawMessage(dst *image.RGBA, msg string) {
	b := dst.Bounds()
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := (b.Dx() - wmsg) / 2
	py := (b.Dy()-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
	render.StrokeRect(dst, rect, color.Black, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
