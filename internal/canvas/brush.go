package canvas

import (
	"fmt"
	"strings"
)

// Brush is the active tool.
type Brush int

const (
	BrushPaint Brush = iota
	BrushBlend
	BrushEyeDropper
)

// BrushSize selects one of the fixed brush radii.
type BrushSize int

const (
	SizeSmall BrushSize = iota
	SizeMedium
	SizeLarge
)

// DefaultBrushStep is the radius increment between consecutive sizes.
const DefaultBrushStep = 15

type brushInfo struct {
	name     string
	label    string
	shortcut rune
}

var brushes = [...]brushInfo{
	BrushPaint:      {name: "paint", label: "Paint", shortcut: 'p'},
	BrushBlend:      {name: "blend", label: "Blend", shortcut: 'b'},
	BrushEyeDropper: {name: "eyedropper", label: "Pick", shortcut: 'e'},
}

var sizes = [...]brushInfo{
	SizeSmall:  {name: "small", label: "S", shortcut: '1'},
	SizeMedium: {name: "medium", label: "M", shortcut: '2'},
	SizeLarge:  {name: "large", label: "L", shortcut: '3'},
}

// Brushes lists every brush in toolbar order.
func Brushes() []Brush { return []Brush{BrushPaint, BrushBlend, BrushEyeDropper} }

// Sizes lists every brush size from smallest to largest.
func Sizes() []BrushSize { return []BrushSize{SizeSmall, SizeMedium, SizeLarge} }

func (b Brush) valid() bool { return b >= 0 && int(b) < len(brushes) }

func (b Brush) String() string {
	if !b.valid() {
		return fmt.Sprintf("Brush(%d)", int(b))
	}
	return brushes[b].name
}

// Label is the short text shown on the toolbar.
func (b Brush) Label() string {
	if !b.valid() {
		return "?"
	}
	return brushes[b].label
}

// Shortcut is the key that selects the brush.
func (b Brush) Shortcut() rune {
	if !b.valid() {
		return 0
	}
	return brushes[b].shortcut
}

// ParseBrush resolves a brush by name.
func ParseBrush(s string) (Brush, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range brushes {
		if info.name == s {
			return Brush(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brush %q", s)
}

func (s BrushSize) valid() bool { return s >= 0 && int(s) < len(sizes) }

func (s BrushSize) String() string {
	if !s.valid() {
		return fmt.Sprintf("BrushSize(%d)", int(s))
	}
	return sizes[s].name
}

func (s BrushSize) Label() string {
	if !s.valid() {
		return "?"
	}
	return sizes[s].label
}

func (s BrushSize) Shortcut() rune {
	if !s.valid() {
		return 0
	}
	return sizes[s].shortcut
}

// Radius returns the disc radius in buffer pixels for the given step.
func (s BrushSize) Radius(step int) int {
	if step <= 0 {
		step = DefaultBrushStep
	}
	return (int(s) - int(SizeSmall) + 1) * step
}

// ParseSize resolves a brush size by name.
func ParseSize(s string) (BrushSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range sizes {
		if info.name == s || strings.ToLower(info.label) == s {
			return BrushSize(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brush size %q", s)
}
