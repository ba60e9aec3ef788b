package theme

import (
	"fmt"
	"image/color"
	"io"
	"reflect"
)

// Theme defines the colors used by the paint window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Behind the canvas when the viewport does not fill the window
	Foreground color.RGBA // Status text

	// Toolbars
	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonActive          color.RGBA // Selected brush and size
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Canvas
	CanvasBackground color.RGBA // Surface color after a reset
	CheckerLight     color.RGBA
	CheckerDark      color.RGBA

	// Color picker panel
	PickerBackground color.RGBA
	PickerText       color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonActive:          color.RGBA{135, 206, 235, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CanvasBackground:      color.RGBA{255, 255, 255, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
		PickerBackground:      color.RGBA{0, 0, 0, 255},
		PickerText:            color.RGBA{255, 255, 255, 255},
	}
}

// WriteTo writes the theme in the key: #hex form Parse reads.
func (t *Theme) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "Name: %s\n", t.Name)
	total += int64(n)
	if err != nil {
		return total, err
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		c, ok := val.Field(i).Interface().(color.RGBA)
		if !ok {
			continue
		}
		n, err := fmt.Fprintf(w, "%s: %s\n", typ.Field(i).Name, Hex(c))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
