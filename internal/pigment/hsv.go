package pigment

import (
	"fmt"
	"math"
)

// HSV is a hue in degrees [0, 360) with saturation and value in [0, 1].
type HSV struct {
	H, S, V float64
}

// Normalize wraps the hue and clamps saturation and value.
func (c HSV) Normalize() HSV {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	return HSV{H: h, S: Ratio(c.S), V: Ratio(c.V)}
}

// RGB returns the red, green and blue components in [0, 1].
func (c HSV) RGB() (r, g, b float64) {
	c = c.Normalize()
	if c.S == 0 {
		return c.V, c.V, c.V
	}
	hh := c.H / 60
	i := int(hh)
	ff := hh - float64(i)
	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*ff)
	t := c.V * (1 - c.S*(1-ff))
	switch i {
	case 0:
		return c.V, t, p
	case 1:
		return q, c.V, p
	case 2:
		return p, c.V, t
	case 3:
		return p, q, c.V
	case 4:
		return t, p, c.V
	default:
		return c.V, p, q
	}
}

// Color packs the HSV triple as an opaque Color. Channels are truncated.
func (c HSV) Color() Color {
	r, g, b := c.RGB()
	return Pack(uint8(r*255), uint8(g*255), uint8(b*255), 0xff)
}

func (c HSV) String() string {
	return fmt.Sprintf("H: %d S: %d V: %d", int(c.H), int(c.S*100), int(c.V*100))
}

// ToHSV converts a packed color, ignoring alpha. Greys report hue 0.
func ToHSV(c Color) HSV {
	cr, cg, cb, _ := c.Channels()
	r, g, b := float64(cr)/255, float64(cg)/255, float64(cb)/255
	lo := math.Min(r, math.Min(g, b))
	hi := math.Max(r, math.Max(g, b))
	out := HSV{V: hi}
	delta := hi - lo
	if delta < 0.00001 || hi <= 0 {
		return out
	}
	out.S = delta / hi
	switch {
	case r >= hi:
		out.H = (g - b) / delta
	case g >= hi:
		out.H = 2 + (b-r)/delta
	default:
		out.H = 4 + (r-g)/delta
	}
	out.H *= 60
	if out.H < 0 {
		out.H += 360
	}
	return out
}
