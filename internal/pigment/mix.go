package pigment

import "math"

// Ratio clamps a mixing weight into [0, 1]. NaN maps to 0.
func Ratio(t float64) float64 {
	switch {
	case math.IsNaN(t) || t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return t
}

// Mix blends a towards b by t using a subtractive red/yellow/blue model, so
// blue and yellow meet at green instead of the grey a channel average gives.
// t is clamped; 0 returns a unchanged and 1 returns b unchanged.
func Mix(a, b Color, t float64) Color {
	t = Ratio(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	ar, ag, ab, aa := a.Channels()
	br, bg, bb, ba := b.Channels()
	x := toRYB(float64(ar), float64(ag), float64(ab))
	y := toRYB(float64(br), float64(bg), float64(bb))
	var m [3]float64
	for i := range m {
		m[i] = x[i] + (y[i]-x[i])*t
	}
	rgb := fromRYB(m[0], m[1], m[2])
	alpha := float64(aa) + (float64(ba)-float64(aa))*t
	return Pack(channel(rgb[0]), channel(rgb[1]), channel(rgb[2]), channel(alpha))
}

// Lerp is the plain per-channel linear blend.
func Lerp(a, b Color, t float64) Color {
	t = Ratio(t)
	ar, ag, ab, aa := a.Channels()
	br, bg, bb, ba := b.Channels()
	l := func(p, q uint8) uint8 {
		return channel(float64(p) + (float64(q)-float64(p))*t)
	}
	return Pack(l(ar, br), l(ag, bg), l(ab, bb), l(aa, ba))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

func toRYB(r, g, b float64) [3]float64 {
	w := math.Min(r, math.Min(g, b))
	r, g, b = r-w, g-w, b-w
	mg := math.Max(r, math.Max(g, b))

	y := math.Min(r, g)
	r -= y
	g -= y
	if b > 0 && g > 0 {
		b /= 2
		g /= 2
	}
	y += g
	b += g

	if my := math.Max(r, math.Max(y, b)); my > 0 {
		n := mg / my
		r, y, b = r*n, y*n, b*n
	}
	return [3]float64{r + w, y + w, b + w}
}

func fromRYB(r, y, b float64) [3]float64 {
	w := math.Min(r, math.Min(y, b))
	r, y, b = r-w, y-w, b-w
	my := math.Max(r, math.Max(y, b))

	g := math.Min(y, b)
	y -= g
	b -= g
	if b > 0 && g > 0 {
		b *= 2
		g *= 2
	}
	r += y
	g += y

	if mg := math.Max(r, math.Max(g, b)); mg > 0 {
		n := my / mg
		r, g, b = r*n, g*n, b*n
	}
	return [3]float64{r + w, g + w, b + w}
}
