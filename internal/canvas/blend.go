package canvas

import (
	"image"
	"math"

	"github.com/example/mixpaint/internal/pigment"
)

// BlendState tracks the pigment carried by one blend stroke. The zero value
// is an empty state.
type BlendState struct {
	a, b       pigment.Color
	hasA, hasB bool
}

// Clear forgets both colors.
func (s *BlendState) Clear() { *s = BlendState{} }

// Carried returns the color currently being mixed, if any.
func (s BlendState) Carried() (pigment.Color, bool) { return s.a, s.hasA }

// Neighbor returns the last neighbor color found, if any.
func (s BlendState) Neighbor() (pigment.Color, bool) { return s.b, s.hasB }

// MixRatio is the fraction of a radius r disc covered by freq cells,
// clamped to [0, 1].
func MixRatio(freq, r int) float64 {
	if r <= 0 {
		if freq > 0 {
			return 1
		}
		return 0
	}
	return pigment.Ratio(float64(freq) / (math.Pi * float64(r) * float64(r)))
}

// Sample updates the state from the neighborhood of p. The first sample of
// a stroke picks up the dominant painted color; later samples look for the
// dominant color other than the carried one and mix towards it in
// proportion to its coverage. It returns the color to stamp at p; ok is
// false while no painted neighbor has been found.
func (s *BlendState) Sample(buf *PixelBuffer, p image.Point, r int) (c pigment.Color, ok bool) {
	if !s.hasA {
		first, n := buf.dominant(p, r, 0, false)
		if n == 0 {
			return 0, false
		}
		s.a, s.hasA = first, true
		return s.a, true
	}
	found, n := buf.dominant(p, r, s.a, true)
	if n > 0 {
		s.b, s.hasB = found, true
	}
	if s.hasB {
		s.a = pigment.Mix(s.a, s.b, MixRatio(n, r))
	}
	return s.a, true
}
