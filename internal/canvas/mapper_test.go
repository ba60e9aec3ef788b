package canvas

import (
	"image"
	"testing"
)

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct{ a, b, floor, ceil int }{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{8, 2, 4, 4},
		{-8, 2, -4, -4},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.floor {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.floor)
		}
		if got := ceilDiv(tt.a, tt.b); got != tt.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.ceil)
		}
	}
}

func TestWindowToBufferAtFullView(t *testing.T) {
	m := Mapper{Window: image.Pt(512, 512), Logical: 256, Buffer: 1024}
	vp := Viewport{W: 1024, H: 1024}
	tests := []struct{ in, want image.Point }{
		{image.Pt(0, 0), image.Pt(0, 0)},
		{image.Pt(10, 10), image.Pt(20, 20)},
		{image.Pt(11, 3), image.Pt(20, 4)},
		{image.Pt(511, 511), image.Pt(1020, 1020)},
		{image.Pt(-1, -1), image.Pt(-4, -4)},
	}
	for _, tt := range tests {
		if got := m.WindowToBuffer(tt.in, vp); got != tt.want {
			t.Errorf("WindowToBuffer(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWindowToBufferAppliesViewport(t *testing.T) {
	m := Mapper{Window: image.Pt(256, 256), Logical: 256, Buffer: 1024}
	vp := Viewport{X: 100, Y: 200, W: 512, H: 512}
	if got, want := m.WindowToBuffer(image.Pt(10, 20), vp), image.Pt(120, 240); got != want {
		t.Fatalf("WindowToBuffer = %v, want %v", got, want)
	}
}

func TestLogicalRoundTrip(t *testing.T) {
	m := Mapper{Window: image.Pt(700, 333), Logical: 256, Buffer: 1024}
	for _, vp := range []Viewport{
		{W: 1024, H: 1024},
		{X: 37, Y: 91, W: 605, H: 605},
		{X: 768, Y: 768, W: 256, H: 256},
	} {
		for x := 0; x < m.Logical; x += 7 {
			for y := 0; y < m.Logical; y += 5 {
				q := image.Pt(x, y)
				if got := m.BufferToLogical(m.LogicalToBuffer(q, vp), vp); got != q {
					t.Fatalf("viewport %+v: logical %v came back as %v", vp, q, got)
				}
				if got := m.WindowToLogical(m.LogicalToWindow(q)); got != q {
					t.Fatalf("logical %v via window came back as %v", q, got)
				}
				w := m.LogicalToWindow(q)
				if got := m.BufferToWindow(m.WindowToBuffer(w, vp), vp); got != w {
					t.Fatalf("viewport %+v: window %v came back as %v", vp, w, got)
				}
			}
		}
	}
}

func TestMapperZeroWindowFallsBack(t *testing.T) {
	m := Mapper{Logical: 256, Buffer: 1024}
	if got := m.WindowToLogical(image.Pt(12, 34)); got != image.Pt(12, 34) {
		t.Fatalf("WindowToLogical = %v", got)
	}
}

func TestMapperZeroValue(t *testing.T) {
	var m Mapper
	vp := Viewport{W: 4, H: 4}
	if got := m.WindowToLogical(image.Pt(3, 5)); got != image.Pt(3, 5) {
		t.Fatalf("WindowToLogical = %v", got)
	}
	if got := m.WindowToBuffer(image.Pt(0, 0), vp); got != image.Pt(0, 0) {
		t.Fatalf("WindowToBuffer = %v", got)
	}
	if got := m.BufferToLogical(image.Pt(4, 8), vp); got != image.Pt(1, 2) {
		t.Fatalf("BufferToLogical = %v", got)
	}
}
