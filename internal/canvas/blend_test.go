package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/mixpaint/internal/pigment"
)

func TestMixRatioBounds(t *testing.T) {
	tests := []struct {
		freq, r int
		want    float64
	}{
		{0, 15, 0},
		{709, 15, 1},
		{100000, 15, 1},
		{0, 0, 0},
		{3, 0, 1},
	}
	for _, tt := range tests {
		if got := MixRatio(tt.freq, tt.r); got != tt.want {
			t.Errorf("MixRatio(%d, %d) = %v, want %v", tt.freq, tt.r, got, tt.want)
		}
	}
	for f := 0; f < 2000; f += 37 {
		if got := MixRatio(f, 15); got < 0 || got > 1 {
			t.Fatalf("MixRatio(%d, 15) = %v", f, got)
		}
	}
}

func TestDominantTieBreak(t *testing.T) {
	buf := NewPixelBuffer(32, color.White)
	var q PaintQueue
	q.Enqueue(Sample{Point: image.Pt(10, 10), Color: yellow, Radius: 0})
	q.Enqueue(Sample{Point: image.Pt(11, 10), Color: blue, Radius: 0})
	buf.Flush(&q)
	c, n := buf.dominant(image.Pt(10, 10), 2, 0, false)
	if n != 1 || c != blue {
		t.Fatalf("dominant = %v x%d, want %v x1", c, n, blue)
	}
	c, n = buf.dominant(image.Pt(10, 10), 2, blue, true)
	if n != 1 || c != yellow {
		t.Fatalf("dominant excluding blue = %v x%d", c, n)
	}
	if _, n := buf.dominant(image.Pt(25, 25), 3, 0, false); n != 0 {
		t.Fatalf("blank neighborhood counted %d cells", n)
	}
}

func TestBlendWaitsForPaint(t *testing.T) {
	buf := NewPixelBuffer(64, color.White)
	var s BlendState
	if _, ok := s.Sample(buf, image.Pt(30, 30), 5); ok {
		t.Fatalf("blank neighborhood produced paint")
	}
	if _, ok := s.Carried(); ok {
		t.Fatalf("carried color set from blank cells")
	}
}

func TestScenarioBlendBlueIntoYellow(t *testing.T) {
	buf := NewPixelBuffer(256, color.White)
	var q PaintQueue
	q.Enqueue(Sample{Point: image.Pt(50, 50), Color: blue, Radius: 40})
	q.Enqueue(Sample{Point: image.Pt(170, 50), Color: yellow, Radius: 40})
	buf.Flush(&q)

	var s BlendState
	c, ok := s.Sample(buf, image.Pt(50, 50), 15)
	if !ok || c != blue {
		t.Fatalf("first sample = %v %v, want blue", c, ok)
	}
	c, ok = s.Sample(buf, image.Pt(170, 50), 15)
	if !ok {
		t.Fatalf("second sample produced no paint")
	}
	if n, _ := s.Neighbor(); n != yellow {
		t.Fatalf("neighbor = %v, want yellow", n)
	}
	if want := pigment.Mix(blue, yellow, 1); c != want {
		t.Fatalf("carried = %v, want %v", c, want)
	}
	if avg := pigment.Lerp(blue, yellow, 0.5); c == avg {
		t.Fatalf("carried color is the channel average %v", avg)
	}

	s.Clear()
	if _, ok := s.Carried(); ok {
		t.Fatalf("Clear kept the carried color")
	}
}

func TestBlendPartialCoverage(t *testing.T) {
	buf := NewPixelBuffer(128, color.White)
	var q PaintQueue
	q.Enqueue(Sample{Point: image.Pt(40, 64), Color: blue, Radius: 30})
	q.Enqueue(Sample{Point: image.Pt(64, 64), Color: yellow, Radius: 0})
	buf.Flush(&q)

	var s BlendState
	s.Sample(buf, image.Pt(40, 64), 10)
	c, _ := s.Sample(buf, image.Pt(60, 64), 10)
	if want := pigment.Mix(blue, yellow, MixRatio(1, 10)); c != want {
		t.Fatalf("carried = %v, want %v", c, want)
	}
}
