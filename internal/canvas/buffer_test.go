package canvas

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/example/mixpaint/internal/pigment"
)

var (
	red    = pigment.Pack(255, 0, 0, 255)
	blue   = pigment.Pack(0, 0, 255, 255)
	yellow = pigment.Pack(255, 255, 0, 255)
)

func stroke(buf *PixelBuffer, from, to image.Point, r int, c pigment.Color) {
	var q PaintQueue
	for _, p := range Rasterize(&from, to, buf.Bounds()) {
		q.Enqueue(Sample{Point: p, Color: c, Radius: r})
	}
	buf.Flush(&q)
}

func TestResetIsIdempotent(t *testing.T) {
	buf := NewPixelBuffer(64, color.White)
	stroke(buf, image.Pt(10, 10), image.Pt(40, 30), 5, red)
	buf.Reset()
	pix := append([]byte(nil), buf.Surface().Pix...)
	buf.Reset()
	if !bytes.Equal(pix, buf.Surface().Pix) {
		t.Fatalf("second reset changed the surface")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if c, ok := buf.At(x, y); ok {
				t.Fatalf("cell (%d,%d) still painted with %v", x, y, c)
			}
			if got := buf.Surface().RGBAAt(x, y); got != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("surface (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	buf := NewPixelBuffer(8, nil)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, ok := buf.At(p.X, p.Y); ok {
			t.Errorf("At(%v) reported a color", p)
		}
	}
}

func TestScenarioPaintStroke(t *testing.T) {
	buf := NewPixelBuffer(1024, color.White)
	stroke(buf, image.Pt(10, 10), image.Pt(20, 10), 15, red)
	if c, ok := buf.At(15, 10); !ok || c != red {
		t.Fatalf("(15,10) = %v %v, want red", c, ok)
	}
	if c, ok := buf.At(15, 200); ok {
		t.Fatalf("(15,200) = %v, want blank", c)
	}
	if got := buf.Surface().RGBAAt(15, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Fatalf("surface (15,10) = %v", got)
	}
}

func TestStrokeCoversExactlyItsDiscs(t *testing.T) {
	buf := NewPixelBuffer(512, color.White)
	stroke(buf, image.Pt(300, 300), image.Pt(300, 300), 20, blue)

	from, to, r := image.Pt(100, 100), image.Pt(140, 120), 15
	centers := Rasterize(&from, to, buf.Bounds())
	stroke(buf, from, to, r, red)

	inDisc := func(x, y int) bool {
		for _, c := range centers {
			dx, dy := x-c.X, y-c.Y
			if dx*dx+dy*dy <= r*r {
				return true
			}
		}
		return false
	}
	for y := 60; y < 160; y++ {
		for x := 60; x < 190; x++ {
			c, ok := buf.At(x, y)
			if inDisc(x, y) {
				if !ok || c != red {
					t.Fatalf("(%d,%d) = %v %v, want red", x, y, c, ok)
				}
			} else if ok {
				t.Fatalf("(%d,%d) = %v outside the stroke", x, y, c)
			}
		}
	}
	if c, ok := buf.At(300, 300); !ok || c != blue {
		t.Fatalf("unrelated paint changed: %v %v", c, ok)
	}
}

func TestFlushIsLastWriteWins(t *testing.T) {
	buf := NewPixelBuffer(64, color.White)
	var q PaintQueue
	q.Enqueue(Sample{Point: image.Pt(10, 10), Color: red, Radius: 4})
	q.Enqueue(Sample{Point: image.Pt(12, 10), Color: blue, Radius: 4})
	if q.Len() != 2 {
		t.Fatalf("Len = %d", q.Len())
	}
	dirty := buf.Flush(&q)
	if q.Len() != 0 {
		t.Fatalf("queue not drained: %d", q.Len())
	}
	if want := image.Rect(6, 6, 17, 15); dirty != want {
		t.Fatalf("dirty = %v, want %v", dirty, want)
	}
	if c, _ := buf.At(11, 10); c != blue {
		t.Fatalf("overlap = %v, want blue", c)
	}
	if c, _ := buf.At(6, 10); c != red {
		t.Fatalf("(6,10) = %v, want red", c)
	}
}

func TestFlushClipsToBuffer(t *testing.T) {
	buf := NewPixelBuffer(16, color.White)
	var q PaintQueue
	q.Enqueue(Sample{Point: image.Pt(0, 0), Color: red, Radius: 30})
	q.Enqueue(Sample{Point: image.Pt(-100, -100), Color: blue, Radius: 3})
	if dirty := buf.Flush(&q); dirty != buf.Bounds() {
		t.Fatalf("dirty = %v", dirty)
	}
	if c, ok := buf.At(15, 15); !ok || c != red {
		t.Fatalf("(15,15) = %v %v", c, ok)
	}
}
