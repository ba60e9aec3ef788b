package canvas

import (
	"image"
	"math/rand"
	"testing"
)

func TestZoomInAroundCenter(t *testing.T) {
	v := newView(1024)
	v.zoomAt(1, image.Pt(512, 512))
	if v.zoom != 0.9 {
		t.Fatalf("zoom = %v", v.zoom)
	}
	want := Viewport{X: 51, Y: 51, W: 922, H: 922}
	if v.vp != want {
		t.Fatalf("viewport = %+v, want %+v", v.vp, want)
	}
	v.zoomAt(-1, image.Pt(512, 512))
	if v.zoom < 0.98 || v.zoom > 1 {
		t.Fatalf("zoom after out = %v", v.zoom)
	}
}

func TestZoomClampsRange(t *testing.T) {
	v := newView(1024)
	v.zoomAt(100, image.Pt(0, 0))
	if v.zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", v.zoom, MinZoom)
	}
	if v.vp.W != 102 || v.vp.X != 0 || v.vp.Y != 0 {
		t.Fatalf("viewport = %+v", v.vp)
	}
	v.zoomAt(-100, image.Pt(1000, 1000))
	if v.zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", v.zoom, MaxZoom)
	}
	if v.vp != (Viewport{W: 1024, H: 1024}) {
		t.Fatalf("viewport = %+v", v.vp)
	}
}

func TestPanAtFullViewStaysPut(t *testing.T) {
	v := newView(1024)
	v.pan(50, -50)
	if v.vp != (Viewport{W: 1024, H: 1024}) {
		t.Fatalf("viewport moved: %+v", v.vp)
	}
}

func TestPanScalesByInverseZoom(t *testing.T) {
	v := newView(1000)
	v.setZoom(0.5, image.Pt(500, 500))
	if v.vp != (Viewport{X: 250, Y: 250, W: 500, H: 500}) {
		t.Fatalf("viewport = %+v", v.vp)
	}
	v.pan(10, -20)
	if v.vp.X != 270 || v.vp.Y != 210 {
		t.Fatalf("viewport after pan = %+v", v.vp)
	}
}

func TestZoomPanKeepsViewportInside(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := newView(1024)
	for i := 0; i < 5000; i++ {
		switch rng.Intn(2) {
		case 0:
			v.zoomAt(rng.Intn(9)-4, image.Pt(rng.Intn(1400)-200, rng.Intn(1400)-200))
		default:
			v.pan(rng.Intn(801)-400, rng.Intn(801)-400)
		}
		if !v.vp.Contains(1024) {
			t.Fatalf("step %d: viewport %+v escaped the buffer", i, v.vp)
		}
		if v.zoom < MinZoom || v.zoom > MaxZoom {
			t.Fatalf("step %d: zoom %v out of range", i, v.zoom)
		}
	}
}
