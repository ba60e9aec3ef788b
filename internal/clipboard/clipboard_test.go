package clipboard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestEncodeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{0, 128, 0, 255})
	data, err := encodeImage(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Bounds().Dx() != 3 {
		t.Fatalf("bounds = %v", back.Bounds())
	}
	r, g, _, _ := back.At(1, 1).RGBA()
	if r != 0 || g>>8 != 128 {
		t.Fatalf("pixel = %v", back.At(1, 1))
	}
}
