// Package clipboard publishes the canvas and picked colors to the system clipboard.
package clipboard

import (
	"bytes"
	"image"

	"github.com/example/mixpaint/internal/pigment"
	"github.com/example/mixpaint/internal/render"
)

// WriteColor places c on the clipboard as #RRGGBB text.
func WriteColor(c pigment.Color) error {
	return WriteText(c.Hex())
}

func encodeImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := render.Encode(&buf, img, render.FormatPNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
