package scan

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// minScanWidth is the pixel width below which a card photo is upscaled
// before recognition. Phone crops of the small registration cards often come
// in under this and Tesseract's accuracy drops sharply on them.
const minScanWidth = 1000

// PrepareImage decodes a card photo, converts it to grayscale, upscales
// small images, and re-encodes as PNG for the OCR engine. Callers should
// treat failure as advisory and fall back to the original bytes.
func PrepareImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	scale := 1
	if bounds.Dx() > 0 && bounds.Dx() < minScanWidth {
		scale = (minScanWidth + bounds.Dx() - 1) / bounds.Dx()
	}

	gray := image.NewGray(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	if scale == 1 {
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(gray, gray.Bounds(), src, bounds, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode prepared image: %w", err)
	}
	return buf.Bytes(), nil
}
