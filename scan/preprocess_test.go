package scan

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x), A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestPrepareImageUpscalesSmallScans(t *testing.T) {
	out, err := PrepareImage(encodeTestImage(t, 400, 250))
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not valid png: %v", err)
	}
	if w := img.Bounds().Dx(); w < minScanWidth {
		t.Fatalf("width = %d, want >= %d", w, minScanWidth)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Fatalf("expected grayscale output, got %T", img)
	}
}

func TestPrepareImageKeepsLargeScansSized(t *testing.T) {
	out, err := PrepareImage(encodeTestImage(t, 1600, 900))
	if err != nil {
		t.Fatalf("PrepareImage() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output not valid png: %v", err)
	}
	if w := img.Bounds().Dx(); w != 1600 {
		t.Fatalf("width = %d, want 1600", w)
	}
}

func TestPrepareImageRejectsGarbage(t *testing.T) {
	if _, err := PrepareImage([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}
