package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("not a png data uri: %.40q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func TestProcessProducesSquareDataURI(t *testing.T) {
	data := encodeTestImage(t, 300, 200)

	uri, err := Process(data, CropRect{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	img := decodeDataURI(t, uri)
	b := img.Bounds()
	if b.Dx() != OutputSize || b.Dy() != OutputSize {
		t.Errorf("portrait is %dx%d, want %dx%d", b.Dx(), b.Dy(), OutputSize, OutputSize)
	}
}

func TestProcessHonorsCropRect(t *testing.T) {
	data := encodeTestImage(t, 300, 200)

	if _, err := Process(data, CropRect{X: 50, Y: 50, Size: 100}); err != nil {
		t.Fatalf("in-bounds crop: %v", err)
	}
	if _, err := Process(data, CropRect{X: 500, Y: 500, Size: 100}); err == nil {
		t.Errorf("crop fully outside the image did not fail")
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	if _, err := Process([]byte("not an image at all"), CropRect{}); err == nil {
		t.Errorf("garbage payload accepted")
	}
}
