// Package photo turns an uploaded image into the self-contained
// encoded form stored on the document: squared by the requested crop,
// rescaled to the portrait size, and packed into a data URI so the
// document needs no network access to render it.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// OutputSize is the edge length of the stored square portrait.
const OutputSize = 512

// maxPixels caps the decoded source so a malicious dimension header
// cannot exhaust memory.
const maxPixels = 40 << 20

// CropRect selects a square region of the source image, in source
// pixels. A zero Size means "centered largest square".
type CropRect struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

// ErrNotAnImage is returned when the payload cannot be decoded.
var ErrNotAnImage = errors.New("unsupported or corrupt image")

// Process decodes, crops, rescales and re-encodes an uploaded photo,
// returning the data URI to store on the document.
func Process(data []byte, crop CropRect) (string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return "", fmt.Errorf("image dimensions %dx%d out of bounds", cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}

	region, err := clampCrop(src.Bounds(), crop)
	if err != nil {
		return "", err
	}

	dst := image.NewRGBA(image.Rect(0, 0, OutputSize, OutputSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, region, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("encode portrait: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// clampCrop resolves the requested square against the source bounds.
func clampCrop(bounds image.Rectangle, crop CropRect) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()

	if crop.Size <= 0 {
		size := w
		if h < size {
			size = h
		}
		x := bounds.Min.X + (w-size)/2
		y := bounds.Min.Y + (h-size)/2
		return image.Rect(x, y, x+size, y+size), nil
	}

	region := image.Rect(
		bounds.Min.X+crop.X,
		bounds.Min.Y+crop.Y,
		bounds.Min.X+crop.X+crop.Size,
		bounds.Min.Y+crop.Y+crop.Size,
	).Intersect(bounds)
	if region.Empty() {
		return image.Rectangle{}, fmt.Errorf("crop %+v outside image %dx%d", crop, w, h)
	}
	return region, nil
}
