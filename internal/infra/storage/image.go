package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
)

const WebPContentType = "image/webp"

var ErrInvalidImage = patient.ErrInvalidImage

// WebPEncoder implements patient.PhotoEncoder.
type WebPEncoder struct {
	MaxDimension int
	MaxPixels    int
}

func (e WebPEncoder) Encode(data []byte) ([]byte, string, error) {
	out, err := NormalizePhoto(data, e.MaxDimension, e.MaxPixels)
	if err != nil {
		return nil, "", err
	}
	return out, WebPContentType, nil
}

// NormalizePhoto decodes a jpeg, png or webp image, fits it inside a
// maxDim square keeping the aspect ratio and re-encodes it as WebP.
// Images above maxPixels are rejected from their header, before any
// pixel data is decoded.
func NormalizePhoto(data []byte, maxDim, maxPixels int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidImage
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, ErrInvalidImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage
	}

	img := fit(src, maxDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return src
	}

	nw, nh := maxDim, maxDim
	if w >= h {
		nh = h * maxDim / w
	} else {
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Compile-time check
var (
	_ patient.PhotoEncoder = WebPEncoder{}
	_ patient.PhotoStore   = (*S3Store)(nil)
)
