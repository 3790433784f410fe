package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DecodeBytes decodes a raster image held in memory. PNG, JPEG, GIF,
// TIFF, BMP, and WebP are supported. EXIF orientation is applied so that
// sampling sees the pixels the way a viewer would.
func DecodeBytes(data []byte) (*RGBAImage, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader decodes a raster image from a stream.
func DecodeReader(r io.Reader) (*RGBAImage, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes img as a PNG file at path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return EncodePNG(f, img)
}
