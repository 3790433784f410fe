package imageutil

import "github.com/disintegration/imaging"

// PrescaleWidth shrinks an image to maxWidth with Lanczos resampling when
// it is wider, keeping the aspect ratio. Narrower images are returned
// unchanged. Cell sampling averages regions anyway, so shrinking first
// changes cost, not structure.
func PrescaleWidth(img *RGBAImage, maxWidth int) *RGBAImage {
	if maxWidth < 1 || img.Width() <= maxWidth {
		return img
	}
	return RGBAImageFromImage(imaging.Resize(img.RGBA, maxWidth, 0, imaging.Lanczos))
}

// Sharpen applies a mild unsharp pass before sampling. Sigma around 0.5
// is enough to keep fine structure from washing out in the cell averages.
func Sharpen(img *RGBAImage, sigma float64) *RGBAImage {
	if sigma <= 0 {
		return img
	}
	return RGBAImageFromImage(imaging.Sharpen(img.RGBA, sigma))
}
