// Package imagefit normalizes product photos into the fixed square the
// storefront cards expect. The admin picks a rotation and zoom while
// previewing; the same transform is applied here before the file is
// stored.
package imagefit

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	// CanvasSize is the square edge every stored product photo gets.
	CanvasSize = 400

	MinScale = 0.5
	MaxScale = 1.5

	jpegQuality = 90
)

// Transform renders src onto a white CanvasSize square: fit to the
// canvas, zoom by scale (clamped to [0.5, 1.5]), rotate by angle
// degrees (clamped to [0, 360]), and center the result. Parts rotated
// or zoomed beyond the square are cropped, matching the preview.
func Transform(src image.Image, angle, scale float64) *image.NRGBA {
	if angle < 0 {
		angle = 0
	} else if angle > 360 {
		angle = 360
	}
	if scale < MinScale {
		scale = MinScale
	} else if scale > MaxScale {
		scale = MaxScale
	}

	fitted := imaging.Fit(src, CanvasSize, CanvasSize, imaging.Lanczos)
	if scale != 1 {
		b := fitted.Bounds()
		w := int(float64(b.Dx())*scale + 0.5)
		h := int(float64(b.Dy())*scale + 0.5)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		fitted = imaging.Resize(fitted, w, h, imaging.Lanczos)
	}
	if angle != 0 && angle != 360 {
		fitted = imaging.Rotate(fitted, -angle, color.White)
	}

	canvas := imaging.New(CanvasSize, CanvasSize, color.White)
	return imaging.OverlayCenter(canvas, fitted, 1.0)
}

// Decode reads a JPEG, PNG, GIF or WebP image.
func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Encode writes the canvas as a JPEG at the storefront's quality.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}
