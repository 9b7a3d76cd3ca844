package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// PrepareOptions configure the optional preprocessing pass applied before
// eligibility classification.
type PrepareOptions struct {
	// Scale uniformly resizes the image by this factor. 0 or 1 leaves the
	// size unchanged.
	Scale float64

	// BlurRadius applies a Gaussian blur of this radius, for suppressing
	// scanner noise before thresholding. 0 disables the blur.
	BlurRadius float64

	// Threshold maps the image to pure black/white at this level
	// (1-255). 0 disables thresholding.
	Threshold uint8
}

func (o PrepareOptions) active() bool {
	return (o.Scale != 0 && o.Scale != 1) || o.BlurRadius > 0 || o.Threshold > 0
}

// Prepare applies the configured preprocessing steps in order: scale,
// blur, threshold. With no steps configured the input is returned as-is.
func Prepare(img image.Image, opts PrepareOptions) (image.Image, error) {
	if !opts.active() {
		return img, nil
	}

	out := img
	if opts.Scale != 0 && opts.Scale != 1 {
		if opts.Scale < 0 {
			return nil, fmt.Errorf("invalid scale factor %v", opts.Scale)
		}
		w := int(float64(out.Bounds().Dx()) * opts.Scale)
		h := int(float64(out.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale factor %v reduces image to nothing", opts.Scale)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	if opts.BlurRadius > 0 {
		out = blur.Gaussian(out, opts.BlurRadius)
	}
	if opts.Threshold > 0 {
		out = segment.Threshold(out, opts.Threshold)
	}
	return out, nil
}
