package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/plotpath/vectorizer/internal/trace"
)

// SaveDetection writes a copy of img with every detected pixel painted
// magenta, for verifying the eligibility classification. The source image
// is not modified.
func SaveDetection(img image.Image, points []trace.Point, path string) error {
	overlay := copyRGBA(img)
	mark := color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	min := img.Bounds().Min
	for _, p := range points {
		overlay.Set(p.X+min.X, p.Y+min.Y, mark)
	}
	if err := imaging.Save(overlay, path); err != nil {
		return fmt.Errorf("failed to save detection overlay: %w", err)
	}
	return nil
}

// SaveTrace writes a copy of img with each traced line painted in its own
// color, hues spread evenly around the HSV wheel so consecutive lines are
// easy to tell apart.
func SaveTrace(img image.Image, lines []trace.Polyline, path string) error {
	overlay := copyRGBA(img)
	min := img.Bounds().Min
	for i, line := range lines {
		hue := float64(i%12) * 30
		c := colorful.Hsv(hue, 0.9, 0.9)
		r, g, b := c.RGB255()
		mark := color.NRGBA{R: r, G: g, B: b, A: 255}
		for _, v := range line {
			overlay.Set(int(math.Round(v.X))+min.X, int(math.Round(v.Y))+min.Y, mark)
		}
	}
	if err := imaging.Save(overlay, path); err != nil {
		return fmt.Errorf("failed to save trace overlay: %w", err)
	}
	return nil
}

func copyRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)
	return out
}
