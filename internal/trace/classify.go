package trace

import (
	"fmt"
	"image"
	"strings"
)

// Point is an integer pixel coordinate, 0-based with origin at top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Mode selects which eligibility passes contribute pixels to the working
// set. Modes combine with bitwise OR; the passes are independent and their
// results are unioned.
type Mode uint8

const (
	// ModeFill selects every eligible pixel in the full grid.
	ModeFill Mode = 1 << iota

	// ModeOutline selects interior eligible pixels that have at least one
	// 4-connected neighbor that is not eligible (the inside rim of a region).
	ModeOutline

	// ModeBoundary selects interior non-eligible pixels that have at least
	// one 4-connected eligible neighbor (the outside rim of a region).
	ModeBoundary
)

// ParseMode converts a method flag string into a Mode. The flags are
// single characters, freely combinable and case-insensitive:
// 'f' (fill), 'o' (outline), 'b' (boundary).
func ParseMode(method string) (Mode, error) {
	var m Mode
	for _, c := range strings.ToLower(method) {
		switch c {
		case 'f':
			m |= ModeFill
		case 'o':
			m |= ModeOutline
		case 'b':
			m |= ModeBoundary
		default:
			return 0, fmt.Errorf("unknown method flag %q (want combination of 'f', 'o', 'b')", c)
		}
	}
	if m == 0 {
		return 0, fmt.Errorf("empty method string")
	}
	return m, nil
}

// Has reports whether all passes in other are enabled in m.
func (m Mode) Has(other Mode) bool { return m&other == other }

// String returns the flag-string form of the mode ("f", "ob", ...).
func (m Mode) String() string {
	var b strings.Builder
	if m.Has(ModeFill) {
		b.WriteByte('f')
	}
	if m.Has(ModeOutline) {
		b.WriteByte('o')
	}
	if m.Has(ModeBoundary) {
		b.WriteByte('b')
	}
	return b.String()
}

// eligible reports whether the pixel at (x, y) belongs to the set of
// interest. The pixel is reduced to a brightness proxy (the truncated mean
// of its 8-bit channels, which for grayscale is the value itself) and
// counts as bright at proxy >= 128; invert flips the polarity.
func eligible(img image.Image, x, y int, invert bool) bool {
	b := img.Bounds()
	r, g, bl, _ := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
	mean := (int(r>>8) + int(g>>8) + int(bl>>8)) / 3
	bright := mean >= 128
	return bright != invert
}

// EligiblePixels returns the classified pixel set without tracing it,
// in scan order. Used by diagnostic overlays.
func EligiblePixels(img image.Image, mode Mode, invert bool) []Point {
	return classify(img, mode, invert, nil)
}

// classify runs the requested eligibility passes over the image and
// returns the union of their results in scan order. Duplicates between
// overlapping passes (fill and outline select the same rim pixels)
// collapse here. Outline and boundary passes only scan interior pixels;
// the 1-pixel border is excluded.
func classify(img image.Image, mode Mode, invert bool, progress func(string, ...any)) []Point {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	var pts []Point
	seen := make(map[Point]bool)
	add := func(p Point) {
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}

	if mode.Has(ModeFill) {
		for y := 0; y < h; y++ {
			if progress != nil && y > 0 && y%500 == 0 {
				progress("fill pass: %d rows done", y)
			}
			for x := 0; x < w; x++ {
				if eligible(img, x, y, invert) {
					add(Point{x, y})
				}
			}
		}
	}

	if mode.Has(ModeOutline) || mode.Has(ModeBoundary) {
		for y := 1; y < h-1; y++ {
			if progress != nil && y > 0 && y%500 == 0 {
				progress("contour pass: %d rows done", y)
			}
			for x := 1; x < w-1; x++ {
				self := eligible(img, x, y, invert)
				if mode.Has(ModeBoundary) && !self && anyNeighborEligible(img, x, y, invert) {
					add(Point{x, y})
				}
				if mode.Has(ModeOutline) && self && !allNeighborsEligible(img, x, y, invert) {
					add(Point{x, y})
				}
			}
		}
	}
	return pts
}

func anyNeighborEligible(img image.Image, x, y int, invert bool) bool {
	return eligible(img, x-1, y, invert) || eligible(img, x+1, y, invert) ||
		eligible(img, x, y-1, invert) || eligible(img, x, y+1, invert)
}

func allNeighborsEligible(img image.Image, x, y int, invert bool) bool {
	return eligible(img, x-1, y, invert) && eligible(img, x+1, y, invert) &&
		eligible(img, x, y-1, invert) && eligible(img, x, y+1, invert)
}
