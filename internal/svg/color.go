package svg

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// resolveColor normalizes a stroke color for the style attribute. An
// empty string means black. "r,g,b" triples and "#RRGGBB" hex strings are
// normalized to lowercase hex through go-colorful; anything else (CSS
// color names) passes through untouched.
func resolveColor(s string) string {
	if s == "" {
		return "black"
	}
	if strings.Count(s, ",") == 2 {
		if hex, err := parseRGBTriple(s); err == nil {
			return hex
		}
		return s
	}
	if strings.HasPrefix(s, "#") {
		if c, err := colorful.Hex(s); err == nil {
			return c.Hex()
		}
	}
	return s
}

func parseRGBTriple(s string) (string, error) {
	parts := strings.Split(s, ",")
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", fmt.Errorf("invalid channel %q: %w", p, err)
		}
		if v < 0 || v > 255 {
			return "", fmt.Errorf("channel %d out of range", v)
		}
		ch[i] = float64(v) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Hex(), nil
}
