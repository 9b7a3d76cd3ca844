package svg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Options control document-level rendering.
type Options struct {
	// XOffset/YOffset are added to every position.
	XOffset float64
	YOffset float64

	// Zoom multiplies every position; 0 means 1.
	Zoom float64

	// LineWidth is the stroke width of every element; 0 means 1.
	LineWidth float64
}

func (o Options) zoom() float64 {
	if o.Zoom == 0 {
		return 1
	}
	return o.Zoom
}

func (o Options) lineWidth() float64 {
	if o.LineWidth == 0 {
		return 1
	}
	return o.LineWidth
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Creator: vectorizer -->
<svg xmlns="http://www.w3.org/2000/svg" xml:space="preserve" width="%[1]smm" height="%[2]smm" version="1.1" style="shape-rendering:geometricPrecision; text-rendering:geometricPrecision; image-rendering:optimizeQuality; fill-rule:evenodd; clip-rule:evenodd" viewBox="0 0 %[1]s %[2]s"
 xmlns:xlink="http://www.w3.org/1999/xlink">
 <defs>
  <style type="text/css">
   <![CDATA[
    .fil0 {fill:none}
   ]]>
  </style>
 </defs>
 <g id="Layer1">
`

// Generate renders the elements into a complete SVG document. The
// document's width, height and viewBox are sized to the maximum X and Y
// extents of the transformed content.
func Generate(elems []Element, opts Options) string {
	zoom := opts.zoom()
	lw := opts.lineWidth()
	tx := func(v float64) float64 { return v*zoom + opts.XOffset }
	ty := func(v float64) float64 { return v*zoom + opts.YOffset }

	var body strings.Builder
	var maxX, maxY float64
	extend := func(x, y float64) {
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, e := range elems {
		switch e := e.(type) {
		case Circle:
			cx, cy, r := tx(e.CX), ty(e.CY), e.R*zoom
			fmt.Fprintf(&body, "  <circle class=\"fil0\" style=\"stroke-width:%s;stroke:%s;\" cx=\"%s\" cy=\"%s\" r=\"%s\" />\n",
				num(lw), resolveColor(e.Color), num(cx), num(cy), num(r))
			extend(cx+r, cy+r)
		case Line:
			x1, y1, x2, y2 := tx(e.X1), ty(e.Y1), tx(e.X2), ty(e.Y2)
			fmt.Fprintf(&body, "  <line class=\"fil0\" style=\"stroke-width:%s;stroke:%s;\" x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" />\n",
				num(lw), resolveColor(e.Color), num(x1), num(y1), num(x2), num(y2))
			extend(x1, y1)
			extend(x2, y2)
		case Polyline:
			fmt.Fprintf(&body, "  <polyline class=\"fil0\" style=\"stroke-width:%s;stroke:%s;\" points=\"",
				num(lw), resolveColor(e.Color))
			for _, v := range e.Vertices {
				x, y := tx(v.X), ty(v.Y)
				fmt.Fprintf(&body, "%s,%s ", num(x), num(y))
				extend(x, y)
			}
			body.WriteString("\"/>\n")
		}
	}
	body.WriteString(" </g></svg>")

	return fmt.Sprintf(header, num(maxX), num(maxY)) + body.String()
}

// WriteFile renders the elements and writes the document to path.
func WriteFile(path string, elems []Element, opts Options) error {
	doc := Generate(elems, opts)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

// num formats a coordinate without trailing zeros ("5", "4.8").
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
