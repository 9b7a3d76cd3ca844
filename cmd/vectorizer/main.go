package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/plotpath/vectorizer/internal/imaging"
	"github.com/plotpath/vectorizer/internal/svg"
	"github.com/plotpath/vectorizer/internal/trace"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		in         = flag.String("in", "", "input raster image (png, jpeg, gif, bmp, tiff)")
		out        = flag.String("out", "", "output SVG file")
		method     = flag.String("method", "b", "eligibility passes, combination of 'f' (fill), 'o' (outline), 'b' (boundary)")
		invert     = flag.Bool("invert", false, "invert pixel eligibility (dark content on light background)")
		expand     = flag.Float64("expand", 0.2, "half-width for expanding single-point lines, 0 disables")
		reduce     = flag.Bool("autoreduce", true, "collapse redundant points on straight runs")
		filter     = flag.Bool("filter", false, "enable inertial smoothing of traced lines")
		mass       = flag.Float64("mass", 10, "smoothing mass factor, higher smooths more")
		substeps   = flag.Int("substeps", 6, "smoothing sub-steps per vertex")
		friction   = flag.Float64("friction", 0.6, "smoothing friction factor (0-1]")
		grid       = flag.String("grid", "", "spatial index cell size as WxH (e.g. 256x256), empty disables")
		calibrator = flag.Float64("calibrator", 0.5, "length of the bottom-right alignment mark, 0 disables")
		zoom       = flag.Float64("zoom", 1, "scale factor applied at SVG generation")
		lineWidth  = flag.Float64("linewidth", 1, "SVG stroke width")
		strokeCol  = flag.String("color", "", "stroke color: name, #RRGGBB or r,g,b (default black)")
		scale      = flag.Float64("scale", 1, "pre-trace uniform image scaling factor")
		blur       = flag.Float64("blur", 0, "pre-trace Gaussian blur radius, 0 disables")
		threshold  = flag.Uint("threshold", 0, "pre-trace black/white threshold level (1-255), 0 disables")
		diag       = flag.Bool("diag", false, "write diagnostic overlay PNGs next to the output")
		verbose    = flag.Bool("verbose", false, "log progress to stderr")
		version    = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("vectorizer %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *threshold > 255 {
		log.Fatalf("threshold %d out of range (1-255)", *threshold)
	}

	mode, err := trace.ParseMode(*method)
	if err != nil {
		log.Fatalf("invalid -method: %v", err)
	}
	cellW, cellH, err := parseGrid(*grid)
	if err != nil {
		log.Fatalf("invalid -grid: %v", err)
	}

	img, info, err := imaging.LoadInfo(*in)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose {
		log.Printf("loaded %s: %dx%d %s (%d bytes)", *in, info.Width, info.Height, info.Format, info.FileSizeBytes)
	}

	img, err = imaging.Prepare(img, imaging.PrepareOptions{
		Scale:      *scale,
		BlurRadius: *blur,
		Threshold:  uint8(*threshold),
	})
	if err != nil {
		log.Fatalf("preprocessing failed: %v", err)
	}

	cfg := trace.Config{
		Mode:          mode,
		Invert:        *invert,
		ExpandSingles: *expand,
		Autoreduce:    *reduce,
		Filtering:     *filter,
		Mass:          *mass,
		SubSteps:      *substeps,
		Friction:      *friction,
		GridCellW:     cellW,
		GridCellH:     cellH,
		Calibrator:    *calibrator,
	}
	if *verbose {
		cfg.Logf = log.Printf
	}

	if *diag {
		pts := trace.EligiblePixels(img, mode, *invert)
		if err := imaging.SaveDetection(img, pts, *out+".detection.png"); err != nil {
			log.Printf("%v", err)
		}
	}

	lines, err := trace.Vectorize(img, cfg)
	if err != nil {
		if errors.Is(err, trace.ErrNoEligiblePixels) {
			log.Fatalf("nothing to trace: %v", err)
		}
		log.Fatalf("tracing failed: %v", err)
	}
	if *verbose {
		log.Printf("traced %d lines", len(lines))
	}

	if *diag {
		if err := imaging.SaveTrace(img, lines, *out+".trace.png"); err != nil {
			log.Printf("%v", err)
		}
	}

	elems := svg.FromLines(lines, *strokeCol)
	opts := svg.Options{Zoom: *zoom, LineWidth: *lineWidth}
	if err := svg.WriteFile(*out, elems, opts); err != nil {
		log.Fatalf("%v", err)
	}
	if *verbose {
		log.Printf("wrote %s", *out)
	}
}

// parseGrid parses a "WxH" cell size; an empty string disables indexing.
func parseGrid(s string) (int, int, error) {
	if s == "" {
		return 0, 0, nil
	}
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("cell size must be positive, got %dx%d", w, h)
	}
	return w, h, nil
}
