package trace

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoEligiblePixels is returned when no pixel satisfies the requested
// method/invert combination. It is the only run-terminating condition; a
// run never produces partial output.
var ErrNoEligiblePixels = errors.New("no eligible pixels found")

// Vertex is a point of a traced polyline. Traced vertices carry integer
// values; post-processing may introduce fractional ones.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polyline is an ordered, non-empty sequence of vertices. Insertion order
// is trace order, which is the manufacturing order for plotting devices.
type Polyline []Vertex

// Config controls a tracing run.
type Config struct {
	// Mode selects the eligibility passes (required, see ParseMode).
	Mode Mode

	// Invert flips the brightness-threshold polarity, for dark content on
	// a light background.
	Invert bool

	// ExpandSingles is the half-width used to replace single-point lines
	// with short horizontal segments. 0 disables the step.
	ExpandSingles float64

	// Autoreduce collapses exact step repetitions on straight runs.
	Autoreduce bool

	// Filtering enables the inertial smoothing filter with the Mass,
	// SubSteps and Friction parameters.
	Filtering bool
	Mass      float64
	SubSteps  int
	Friction  float64

	// GridCellW/GridCellH, when both positive, enable the spatial index
	// with buckets of that pixel size.
	GridCellW int
	GridCellH int

	// Calibrator, when non-zero, appends a reference segment of that
	// length anchored to the image's bottom-right corner.
	Calibrator float64

	// Logf, when non-nil, receives progress lines during long passes.
	Logf func(format string, args ...any)
}

// Neighbor scan order: E, NE, N, NW, W, SW, S, SE. The walk cycles
// through all 8 starting at the current heading.
var directions = [8]Point{
	{1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// tracer holds the state of one run. The heading is carried across line
// boundaries for the whole run, not reset per line: biasing each scan to
// start from the reverse of the last accepted direction keeps contour
// walks hugging one side of a region.
type tracer struct {
	set     *workingSet
	heading int
	lines   []Polyline
	logf    func(format string, args ...any)
}

// Trace classifies the image under cfg and walks every connected region
// into ordered polylines, consuming the working set until it is empty.
// The total vertex count across all returned polylines equals the initial
// working-set size. Returns ErrNoEligiblePixels when classification
// yields nothing.
func Trace(img image.Image, cfg Config) ([]Polyline, error) {
	if cfg.Mode == 0 {
		return nil, fmt.Errorf("no tracing mode selected")
	}
	pts := classify(img, cfg.Mode, cfg.Invert, cfg.Logf)
	if len(pts) == 0 {
		return nil, fmt.Errorf("method %q, invert=%v: %w", cfg.Mode, cfg.Invert, ErrNoEligiblePixels)
	}
	set := newWorkingSet(pts, img.Bounds().Dx(), img.Bounds().Dy(), cfg.GridCellW, cfg.GridCellH)
	if cfg.Logf != nil {
		cfg.Logf("found %d eligible pixels", set.size())
	}

	tr := &tracer{set: set, logf: cfg.Logf}
	for tr.set.size() > 0 {
		tr.traceLine()
	}
	return tr.lines, nil
}

// traceLine runs one SeedSearch followed by one Walking phase, appending
// the finished line to the run's collection.
func (t *tracer) traceLine() {
	if t.logf != nil {
		t.logf("tracing, %d points remaining", t.set.size())
	}

	// Seed at the eligible point nearest the previous line's endpoint, so
	// a plotter travels the least between lines. The very first line
	// seeds from the top-left corner.
	origin := Point{0, 0}
	if n := len(t.lines); n > 0 {
		last := t.lines[n-1][len(t.lines[n-1])-1]
		origin = Point{int(last.X), int(last.Y)}
	}
	start := t.set.nearest(origin)
	t.set.remove(start)

	line := Polyline{{float64(start.X), float64(start.Y)}}
	cur := start
	for {
		next, dir, ok := t.step(cur)
		if !ok {
			break
		}
		t.set.remove(next)
		line = append(line, Vertex{float64(next.X), float64(next.Y)})
		// Bias the next scan to begin from the reverse of the direction
		// just taken.
		t.heading = (dir + 4) % 8
		cur = next
	}
	t.lines = append(t.lines, line)
}

// step scans the 8 compass neighbors of cur in rotating order starting at
// the current heading and returns the first one still in the working set.
func (t *tracer) step(cur Point) (Point, int, bool) {
	for i := 0; i < 8; i++ {
		dir := (t.heading + i) % 8
		p := Point{cur.X + directions[dir].X, cur.Y + directions[dir].Y}
		if t.set.contains(p) {
			return p, dir, true
		}
	}
	return Point{}, 0, false
}

// Vectorize runs the full pipeline: tracing, post-processing in the fixed
// order (single-point expansion, collinear-run reduction, inertial
// smoothing), and the optional calibration mark.
func Vectorize(img image.Image, cfg Config) ([]Polyline, error) {
	lines, err := Trace(img, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.ExpandSingles != 0 {
		expandSingles(lines, cfg.ExpandSingles)
	}
	if cfg.Autoreduce {
		for i, line := range lines {
			lines[i] = reduceCollinear(line)
		}
	}
	if cfg.Filtering {
		f := filterConfig{mass: cfg.Mass, subSteps: cfg.SubSteps, friction: cfg.Friction}
		f.applyDefaults()
		for i, line := range lines {
			lines[i] = f.smooth(line)
		}
	}
	if cfg.Calibrator != 0 {
		lines = appendCalibration(lines, img.Bounds().Dx(), img.Bounds().Dy(), cfg.Calibrator)
	}
	return lines, nil
}
