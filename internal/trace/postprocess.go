package trace

// expandSingles replaces every single-point line with a two-point
// horizontal segment of half-width delta centered on the original point,
// so plotters draw a visible mark instead of an undrawable dot.
func expandSingles(lines []Polyline, delta float64) {
	for i, line := range lines {
		if len(line) == 1 {
			p := line[0]
			lines[i] = Polyline{{p.X - delta, p.Y}, {p.X + delta, p.Y}}
		}
	}
}

// reduceCollinear removes interior vertices whose incoming step exactly
// equals the following step. Only exact repetitions collapse; collinear
// runs with unequal step lengths are preserved. Lines shorter than 3
// vertices pass through unchanged.
func reduceCollinear(line Polyline) Polyline {
	if len(line) <= 2 {
		return line
	}
	surplus := make(map[int]bool)
	for p := 1; p < len(line)-1; p++ {
		in := Vertex{line[p].X - line[p-1].X, line[p].Y - line[p-1].Y}
		out := Vertex{line[p+1].X - line[p].X, line[p+1].Y - line[p].Y}
		if in == out {
			surplus[p] = true
		}
	}
	if len(surplus) == 0 {
		return line
	}
	reduced := make(Polyline, 0, len(line)-len(surplus))
	for i, v := range line {
		if !surplus[i] {
			reduced = append(reduced, v)
		}
	}
	return reduced
}

// filterConfig holds the inertial smoothing parameters: a point mass is
// pulled toward each successive target vertex by a force scaled by 1/mass
// and damped by friction on every sub-step.
type filterConfig struct {
	mass     float64
	subSteps int
	friction float64
}

func (f *filterConfig) applyDefaults() {
	if f.mass == 0 {
		f.mass = 10
	}
	if f.subSteps == 0 {
		f.subSteps = 6
	}
	if f.friction == 0 {
		f.friction = 0.6
	}
}

// smooth runs the discretized point-mass simulation over the line,
// accumulating the mover's trajectory. The literal last input vertex is
// appended verbatim, so the traced path's true endpoint survives exactly.
func (f *filterConfig) smooth(line Polyline) Polyline {
	if len(line) < 2 {
		return line
	}
	mover := line[0]
	var vx, vy float64
	out := make(Polyline, 0, (len(line)-1)*f.subSteps+1)
	for _, target := range line[1:] {
		for s := 0; s < f.subSteps; s++ {
			vx += (target.X - mover.X) / f.mass
			vy += (target.Y - mover.Y) / f.mass
			vx *= f.friction
			vy *= f.friction
			mover.X += vx
			mover.Y += vy
			out = append(out, mover)
		}
	}
	return append(out, line[len(line)-1])
}

// appendCalibration adds one fixed reference segment from the image's
// bottom-right corner to a point offset up-and-left by length along both
// axes. It is a known-length alignment mark for downstream tooling, not
// derived from image content.
func appendCalibration(lines []Polyline, width, height int, length float64) []Polyline {
	w, h := float64(width), float64(height)
	return append(lines, Polyline{{w, h}, {w - length, h - length}})
}
