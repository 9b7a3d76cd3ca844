package trace

import (
	"math"
	"reflect"
	"testing"
)

func TestExpandSingles(t *testing.T) {
	lines := []Polyline{
		{{5, 5}},
		{{1, 1}, {2, 2}},
	}
	expandSingles(lines, 0.2)

	want := Polyline{{5 - 0.2, 5}, {5 + 0.2, 5}}
	if !reflect.DeepEqual(lines[0], want) {
		t.Errorf("single point: got %v, want %v", lines[0], want)
	}
	if len(lines[1]) != 2 {
		t.Errorf("two-point line must not change, got %v", lines[1])
	}
}

func TestReduceCollinear(t *testing.T) {
	tests := []struct {
		name string
		in   Polyline
		want Polyline
	}{
		{
			"straight run collapses to endpoints",
			Polyline{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
			Polyline{{0, 0}, {4, 0}},
		},
		{
			"corner preserved",
			Polyline{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
			Polyline{{0, 0}, {2, 0}, {2, 2}},
		},
		{
			"unequal step lengths preserved",
			Polyline{{0, 0}, {1, 0}, {3, 0}},
			Polyline{{0, 0}, {1, 0}, {3, 0}},
		},
		{
			"diagonal run collapses",
			Polyline{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
			Polyline{{0, 0}, {3, 3}},
		},
		{
			"short lines untouched",
			Polyline{{0, 0}, {5, 5}},
			Polyline{{0, 0}, {5, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceCollinear(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReduceCollinear_Idempotent(t *testing.T) {
	lines := []Polyline{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}, {4, 3}, {5, 4}},
		{{0, 0}, {1, 1}, {2, 2}, {2, 3}},
		{{0, 0}, {2, 0}, {4, 0}, {6, 0}},
	}
	for _, line := range lines {
		once := reduceCollinear(line)
		twice := reduceCollinear(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("not idempotent for %v:\nonce  %v\ntwice %v", line, once, twice)
		}
	}
}

func TestSmooth_EndpointPreserved(t *testing.T) {
	line := Polyline{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	configs := []filterConfig{
		{mass: 10, subSteps: 6, friction: 0.6},
		{mass: 2, subSteps: 3, friction: 0.9},
		{mass: 50, subSteps: 12, friction: 0.3},
	}
	for _, f := range configs {
		out := f.smooth(line)
		last := out[len(out)-1]
		if last != line[len(line)-1] {
			t.Errorf("mass=%v: endpoint %v, want %v exactly", f.mass, last, line[len(line)-1])
		}
	}
}

func TestSmooth_OutputLength(t *testing.T) {
	line := Polyline{{0, 0}, {5, 0}, {5, 5}}
	f := filterConfig{mass: 10, subSteps: 6, friction: 0.6}
	out := f.smooth(line)

	// One trajectory sample per sub-step per target vertex, plus the
	// verbatim final vertex.
	want := (len(line)-1)*f.subSteps + 1
	if len(out) != want {
		t.Errorf("length: got %d, want %d", len(out), want)
	}
}

func TestSmooth_Deterministic(t *testing.T) {
	line := Polyline{{0, 0}, {3, 4}, {7, 1}, {2, 9}}
	f := filterConfig{mass: 10, subSteps: 6, friction: 0.6}

	first := f.smooth(line)
	second := f.smooth(line)
	if !reflect.DeepEqual(first, second) {
		t.Error("smoothing is not deterministic")
	}
}

func TestSmooth_ApproachesTarget(t *testing.T) {
	// With enough sub-steps the mover settles close to each target; the
	// trajectory must head toward the single target, not away from it.
	line := Polyline{{0, 0}, {10, 0}}
	f := filterConfig{mass: 5, subSteps: 40, friction: 0.6}
	out := f.smooth(line)

	settled := out[len(out)-2]
	if math.Abs(settled.X-10) > 0.5 || math.Abs(settled.Y) > 0.5 {
		t.Errorf("mover settled at %v, want near (10,0)", settled)
	}
}

func TestSmooth_ShortLinesPassThrough(t *testing.T) {
	f := filterConfig{mass: 10, subSteps: 6, friction: 0.6}
	single := Polyline{{3, 3}}
	if got := f.smooth(single); !reflect.DeepEqual(got, single) {
		t.Errorf("single point: got %v, want unchanged", got)
	}
}

func TestFilterConfigDefaults(t *testing.T) {
	var f filterConfig
	f.applyDefaults()
	if f.mass != 10 || f.subSteps != 6 || f.friction != 0.6 {
		t.Errorf("defaults: got %+v", f)
	}
}

func TestAppendCalibration(t *testing.T) {
	lines := appendCalibration(nil, 100, 80, 0.5)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := Polyline{{100, 80}, {99.5, 79.5}}
	if !reflect.DeepEqual(lines[0], want) {
		t.Errorf("calibration: got %v, want %v", lines[0], want)
	}
}
