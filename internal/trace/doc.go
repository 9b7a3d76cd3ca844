// Package trace converts a raster image into ordered vector polylines.
//
// The pipeline runs in four stages, strictly forward:
//
//  1. Eligibility classification: every pixel is reduced to a brightness
//     proxy and tested against the requested modes (fill, outline,
//     boundary). The union of all passes forms the working set.
//  2. Optional spatial indexing: the working set is bucketed into a
//     fixed-size grid so that nearest-point queries on large, sparse
//     images only scan one bucket in the common case.
//  3. Contour tracing: a greedy walk repeatedly seeds a new line at the
//     eligible pixel nearest the previous line's endpoint, then follows
//     8-connected neighbors until none remain, consuming pixels as it
//     goes. The scan order is biased by the last travel direction, which
//     keeps walks hugging one side of a region instead of zig-zagging.
//  4. Post-processing: single-point lines are expanded into short
//     segments, exact step repetitions on straight runs are collapsed,
//     and an optional inertial filter smooths jagged paths.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at top-left, X increasing
// rightward and Y increasing downward. Traced coordinates are integers;
// post-processing may introduce fractional coordinates.
//
// # Determinism
//
// For a fixed image and configuration the output is fully deterministic:
// nearest-point ties are broken by ascending X then ascending Y, the
// heading bias starts at 0 (east), and the smoothing filter is a pure
// function of its inputs.
package trace
