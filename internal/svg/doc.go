// Package svg renders traced vector elements into an SVG document.
//
// Elements are explicit tagged variants: Line (two points), Polyline
// (a connected point sequence) and Circle (center plus radius). Legacy
// flat coordinate slices are accepted through FromFlat, which infers the
// variant from the value count the way the original plotter toolchain
// did: 3 bare numbers form a circle, 4 a line, any other even count a
// polyline. Odd counts are malformed and skipped with a warning.
//
// Stroke colors accept a color name, a "#RRGGBB" hex string, or an
// "r,g,b" triple; the latter two are normalized through go-colorful.
package svg
