// Package imaging is the image-loading collaborator of the tracing core.
//
// It decodes raster images from disk (PNG, JPEG, GIF, BMP, TIFF),
// reports basic metadata, and offers an optional preprocessing pass
// (uniform scaling, Gaussian blur, hard threshold) that cleans up noisy
// scans before eligibility classification. It also writes diagnostic
// overlays: copies of the input with the detected pixel set or the traced
// lines painted on top, for inspecting intermediate pipeline stages.
//
// The source image handed to the tracing core is never mutated; overlays
// always draw on a fresh copy.
package imaging
