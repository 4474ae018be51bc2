// Package carve provides image grids and a 2D correlation engine for
// kernel filters and content-aware resizing.
//
// # Overview
//
// carve works on decoded images only: a width, a height and a flat
// row-major sample buffer. File formats live in the imageio package.
//
//	img, _ := carve.NewGrayFromPix(3, 1, []float64{10, 20, 30})
//	k, _ := carve.NewKernel(3, []float64{
//	    0, 0, 0,
//	    1, 0, 0,
//	    0, 0, 0,
//	})
//	out, _ := carve.Correlate(img, k) // shift right: 10, 10, 20
//	carve.Finish(out)
//
// # Edges
//
// Every lookup outside the image is clamped to the nearest edge pixel.
// There is no zero padding and no wraparound; this is the only boundary
// policy in the module and it affects every filter near the borders.
//
// # Architecture
//
// The module is organized into:
//   - carve: Gray and Color grids, Kernel, Correlate, Finish
//   - filter: Invert, Blur, Sharpen, Edges, PerChannel, Cascade
//   - seam: energy maps, minimum seams and the Carve loop
//   - imageio: decoding and encoding through image/* and golang.org/x/image
//   - cmd/carve: command-line driver
//
// # Logging
//
// carve is silent by default. See SetLogger.
package carve
