// Package parallel splits per-pixel image work into horizontal row bands
// and runs them on a long-lived pool of workers.
//
// Every output row is written by exactly one band, so callers that compute
// each sample independently get results identical to a sequential loop.
package parallel

// MinBandRows is the smallest band handed to a worker. Smaller images run
// as a single band.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.Y1 - b.Y0 }

// SplitRows divides height rows into at most n contiguous bands of at least
// MinBandRows rows each (the last band may be shorter). It returns nil for
// a non-positive height.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(n, 1)
	n = min(n, max(height/MinBandRows, 1))

	bands := make([]Band, 0, n)
	per := height / n
	extra := height % n
	y := 0
	for i := range n {
		rows := per
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// ForEachBand splits height rows into at most workers bands, runs fn once
// per band and returns when all bands are done. With workers <= 1,
// or when the image yields a single band, fn runs on the calling goroutine.
// Otherwise the bands go to the Shared pool.
func ForEachBand(height, workers int, fn func(Band)) {
	bands := SplitRows(height, workers)
	if len(bands) == 0 {
		return
	}
	if workers <= 1 || len(bands) == 1 {
		for _, b := range bands {
			fn(b)
		}
		return
	}
	Shared().Run(bands, fn)
}
