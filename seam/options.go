package seam

import "log/slog"

// Option configures a Carver.
type Option func(*Carver)

// WithLogger sets the logger for per-iteration debug output.
// By default the carve package logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *Carver) {
		c.logger = l
	}
}

// WithProgress registers fn to be called after every removed column with
// the number of columns removed so far and the total requested.
func WithProgress(fn func(done, total int)) Option {
	return func(c *Carver) {
		c.progress = fn
	}
}

// WithWorkers sets the number of goroutines used for energy computation.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(c *Carver) {
		c.workers = max(n, 1)
	}
}
