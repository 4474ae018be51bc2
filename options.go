package carve

import "log/slog"

// Option configures how Correlate executes. Options never change the
// numeric result, only how the work is scheduled and reported.
//
// Example:
//
//	// Split large images across four workers
//	out, err := carve.Correlate(img, k, carve.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for correlation.
type options struct {
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the default correlation options: one worker and
// the package logger.
func defaultOptions() options {
	return options{
		workers: 1,
		logger:  nil, // resolved to Logger() at call time
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithWorkers sets the number of goroutines used to process row bands.
// Values below 1 are treated as 1 (synchronous).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithLogger overrides the package logger for a single call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
