package carve

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports every level as
// disabled, so log calls skip building attributes.
var silent = slog.New(slog.DiscardHandler)

// current is read on every Correlate call and may be swapped at any time.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs l as the logger shared by carve, filter, seam and
// imageio. Pass nil to go back to discarding output, which is the default.
//
// Library code logs at two levels:
//   - [slog.LevelDebug]: one line per correlation (shape, kernel size,
//     workers) and per removed seam
//   - [slog.LevelInfo]: progress reported by the carve command
//
// To see everything on stderr:
//
//	carve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger. It never returns nil.
func Logger() *slog.Logger {
	return current.Load()
}
