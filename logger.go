package img

import (
	"log/slog"

	"github.com/gogpu/img/internal/logging"
)

// SetLogger configures the logger for img and all its sub-packages.
// By default, img produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by img:
//   - [slog.LevelDebug]: materialization strategy and chunking, filter
//     entry, codec formats
//
// Example:
//
//	img.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by img.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
