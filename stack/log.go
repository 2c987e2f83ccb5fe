package stack

import (
	"io"
	"log/slog"
	"os"
)

// logLevel controls the engine's log level. The default, LevelInfo,
// suppresses the engine's Debug records.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for layout managers.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

var engineLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogOutput sends the records of managers created afterwards to w.
func SetLogOutput(w io.Writer) {
	engineLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}
