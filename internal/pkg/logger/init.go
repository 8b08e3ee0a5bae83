package logger

import (
	log "log/slog"
	"os"
)

// InitLogger installs the process-wide slog logger: JSON records to
// stdout, wrapped so every entry carries the request trace id.
func InitLogger() {
	h := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})
	log.SetDefault(log.New(&ContextHandler{h}))
}
