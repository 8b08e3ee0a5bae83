package job

import (
	"context"
	log "log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/config"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/logger"

	"github.com/google/uuid"
)

// TempCleanJob removes spooled upload files older than a day. Normal
// request handling deletes its own temp files; this catches the ones a
// crash left behind.
type TempCleanJob struct{}

func NewTempCleanJob() *TempCleanJob {
	return &TempCleanJob{}
}

func (s *TempCleanJob) Run() {
	traceID := "job-temp-clean-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	tempDir := config.Cfg.Upload.TempDir
	if tempDir == "" {
		return
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		log.ErrorContext(ctx, "read temp dir failed", "dir", tempDir, "err", err)
		return
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(tempDir, entry.Name())
		if err = os.Remove(path); err != nil {
			log.WarnContext(ctx, "remove stale temp file failed", "path", path, "err", err)
			continue
		}
		count++
	}

	if count > 0 {
		log.InfoContext(ctx, "stale temp files removed", "count", count)
	}
}
