package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/matthieukhl/crmd/internal/store"
)

// Heartbeat appends a liveness line to a log file and pings the store. It is
// an external batch task: it reads through the same store as the API but is
// not part of the request path.
type Heartbeat struct {
	store *store.Store
	log   *zap.SugaredLogger
	path  string
}

func NewHeartbeat(st *store.Store, log *zap.SugaredLogger, path string) *Heartbeat {
	return &Heartbeat{store: st, log: log.With("job", "heartbeat"), path: path}
}

func (h *Heartbeat) Run(ctx context.Context) error {
	timestamp := time.Now().Format("02/01/2006-15:04:05")
	line := fmt.Sprintf("%s CRM is alive\n", timestamp)
	if err := appendLine(h.path, line); err != nil {
		return fmt.Errorf("failed to write heartbeat log: %w", err)
	}

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warnw("store unreachable during heartbeat", "error", err)
		return err
	}

	h.log.Debugw("heartbeat recorded", "path", h.path)
	return nil
}

func appendLine(path, line string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line)
	return err
}
