package workers

import (
	"context"

	"github.com/medichat/go-medichat/internal/config"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/service"
	"github.com/medichat/go-medichat/internal/store"
)

// Workers aggregates all background jobs so the server can start and stop
// them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the maintenance jobs from config. A job with an empty
// schedule is skipped.
func NewWorkers(cfg config.Workers, knowledge service.KnowledgeService, sessions store.SessionStore, log *logger.Logger) *Workers {
	var ws []Worker
	if cfg.SnapshotSchedule != "" {
		ws = append(ws, NewSnapshotWorker(cfg.SnapshotSchedule, knowledge, log))
	}
	if cfg.CleanupSchedule != "" {
		ws = append(ws, NewCleanupWorker(cfg.CleanupSchedule, sessions, log))
	}

	return &Workers{workers: ws}
}

// Run starts every worker. Errors in individual cron expressions are
// logged by the workers themselves; Run never blocks.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts every worker, waiting for in-flight runs up to ctx's
// deadline. The first error is returned after all workers were asked to
// stop.
func (w *Workers) Stop(ctx context.Context) error {
	var firstErr error
	for _, worker := range w.workers {
		if err := worker.Stop(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
