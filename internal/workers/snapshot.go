// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package workers

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/service"
)

// SnapshotWorker periodically persists the vector index so a restarted
// server can skip the full re-embedding pass.
type SnapshotWorker struct {
	schedule  string
	knowledge service.KnowledgeService
	cron      *cron.Cron
	logger    *logger.Logger
}

func NewSnapshotWorker(schedule string, knowledge service.KnowledgeService, log *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		schedule:  schedule,
		knowledge: knowledge,
		cron:      cron.New(),
		logger:    log,
	}
}

// Run registers the snapshot job and starts the scheduler. An invalid
// cron expression disables the worker and is logged, not fatal.
func (w *SnapshotWorker) Run() {
	_, err := w.cron.AddFunc(w.schedule, w.snapshot)
	if err != nil {
		w.logger.Err(err).Str("schedule", w.schedule).Msg("invalid snapshot schedule, snapshots disabled")
		return
	}

	w.cron.Start()
	w.logger.Info().Str("schedule", w.schedule).Msg("index snapshot worker started")
}

// Stop halts scheduling and waits for an in-flight snapshot to finish,
// then writes one final snapshot so no recent documents are lost.
func (w *SnapshotWorker) Stop(ctx context.Context) error {
	select {
	case <-w.cron.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	return w.knowledge.SaveSnapshot()
}

func (w *SnapshotWorker) snapshot() {
	if err := w.knowledge.SaveSnapshot(); err != nil {
		w.logger.Err(err).Msg("index snapshot ended with error")
		return
	}

	w.logger.Debug().Msg("index snapshot written")
}
