// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package workers

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/store"
)

// purgeTimeout bounds a single cleanup pass.
const purgeTimeout = 30 * time.Second

// CleanupWorker drops assessment sessions that have been idle past their
// TTL. Redis-backed stores expire natively, so their PurgeExpired is a
// no-op and this worker only matters for the in-memory store.
type CleanupWorker struct {
	schedule string
	sessions store.SessionStore
	cron     *cron.Cron
	logger   *logger.Logger
}

func NewCleanupWorker(schedule string, sessions store.SessionStore, log *logger.Logger) *CleanupWorker {
	return &CleanupWorker{
		schedule: schedule,
		sessions: sessions,
		cron:     cron.New(),
		logger:   log,
	}
}

func (w *CleanupWorker) Run() {
	_, err := w.cron.AddFunc(w.schedule, w.purge)
	if err != nil {
		w.logger.Err(err).Str("schedule", w.schedule).Msg("invalid cleanup schedule, session cleanup disabled")
		return
	}

	w.cron.Start()
	w.logger.Info().Str("schedule", w.schedule).Msg("session cleanup worker started")
}

func (w *CleanupWorker) Stop(ctx context.Context) error {
	select {
	case <-w.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *CleanupWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	dropped, err := w.sessions.PurgeExpired(ctx)
	if err != nil {
		w.logger.Err(err).Msg("session cleanup ended with error")
		return
	}
	if dropped > 0 {
		w.logger.Info().Int("dropped", dropped).Msg("expired assessment sessions purged")
	}
}
