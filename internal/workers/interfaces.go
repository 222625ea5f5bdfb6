// Package workers runs the background maintenance jobs of the server:
// periodic vector index snapshots and expired assessment session cleanup.
// Jobs are scheduled with cron expressions and run until stopped.
package workers

import "context"

// Worker is a background job with its own schedule. Run starts the
// worker's scheduler and returns immediately; Stop halts scheduling and
// blocks until an in-flight run finishes or ctx is done.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}
