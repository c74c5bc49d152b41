// Package workers provides the application's background workers and a
// Workers aggregate that manages them as a group.
//
// The only worker today is the retention sweep, which deletes encrypted
// check-in records past their expiry on a fixed interval.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job's goroutine; the job runs until ctx is cancelled
// or Stop is called. Stop blocks until the goroutine has fully exited and
// is safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// ExpiredPurger removes check-in records past their retention window and
// reports how many were deleted.
type ExpiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
