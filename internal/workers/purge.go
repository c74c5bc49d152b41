// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/fiumana/guestdesk/internal/config"
	"github.com/fiumana/guestdesk/internal/logger"
)

type purgeWorker struct {
	purger ExpiredPurger
	cfg    config.Workers
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPurgeWorker creates a worker that deletes expired check-in records on a
// ticker. The worker is idle until Start is called.
func NewPurgeWorker(purger ExpiredPurger, cfg config.Workers, logger *logger.Logger) Worker {
	return &purgeWorker{purger: purger, cfg: cfg, logger: logger}
}

// Start implements Worker. It stops any previously running sweep, then
// launches a background goroutine that purges expired records every
// PurgeInterval. If the interval is zero or negative it defaults to
// 24 hours. The goroutine exits when ctx is cancelled or Stop is called.
func (p *purgeWorker) Start(ctx context.Context) {
	interval := p.cfg.PurgeInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.sweep(jobCtx)
			}
		}
	}()
}

// sweep runs one purge pass bounded by PurgeTimeout so a stuck store call
// cannot wedge the worker.
func (p *purgeWorker) sweep(ctx context.Context) {
	timeout := p.cfg.PurgeTimeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	deleted, err := p.purger.PurgeExpired(runCtx)
	if err != nil {
		p.logger.Error().Err(err).
			Str("func", "purgeWorker.sweep").
			Msg("retention sweep failed")
		return
	}

	p.logger.Info().
		Str("func", "purgeWorker.sweep").
		Int64("deleted", deleted).
		Msg("retention sweep completed")
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the worker
// is not running (no-op in that case).
func (p *purgeWorker) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
