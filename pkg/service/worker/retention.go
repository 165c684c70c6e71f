package worker

import (
	"context"
	"time"

	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
)

// RetentionWorker prunes stored assessments and scan results past their
// retention age. Keeping stale answer data around is itself a privacy
// liability, so the server deletes it on a schedule.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
type RetentionWorker struct {
	repo     interfaces.Repository
	maxAge   time.Duration
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewRetentionWorker creates a worker that removes records older than maxAge,
// checking every interval
func NewRetentionWorker(repo interfaces.Repository, maxAge, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{
		repo:     repo,
		maxAge:   maxAge,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background prune loop. It does not block server startup.
func (w *RetentionWorker) Start(ctx context.Context) error {
	logging.Default().Info("Retention worker starting",
		"max_age", w.maxAge.String(),
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *RetentionWorker) Stop() {
	logging.Default().Info("Retention worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Retention worker stopped")
}

func (w *RetentionWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.Prune(ctx); err != nil {
		logging.Default().Error("Initial retention prune failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Prune(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Retention prune failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Retention worker context cancelled")
			return
		}
	}
}

// Prune performs a single prune cycle. Deletion failures on individual
// records are logged and skipped so one bad record cannot wedge the cycle.
func (w *RetentionWorker) Prune(ctx context.Context) error {
	cutoff := time.Now().Add(-w.maxAge)
	var removed int

	assessments, err := w.repo.Assessment().List(ctx)
	if err != nil {
		return err
	}
	for _, a := range assessments {
		if a.UpdatedAt.After(cutoff) {
			continue
		}
		if err := w.repo.Assessment().Delete(ctx, a.ID); err != nil {
			logging.Default().Warn("Failed to prune assessment",
				"id", a.ID, "error", err.Error())
			continue
		}
		removed++
	}

	scans, err := w.repo.Scan().List(ctx)
	if err != nil {
		return err
	}
	for _, s := range scans {
		if s.ScannedAt.After(cutoff) {
			continue
		}
		if err := w.repo.Scan().Delete(ctx, s.ID); err != nil {
			logging.Default().Warn("Failed to prune scan",
				"id", s.ID, "error", err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logging.Default().Info("Retention prune completed",
			"removed", removed,
			"cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}
