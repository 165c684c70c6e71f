package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
	"github.com/privacy-lab/tikun13/pkg/service/worker"
)

func TestRetentionWorker_Prune(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	fresh, err := repo.Assessment().Create(ctx, &model.Assessment{})
	gt.NoError(t, err).Required()

	second, err := repo.Assessment().Create(ctx, &model.Assessment{})
	gt.NoError(t, err).Required()

	oldScan := &model.WebScanResult{
		ID:        model.NewScanID(),
		URL:       "https://example.co.il",
		ScannedAt: time.Now().Add(-48 * time.Hour),
	}
	gt.NoError(t, repo.Scan().Save(ctx, oldScan)).Required()

	freshScan := &model.WebScanResult{
		ID:        model.NewScanID(),
		URL:       "https://example.co.il/fresh",
		ScannedAt: time.Now(),
	}
	gt.NoError(t, repo.Scan().Save(ctx, freshScan)).Required()

	// Both assessments were just created; a generous max age must keep them
	w := worker.NewRetentionWorker(repo, 24*time.Hour, time.Hour)
	gt.NoError(t, w.Prune(ctx))

	_, err = repo.Assessment().Get(ctx, fresh.ID)
	gt.NoError(t, err)
	_, err = repo.Assessment().Get(ctx, second.ID)
	gt.NoError(t, err)

	// The stale scan is past the retention age
	_, err = repo.Scan().Get(ctx, oldScan.ID)
	gt.Error(t, err)
	_, err = repo.Scan().Get(ctx, freshScan.ID)
	gt.NoError(t, err)
}

func TestRetentionWorker_StartStop(t *testing.T) {
	repo := memory.New()
	w := worker.NewRetentionWorker(repo, time.Hour, time.Hour)

	gt.NoError(t, w.Start(context.Background()))
	w.Stop()
}
