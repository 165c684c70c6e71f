package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

type ScanUseCase struct {
	repo    interfaces.Repository
	fetcher *webscan.Fetcher
}

func NewScanUseCase(repo interfaces.Repository, fetcher *webscan.Fetcher) *ScanUseCase {
	return &ScanUseCase{
		repo:    repo,
		fetcher: fetcher,
	}
}

// ScanURL fetches a website, extracts heuristic compliance signals, scores
// them and stores the result. A fetch failure still yields a stored,
// error-marked result so the caller can render the failed scan.
func (uc *ScanUseCase) ScanURL(ctx context.Context, pageURL string) (*model.WebScanResult, error) {
	result := uc.fetcher.Scan(ctx, pageURL)
	if result.Failed {
		logging.From(ctx).Warn("website scan failed",
			"url", pageURL,
			"error", result.Error,
		)
	}

	if err := uc.repo.Scan().Save(ctx, result); err != nil {
		return nil, goerr.Wrap(err, "failed to store scan result", goerr.V("url", pageURL))
	}
	return result, nil
}

// Get retrieves a stored scan result
func (uc *ScanUseCase) Get(ctx context.Context, id model.ScanID) (*model.WebScanResult, error) {
	return uc.repo.Scan().Get(ctx, id)
}

// List retrieves all stored scan results
func (uc *ScanUseCase) List(ctx context.Context) ([]*model.WebScanResult, error) {
	return uc.repo.Scan().List(ctx)
}

// Delete removes a stored scan result
func (uc *ScanUseCase) Delete(ctx context.Context, id model.ScanID) error {
	return uc.repo.Scan().Delete(ctx, id)
}
