package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

type scanRepository struct {
	mu    sync.RWMutex
	scans map[model.ScanID]*model.WebScanResult
	order []model.ScanID
}

func newScanRepository() *scanRepository {
	return &scanRepository{
		scans: make(map[model.ScanID]*model.WebScanResult),
	}
}

func (r *scanRepository) Save(ctx context.Context, result *model.WebScanResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *result
	if _, exists := r.scans[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.scans[stored.ID] = &stored
	return nil
}

func (r *scanRepository) Get(ctx context.Context, id model.ScanID) (*model.WebScanResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, exists := r.scans[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "scan not found", goerr.V("id", id))
	}
	out := *result
	return &out, nil
}

func (r *scanRepository) Delete(ctx context.Context, id model.ScanID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.scans[id]; !exists {
		return goerr.Wrap(ErrNotFound, "scan not found", goerr.V("id", id))
	}
	delete(r.scans, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *scanRepository) List(ctx context.Context) ([]*model.WebScanResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.WebScanResult, 0, len(r.order))
	for _, id := range r.order {
		result := *r.scans[id]
		out = append(out, &result)
	}
	return out, nil
}
