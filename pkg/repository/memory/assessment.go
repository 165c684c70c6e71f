package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[model.AssessmentID]*model.Assessment
	order       []model.AssessmentID
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[model.AssessmentID]*model.Assessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := cloneAssessment(a)
	if created.ID == "" {
		created.ID = model.NewAssessmentID()
	}
	now := time.Now().UTC()
	if created.StartTime.IsZero() {
		created.StartTime = now
	}
	created.UpdatedAt = now

	if _, exists := r.assessments[created.ID]; !exists {
		r.order = append(r.order, created.ID)
	}
	r.assessments[created.ID] = created
	return cloneAssessment(created), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id model.AssessmentID) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}
	return cloneAssessment(a), nil
}

func (r *assessmentRepository) List(ctx context.Context) ([]*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Assessment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneAssessment(r.assessments[id]))
	}
	return out, nil
}

func (r *assessmentRepository) Update(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assessments[a.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", a.ID))
	}

	updated := cloneAssessment(a)
	updated.UpdatedAt = time.Now().UTC()
	r.assessments[updated.ID] = updated
	return cloneAssessment(updated), nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id model.AssessmentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.assessments[id]; !exists {
		return goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}
	delete(r.assessments, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// cloneAssessment copies an assessment so callers cannot mutate stored state
func cloneAssessment(a *model.Assessment) *model.Assessment {
	out := *a
	out.Answers = a.Answers.Clone()
	if a.Result != nil {
		result := *a.Result
		out.Result = &result
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		out.CompletedAt = &t
	}
	return &out
}
