package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
	"github.com/privacy-lab/tikun13/pkg/scoring"
)

type AssessmentUseCase struct {
	repo    interfaces.Repository
	catalog *catalog.Catalog
}

func NewAssessmentUseCase(repo interfaces.Repository, cat *catalog.Catalog) *AssessmentUseCase {
	return &AssessmentUseCase{
		repo:    repo,
		catalog: cat,
	}
}

// Start creates a new empty assessment session
func (uc *AssessmentUseCase) Start(ctx context.Context) (*model.Assessment, error) {
	a := &model.Assessment{
		ID:        model.NewAssessmentID(),
		Answers:   model.AnswerSet{},
		StartTime: time.Now().UTC(),
	}
	created, err := uc.repo.Assessment().Create(ctx, a)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assessment")
	}
	return created, nil
}

// Get retrieves an assessment session
func (uc *AssessmentUseCase) Get(ctx context.Context, id model.AssessmentID) (*model.Assessment, error) {
	a, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment")
	}
	return a, nil
}

// List retrieves all assessment sessions
func (uc *AssessmentUseCase) List(ctx context.Context) ([]*model.Assessment, error) {
	return uc.repo.Assessment().List(ctx)
}

// Delete removes an assessment session
func (uc *AssessmentUseCase) Delete(ctx context.Context, id model.AssessmentID) error {
	return uc.repo.Assessment().Delete(ctx, id)
}

// SaveAnswer records one answer on an open assessment. The question must
// exist in the catalog and the answer shape must match the question type;
// answers to completed assessments are rejected.
func (uc *AssessmentUseCase) SaveAnswer(ctx context.Context, id model.AssessmentID, questionID types.QuestionID, answer model.Answer) (*model.Assessment, error) {
	q := uc.catalog.FindQuestion(questionID)
	if q == nil {
		return nil, goerr.New("unknown question", goerr.V("question", questionID))
	}

	switch q.Type {
	case types.QuestionTypeSingleChoice:
		if _, ok := answer.Scalar(); !ok && !answer.IsZero() {
			return nil, goerr.New("single-choice question requires a scalar answer", goerr.V("question", questionID))
		}
	case types.QuestionTypeMultiChoice:
		if _, ok := answer.Values(); !ok && !answer.IsZero() {
			return nil, goerr.New("multi-choice question requires a list answer", goerr.V("question", questionID))
		}
	}

	a, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment")
	}
	if a.IsCompleted {
		return nil, goerr.New("assessment is already completed", goerr.V("id", id))
	}

	if a.Answers == nil {
		a.Answers = model.AnswerSet{}
	}
	if answer.IsZero() {
		delete(a.Answers, questionID)
	} else {
		a.Answers[questionID] = answer
	}

	updated, err := uc.repo.Assessment().Update(ctx, a)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment")
	}
	return updated, nil
}

// SetProgress moves the wizard cursor
func (uc *AssessmentUseCase) SetProgress(ctx context.Context, id model.AssessmentID, sectionIndex int) (*model.Assessment, error) {
	if sectionIndex < 0 || sectionIndex >= len(uc.catalog.Sections()) {
		return nil, goerr.New("section index out of range", goerr.V("index", sectionIndex))
	}

	a, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment")
	}
	a.CurrentSectionIndex = sectionIndex

	updated, err := uc.repo.Assessment().Update(ctx, a)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment")
	}
	return updated, nil
}

// Complete marks the assessment finished, evaluates it and stores the result
func (uc *AssessmentUseCase) Complete(ctx context.Context, id model.AssessmentID) (*model.Assessment, error) {
	a, err := uc.repo.Assessment().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get assessment")
	}

	now := time.Now().UTC()
	a.IsCompleted = true
	a.Result = scoring.Evaluate(a.Answers, uc.catalog)
	a.CompletedAt = &now
	a.CompletionTime = now.Sub(a.StartTime).Round(time.Second).String()

	updated, err := uc.repo.Assessment().Update(ctx, a)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update assessment")
	}
	return updated, nil
}

// Evaluate scores an answer set directly, without any stored session. The
// engine is a pure function, so this is safe to call from any number of
// concurrent requests.
func (uc *AssessmentUseCase) Evaluate(answers model.AnswerSet) *model.Result {
	return scoring.Evaluate(answers, uc.catalog)
}
