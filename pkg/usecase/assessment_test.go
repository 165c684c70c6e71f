package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
	"github.com/privacy-lab/tikun13/pkg/usecase"
)

func newUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(), catalog.Default())
}

func TestAssessment_Lifecycle(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	a, err := uc.Assessment.Start(ctx)
	gt.NoError(t, err).Required()
	gt.String(t, a.ID.String()).NotEqual("")
	gt.Bool(t, a.IsCompleted).False()

	a, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QOrgType, model.NewAnswer("public"))
	gt.NoError(t, err).Required()
	gt.Bool(t, a.Answers.Answered(catalog.QOrgType)).True()

	a, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QDPOAppointed, model.NewAnswer("no"))
	gt.NoError(t, err).Required()

	a, err = uc.Assessment.Complete(ctx, a.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, a.IsCompleted).True()
	gt.Value(t, a.Result).NotNil()
	gt.Value(t, a.CompletedAt).NotNil()
	gt.String(t, a.CompletionTime).NotEqual("")

	// the stored copy carries the result too
	stored, err := uc.Assessment.Get(ctx, a.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.Result).NotNil()
	gt.Value(t, stored.Result.Score).Equal(a.Result.Score)

	gt.NoError(t, uc.Assessment.Delete(ctx, a.ID))
	_, err = uc.Assessment.Get(ctx, a.ID)
	gt.Error(t, err)
}

func TestAssessment_SaveAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown question rejected", func(t *testing.T) {
		uc := newUseCases(t)
		a, err := uc.Assessment.Start(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Assessment.SaveAnswer(ctx, a.ID, "no_such_question", model.NewAnswer("yes"))
		gt.Error(t, err)
	})

	t.Run("wrong shape for single-choice rejected", func(t *testing.T) {
		uc := newUseCases(t)
		a, err := uc.Assessment.Start(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QOrgType, model.NewMultiAnswer("public", "private"))
		gt.Error(t, err)
	})

	t.Run("wrong shape for multi-choice rejected", func(t *testing.T) {
		uc := newUseCases(t)
		a, err := uc.Assessment.Start(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QSensitiveData, model.NewAnswer("medical"))
		gt.Error(t, err)
	})

	t.Run("empty answer clears a previous one", func(t *testing.T) {
		uc := newUseCases(t)
		a, err := uc.Assessment.Start(ctx)
		gt.NoError(t, err).Required()

		a, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QOrgType, model.NewAnswer("private"))
		gt.NoError(t, err).Required()
		gt.Bool(t, a.Answers.Answered(catalog.QOrgType)).True()

		a, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QOrgType, model.Answer{})
		gt.NoError(t, err).Required()
		gt.Bool(t, a.Answers.Answered(catalog.QOrgType)).False()
	})

	t.Run("completed assessment rejects answers", func(t *testing.T) {
		uc := newUseCases(t)
		a, err := uc.Assessment.Start(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Assessment.Complete(ctx, a.ID)
		gt.NoError(t, err).Required()

		_, err = uc.Assessment.SaveAnswer(ctx, a.ID, catalog.QOrgType, model.NewAnswer("private"))
		gt.Error(t, err)
	})
}

func TestAssessment_SetProgress(t *testing.T) {
	uc := newUseCases(t)
	ctx := context.Background()

	a, err := uc.Assessment.Start(ctx)
	gt.NoError(t, err).Required()

	a, err = uc.Assessment.SetProgress(ctx, a.ID, 3)
	gt.NoError(t, err).Required()
	gt.Value(t, a.CurrentSectionIndex).Equal(3)

	_, err = uc.Assessment.SetProgress(ctx, a.ID, -1)
	gt.Error(t, err)

	_, err = uc.Assessment.SetProgress(ctx, a.ID, 100)
	gt.Error(t, err)
}

func TestAssessment_Evaluate(t *testing.T) {
	uc := newUseCases(t)

	result := uc.Assessment.Evaluate(model.AnswerSet{
		catalog.QOrgType:      model.NewAnswer("public"),
		catalog.QDPOAppointed: model.NewAnswer("no"),
	})
	gt.Value(t, result).NotNil()
	gt.Bool(t, result.RiskScore > 0).True()
	gt.Array(t, result.Matrix).Length(6)
}
