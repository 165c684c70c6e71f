package localfile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/repository/localfile"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
)

// runRepositoryTest exercises the shared repository contract. Both backends
// must behave identically from the caller's point of view.
func runRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Answers: model.AnswerSet{"org_type": model.NewAnswer("private")},
		})
		gt.NoError(t, err).Required()

		gt.String(t, created.ID.String()).NotEqual("")
		gt.Bool(t, created.StartTime.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Get retrieves stored assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{
			Answers: model.AnswerSet{
				"org_type":       model.NewAnswer("financial"),
				"sensitive_data": model.NewMultiAnswer("financial", "biometric"),
			},
			CurrentSectionIndex: 2,
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Assessment().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(created.ID)
		gt.Value(t, retrieved.CurrentSectionIndex).Equal(2)
		v, ok := retrieved.Answers.Scalar("org_type")
		gt.Bool(t, ok).True()
		gt.Value(t, v).Equal("financial")
		values, ok := retrieved.Answers.Values("sensitive_data")
		gt.Bool(t, ok).True()
		gt.Array(t, values).Length(2)
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Get(ctx, "non-existent-id")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("Update replaces stored state", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{})
		gt.NoError(t, err).Required()

		created.Answers = model.AnswerSet{"privacy_policy": model.NewAnswer("updated")}
		created.IsCompleted = true
		now := time.Now().UTC()
		created.CompletedAt = &now
		created.Result = &model.Result{Score: 82}

		updated, err := repo.Assessment().Update(ctx, created)
		gt.NoError(t, err).Required()

		retrieved, err := repo.Assessment().Get(ctx, updated.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, retrieved.IsCompleted).True()
		gt.Value(t, retrieved.Result.Score).Equal(82)
		gt.Value(t, retrieved.CompletedAt).NotNil()
	})

	t.Run("Update of unknown assessment fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Assessment().Update(ctx, &model.Assessment{ID: "missing"})
		gt.Error(t, err)
	})

	t.Run("Delete removes assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Assessment().Create(ctx, &model.Assessment{})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Assessment().Delete(ctx, created.ID))

		_, err = repo.Assessment().Get(ctx, created.ID)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()

		gt.Error(t, repo.Assessment().Delete(ctx, created.ID))
	})

	t.Run("List returns all assessments", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for range 3 {
			_, err := repo.Assessment().Create(ctx, &model.Assessment{})
			gt.NoError(t, err).Required()
		}

		list, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(3)
	})

	t.Run("Scan save and get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		result := &model.WebScanResult{
			ID:        model.NewScanID(),
			URL:       "https://example.co.il",
			ScannedAt: time.Now().UTC(),
			Score:     75,
		}
		gt.NoError(t, repo.Scan().Save(ctx, result)).Required()

		retrieved, err := repo.Scan().Get(ctx, result.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.URL).Equal("https://example.co.il")
		gt.Value(t, retrieved.Score).Equal(75)

		list, err := repo.Scan().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, list).Length(1)
	})

	t.Run("Scan delete", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		result := &model.WebScanResult{ID: model.NewScanID(), URL: "https://example.co.il"}
		gt.NoError(t, repo.Scan().Save(ctx, result)).Required()

		gt.NoError(t, repo.Scan().Delete(ctx, result.ID))

		_, err := repo.Scan().Get(ctx, result.ID)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("failed scan round trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		result := &model.WebScanResult{
			ID:     model.NewScanID(),
			URL:    "https://unreachable.example",
			Failed: true,
			Error:  "connection refused",
		}
		gt.NoError(t, repo.Scan().Save(ctx, result)).Required()

		retrieved, err := repo.Scan().Get(ctx, result.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, retrieved.Failed).True()
		gt.Value(t, retrieved.Error).Equal("connection refused")
	})
}

func TestMemoryRepository(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestLocalFileRepository(t *testing.T) {
	runRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := localfile.New(t.TempDir())
		gt.NoError(t, err).Required()
		return repo
	})
}

func TestLocalFileRepository_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := localfile.New(dir)
	gt.NoError(t, err).Required()

	created, err := repo.Assessment().Create(ctx, &model.Assessment{
		Answers: model.AnswerSet{"org_type": model.NewAnswer("public")},
	})
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Close())

	reopened, err := localfile.New(dir)
	gt.NoError(t, err).Required()

	retrieved, err := reopened.Assessment().Get(ctx, created.ID)
	gt.NoError(t, err).Required()
	v, ok := retrieved.Answers.Scalar("org_type")
	gt.Bool(t, ok).True()
	gt.Value(t, v).Equal("public")
}
