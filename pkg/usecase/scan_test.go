package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
	"github.com/privacy-lab/tikun13/pkg/usecase"
)

func TestScan_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/privacy">Privacy</a></body></html>`))
	}))
	defer srv.Close()

	uc := usecase.New(memory.New(), catalog.Default())
	ctx := context.Background()

	result, err := uc.Scan.ScanURL(ctx, srv.URL)
	gt.NoError(t, err).Required()
	gt.Bool(t, result.Failed).False()

	stored, err := uc.Scan.Get(ctx, result.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, stored.URL).Equal(result.URL)

	list, err := uc.Scan.List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, list).Length(1)

	gt.NoError(t, uc.Scan.Delete(ctx, result.ID))
	_, err = uc.Scan.Get(ctx, result.ID)
	gt.Error(t, err)
}

func TestScan_FailedScanIsStored(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	uc := usecase.New(memory.New(), catalog.Default())
	ctx := context.Background()

	result, err := uc.Scan.ScanURL(ctx, srv.URL)
	gt.NoError(t, err).Required()
	gt.Bool(t, result.Failed).True()

	stored, err := uc.Scan.Get(ctx, result.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, stored.Failed).True()
}
