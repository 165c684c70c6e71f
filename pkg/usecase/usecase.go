package usecase

import (
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

type UseCases struct {
	repo    interfaces.Repository
	catalog *catalog.Catalog
	fetcher *webscan.Fetcher

	Assessment *AssessmentUseCase
	Scan       *ScanUseCase
}

type Option func(*UseCases)

// WithFetcher overrides the website fetcher (primarily for tests and proxy
// configurations)
func WithFetcher(f *webscan.Fetcher) Option {
	return func(uc *UseCases) {
		uc.fetcher = f
	}
}

func New(repo interfaces.Repository, cat *catalog.Catalog, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		catalog: cat,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.fetcher == nil {
		uc.fetcher = webscan.NewFetcher()
	}

	uc.Assessment = NewAssessmentUseCase(repo, cat)
	uc.Scan = NewScanUseCase(repo, uc.fetcher)

	return uc
}

// Catalog exposes the rule catalog to controllers
func (uc *UseCases) Catalog() *catalog.Catalog {
	return uc.catalog
}
