package interfaces

import (
	"context"

	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

// AssessmentRepository defines the interface for assessment session storage
type AssessmentRepository interface {
	// Create stores a new assessment session
	Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error)

	// Get retrieves an assessment by ID
	Get(ctx context.Context, id model.AssessmentID) (*model.Assessment, error)

	// List retrieves all stored assessments
	List(ctx context.Context) ([]*model.Assessment, error)

	// Update replaces an existing assessment
	Update(ctx context.Context, a *model.Assessment) (*model.Assessment, error)

	// Delete removes an assessment by ID
	Delete(ctx context.Context, id model.AssessmentID) error
}

// ScanRepository defines the interface for completed website scan storage
type ScanRepository interface {
	// Save stores a scan result
	Save(ctx context.Context, result *model.WebScanResult) error

	// Get retrieves a scan result by ID
	Get(ctx context.Context, id model.ScanID) (*model.WebScanResult, error)

	// List retrieves all stored scan results
	List(ctx context.Context) ([]*model.WebScanResult, error)

	// Delete removes a scan result by ID
	Delete(ctx context.Context, id model.ScanID) error
}

// Repository aggregates all storage interfaces
type Repository interface {
	Assessment() AssessmentRepository
	Scan() ScanRepository

	// Close releases any resources held by the backend
	Close() error
}
