package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// ScanID represents a unique identifier for a website scan
type ScanID string

// NewScanID generates a new random ScanID
func NewScanID() ScanID {
	return ScanID(uuid.New().String())
}

// String returns the string representation of ScanID
func (s ScanID) String() string {
	return string(s)
}

// WebCheck is the outcome of one named heuristic check against a website
type WebCheck struct {
	Name     string            `json:"name"`
	Category types.Category    `json:"category"`
	Status   types.CheckStatus `json:"status"`
	Weight   int               `json:"weight"`
	Detail   string            `json:"detail,omitempty"`
}

// WebViolation mirrors Violation but carries a fine estimate range, since
// heuristic findings are less certain than questionnaire answers
type WebViolation struct {
	Severity    types.Severity `json:"severity"`
	Category    types.Category `json:"category"`
	Description string         `json:"description"`
	FineMin     int64          `json:"fineMin"`
	FineMax     int64          `json:"fineMax"`
	Citation    string         `json:"citation"`
}

// WebScanResult is the output of one heuristic website scan
type WebScanResult struct {
	ID        ScanID    `json:"id"`
	URL       string    `json:"url"`
	ScannedAt time.Time `json:"scannedAt"`

	// Score is the weighted heuristic compliance score (0-100)
	Score int `json:"score"`

	Checks          []WebCheck       `json:"checks"`
	Violations      []WebViolation   `json:"violations"`
	Recommendations []Recommendation `json:"recommendations"`

	// Failed is set when the page could not be fetched or parsed; all
	// checks carry the error status in that case
	Failed bool   `json:"failed"`
	Error  string `json:"error,omitempty"`
}
