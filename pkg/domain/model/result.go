package model

import (
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Violation is a discrete, independently-triggered compliance failure with an
// estimated fine in whole shekels
type Violation struct {
	Severity    types.Severity `json:"severity"`
	Category    types.Category `json:"category"`
	Description string         `json:"description"`
	Fine        int64          `json:"fine"`
	Citation    string         `json:"citation"`
}

// Recommendation is a prioritized remediation action
type Recommendation struct {
	Priority    types.Priority `json:"priority"`
	Category    types.Category `json:"category"`
	Action      string         `json:"action"`
	Timeline    string         `json:"timeline"`
	Description string         `json:"description,omitempty"`
}

// RiskClassification is the discrete level derived from the raw risk score,
// with presentation metadata
type RiskClassification struct {
	Level        types.RiskLevel `json:"level"`
	Label        string          `json:"label"`
	Color        string          `json:"color"`
	Description  string          `json:"description"`
	ActionWindow string          `json:"actionWindow"`
}

// MatrixEntry summarizes one compliance category directly from specific
// answers, independent of the weighted scoring
type MatrixEntry struct {
	Category    types.Category `json:"category"`
	Status      string         `json:"status"`
	Requirement string         `json:"requirement"`
	Compliant   bool           `json:"compliant"`
}

// Result is the full output of one scoring engine evaluation. It is
// serializable to JSON for export and report generation.
type Result struct {
	// Score is the normalized compliance score (0-100)
	Score int `json:"score"`

	// RiskScore is the raw sum of weighted risk units
	RiskScore int `json:"riskScore"`

	// MaxScore is the theoretical maximum achievable score
	MaxScore int `json:"maxScore"`

	Classification  RiskClassification `json:"classification"`
	Violations      []Violation        `json:"violations"`
	Recommendations []Recommendation   `json:"recommendations"`

	// TotalFine is the sum of all violation fine estimates
	TotalFine int64 `json:"totalFine"`

	Matrix []MatrixEntry `json:"matrix"`

	// AnsweredCount and QuestionCount describe questionnaire completeness
	AnsweredCount int `json:"answeredCount"`
	QuestionCount int `json:"questionCount"`
}
