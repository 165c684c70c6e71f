package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentID represents a unique identifier for an assessment session
type AssessmentID string

// NewAssessmentID generates a new random AssessmentID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

// String returns the string representation of AssessmentID
func (a AssessmentID) String() string {
	return string(a)
}

// Assessment is an in-progress or completed questionnaire session. It mirrors
// the state the web UI keeps locally: answers, a progress cursor, completion
// flag and timing.
type Assessment struct {
	ID                  AssessmentID `json:"id"`
	Answers             AnswerSet    `json:"answers"`
	CurrentSectionIndex int          `json:"currentSectionIndex"`
	IsCompleted         bool         `json:"isCompleted"`
	StartTime           time.Time    `json:"startTime"`
	UpdatedAt           time.Time    `json:"updatedAt"`

	// Result is set once the assessment is completed and evaluated
	Result         *Result    `json:"results,omitempty"`
	CompletedAt    *time.Time `json:"timestamp,omitempty"`
	CompletionTime string     `json:"completionTime,omitempty"`
}
