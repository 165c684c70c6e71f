package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// QuestionID represents a unique identifier for a questionnaire question
type QuestionID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// Validate checks if the QuestionID is valid
func (q QuestionID) Validate() error {
	if q == "" {
		return goerr.New("question ID cannot be empty")
	}
	if !idPattern.MatchString(string(q)) {
		return goerr.New("question ID must be lowercase alphanumeric with underscores", goerr.V("id", q))
	}
	return nil
}

// String returns the string representation of QuestionID
func (q QuestionID) String() string {
	return string(q)
}

// SectionID represents a unique identifier for a questionnaire section
type SectionID string

// Validate checks if the SectionID is valid
func (s SectionID) Validate() error {
	if s == "" {
		return goerr.New("section ID cannot be empty")
	}
	if !idPattern.MatchString(string(s)) {
		return goerr.New("section ID must be lowercase alphanumeric with underscores", goerr.V("id", s))
	}
	return nil
}

// String returns the string representation of SectionID
func (s SectionID) String() string {
	return string(s)
}

// QuestionType represents how a question accepts its answer
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
)

// IsValid checks if the question type is valid
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice:
		return true
	default:
		return false
	}
}

// String returns the string representation of the question type
func (t QuestionType) String() string {
	return string(t)
}
