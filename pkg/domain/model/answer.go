package model

import (
	"encoding/json"

	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Answer holds the response to one question: a scalar value for single-choice
// questions or a set of values for multi-choice questions. The zero value
// means "not answered".
type Answer struct {
	value  string
	values []string
	multi  bool
}

// NewAnswer creates a single-choice answer
func NewAnswer(value string) Answer {
	return Answer{value: value}
}

// NewMultiAnswer creates a multi-choice answer
func NewMultiAnswer(values ...string) Answer {
	return Answer{values: values, multi: true}
}

// IsZero reports whether the answer carries no value at all
func (a Answer) IsZero() bool {
	if a.multi {
		return len(a.values) == 0
	}
	return a.value == ""
}

// Scalar returns the single-choice value. A multi-choice answer reports
// ok=false so callers treat the answer as absent rather than failing.
func (a Answer) Scalar() (string, bool) {
	if a.multi || a.value == "" {
		return "", false
	}
	return a.value, true
}

// Values returns the multi-choice selection. A scalar answer reports
// ok=false.
func (a Answer) Values() ([]string, bool) {
	if !a.multi {
		return nil, false
	}
	return a.values, true
}

// Contains reports whether a multi-choice answer includes the given value.
// It also matches a scalar answer equal to the value, so callers checking
// for a specific selection do not care about the answer shape.
func (a Answer) Contains(value string) bool {
	if a.multi {
		for _, v := range a.values {
			if v == value {
				return true
			}
		}
		return false
	}
	return a.value == value
}

// MarshalJSON encodes a scalar answer as a JSON string and a multi-choice
// answer as a JSON array, matching the persisted answers blob layout
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		if a.values == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts either a string or an array of strings. Any other
// shape leaves the answer empty instead of returning an error: malformed
// values are treated as absent.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = NewAnswer(s)
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err == nil {
		*a = NewMultiAnswer(vs...)
		return nil
	}
	*a = Answer{}
	return nil
}

// AnswerSet maps question IDs to answers. It is the sole input to the
// scoring engine besides the catalog.
type AnswerSet map[types.QuestionID]Answer

// Scalar returns the scalar answer for a question, or ok=false when the
// question is unanswered or has a non-scalar value
func (s AnswerSet) Scalar(id types.QuestionID) (string, bool) {
	a, ok := s[id]
	if !ok {
		return "", false
	}
	return a.Scalar()
}

// Values returns the multi-choice selection for a question, or ok=false
func (s AnswerSet) Values(id types.QuestionID) ([]string, bool) {
	a, ok := s[id]
	if !ok {
		return nil, false
	}
	return a.Values()
}

// Answered reports whether the question carries a non-empty answer
func (s AnswerSet) Answered(id types.QuestionID) bool {
	a, ok := s[id]
	return ok && !a.IsZero()
}

// Clone returns a shallow copy of the answer set
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for id, a := range s {
		out[id] = a
	}
	return out
}
