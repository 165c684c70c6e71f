package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// RiskStrategy names a declarative rule for deriving risk units from a
// multi-choice selection. Keeping the rule as data instead of a function
// makes the catalog serializable and testable on its own.
type RiskStrategy string

const (
	// RiskStrategyNeutralZero yields 0 risk when the neutral option is
	// selected, otherwise max(0, 5-count) over the selected options.
	RiskStrategyNeutralZero RiskStrategy = "neutral-zero"

	// RiskStrategyMandatorySubset yields risk proportional to how many of
	// the mandatory options are missing from the selection. Selecting the
	// neutral option (when present) yields the maximum risk of 5.
	RiskStrategyMandatorySubset RiskStrategy = "mandatory-subset"

	// RiskStrategyCountScaled yields min(5, count) over the selected
	// options, 0 when the neutral option is selected. Used for questions
	// where each selection adds exposure (e.g. sensitive data categories).
	RiskStrategyCountScaled RiskStrategy = "count-scaled"
)

// RiskRule describes how an answer to a question maps to risk units (0-5).
// Exactly one of Factors or Strategy is expected to be set; a multi-choice
// question with neither falls back to the generic rule: max(0, 5-count),
// with a selected neutral option scoring the full 5. Under the generic rule
// a neutral pick ("none") means no mitigations exist at all, unlike the
// neutral-zero strategy where it means "not applicable".
type RiskRule struct {
	// Factors maps a single-choice answer value to risk units
	Factors map[string]int `toml:"factors,omitempty" json:"factors,omitempty"`

	// Strategy selects a named multi-choice evaluation rule
	Strategy RiskStrategy `toml:"strategy,omitempty" json:"strategy,omitempty"`

	// Neutral is the option value that means "none of the above"
	Neutral string `toml:"neutral,omitempty" json:"neutral,omitempty"`

	// Mandatory lists the option values a compliant organization must
	// select (RiskStrategyMandatorySubset only)
	Mandatory []string `toml:"mandatory,omitempty" json:"mandatory,omitempty"`
}

// Dependency makes a question visible only when a parent question has been
// answered with one of the trigger values
type Dependency struct {
	DependsOn types.QuestionID `toml:"depends_on" json:"dependsOn"`
	ShowIf    []string         `toml:"show_if" json:"showIf"`
}

// HelpContent carries optional explanatory material shown next to a question
type HelpContent struct {
	Title        string   `toml:"title,omitempty" json:"title,omitempty"`
	Description  string   `toml:"description,omitempty" json:"description,omitempty"`
	Requirements []string `toml:"requirements,omitempty" json:"requirements,omitempty"`
	Citation     string   `toml:"citation,omitempty" json:"citation,omitempty"`
}

// Option is a selectable answer to a question
type Option struct {
	Value string       `toml:"value" json:"value"`
	Label string       `toml:"label" json:"label"`
	Help  *HelpContent `toml:"help,omitempty" json:"help,omitempty"`
}

// Question is a single questionnaire item. Weight scales both the maximum
// possible contribution (weight*5) and the risk contribution of the answer.
type Question struct {
	ID        types.QuestionID   `toml:"id" json:"id"`
	Text      string             `toml:"text" json:"text"`
	Type      types.QuestionType `toml:"type" json:"type"`
	Required  bool               `toml:"required" json:"required"`
	Weight    int                `toml:"weight" json:"weight"`
	Options   []Option           `toml:"option" json:"options"`
	Risk      RiskRule           `toml:"risk" json:"risk"`
	Help      *HelpContent       `toml:"help,omitempty" json:"help,omitempty"`
	DependsOn *Dependency        `toml:"depends,omitempty" json:"depends,omitempty"`
}

// Validate checks if the Question is valid
func (q *Question) Validate() error {
	if err := q.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid question ID")
	}
	if q.Text == "" {
		return goerr.New("question text is required", goerr.V("id", q.ID))
	}
	if !q.Type.IsValid() {
		return goerr.New("invalid question type", goerr.V("id", q.ID), goerr.V("type", q.Type))
	}
	if q.Weight < 1 {
		return goerr.New("question weight must be positive", goerr.V("id", q.ID), goerr.V("weight", q.Weight))
	}
	if len(q.Options) == 0 {
		return goerr.New("question must have at least one option", goerr.V("id", q.ID))
	}

	values := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt.Value == "" {
			return goerr.New("option value is required", goerr.V("question", q.ID))
		}
		if values[opt.Value] {
			return goerr.New("duplicate option value", goerr.V("question", q.ID), goerr.V("value", opt.Value))
		}
		values[opt.Value] = true
	}

	for value, risk := range q.Risk.Factors {
		if !values[value] {
			return goerr.New("risk factor references unknown option", goerr.V("question", q.ID), goerr.V("value", value))
		}
		if risk < 0 || risk > 5 {
			return goerr.New("risk factor must be between 0 and 5", goerr.V("question", q.ID), goerr.V("value", value), goerr.V("risk", risk))
		}
	}
	if q.Risk.Neutral != "" && !values[q.Risk.Neutral] {
		return goerr.New("neutral value references unknown option", goerr.V("question", q.ID), goerr.V("value", q.Risk.Neutral))
	}
	for _, m := range q.Risk.Mandatory {
		if !values[m] {
			return goerr.New("mandatory value references unknown option", goerr.V("question", q.ID), goerr.V("value", m))
		}
	}
	switch q.Risk.Strategy {
	case "", RiskStrategyNeutralZero, RiskStrategyMandatorySubset, RiskStrategyCountScaled:
	default:
		return goerr.New("unknown risk strategy", goerr.V("question", q.ID), goerr.V("strategy", q.Risk.Strategy))
	}

	if q.DependsOn != nil {
		if err := q.DependsOn.DependsOn.Validate(); err != nil {
			return goerr.Wrap(err, "invalid dependency", goerr.V("question", q.ID))
		}
		if len(q.DependsOn.ShowIf) == 0 {
			return goerr.New("dependency requires at least one trigger value", goerr.V("question", q.ID))
		}
	}

	return nil
}

// HasOption reports whether the question offers the given option value
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Section groups related questions for wizard-style traversal. Section order
// matters for presentation but not for scoring.
type Section struct {
	ID          types.SectionID `toml:"id" json:"id"`
	Title       string          `toml:"title" json:"title"`
	Icon        string          `toml:"icon,omitempty" json:"icon,omitempty"`
	Description string          `toml:"description,omitempty" json:"description,omitempty"`
	Questions   []Question      `toml:"question" json:"questions"`
}

// Validate checks if the Section is valid
func (s *Section) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid section ID")
	}
	if s.Title == "" {
		return goerr.New("section title is required", goerr.V("id", s.ID))
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid question", goerr.V("section", s.ID))
		}
	}
	return nil
}

// SectionQuestion is a question tagged with its owning section, produced by
// flattening a catalog
type SectionQuestion struct {
	Question
	SectionID    types.SectionID `json:"sectionId"`
	SectionTitle string          `json:"sectionTitle"`
}
